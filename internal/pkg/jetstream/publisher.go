package jetstream

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
)

const (
	SubjectAnalysis = "STROOP.analysis"
	SubjectInsights = "STROOP.insights"
)

// Event is the envelope of every published message.
type Event struct {
	ID        string `json:"id"`
	RequestID string `json:"requestId,omitempty"`
	Payload   any    `json:"payload"`
}

// Publisher writes events to JetStream. A nil Publisher, or one without a
// JetStream context, drops every event.
type Publisher struct {
	js nats.JetStreamContext
}

func NewPublisher(js nats.JetStreamContext) *Publisher {
	return &Publisher{js: js}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.js != nil
}

// MessageID is a fresh lowercase ULID, used both as the event id and the
// JetStream deduplication id.
func MessageID() string {
	return strings.ToLower(ulid.Make().String())
}

// Publish sends payload asynchronously. Failures are logged and counted but
// never returned: events are best effort.
func (p *Publisher) Publish(ctx context.Context, subject, requestID string, payload any) {
	if !p.Enabled() {
		return
	}

	evt := Event{
		ID:        MessageID(),
		RequestID: requestID,
		Payload:   payload,
	}

	b, err := json.Marshal(evt)
	if err != nil {
		p.failed(subject, err)
		return
	}

	future, err := p.js.PublishAsync(subject, b, nats.MsgId(evt.ID))
	if err != nil {
		p.failed(subject, err)
		return
	}

	go func() {
		select {
		case <-future.Ok():
			observability.EventsPublished.WithLabelValues(subject, "ok").Inc()
		case err := <-future.Err():
			p.failed(subject, err)
		case <-ctx.Done():
		}
	}()
}

func (p *Publisher) failed(subject string, err error) {
	observability.EventsPublished.WithLabelValues(subject, "error").Inc()
	log.Warn().
		Err(err).
		Str("evt.name", "jetstream.publish.failed").
		Str("subject", subject).
		Msg("failed to publish event")
}
