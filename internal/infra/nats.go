package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
)

const (
	EventStream   = "stroop-events"
	EventSubjects = "STROOP.*"
)

// NATS connects to JetStream and makes sure the event stream exists. Both
// return values are nil when no URL is configured.
func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, nats.JetStreamContext, error) {
	if conf.NatsURL == "" {
		log.Info().
			Str("evt.name", "infra.nats.disabled").
			Msg("nats is not configured, events will not be published")
		return nil, nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	var nc *nats.Conn
	err := retry.Do(
		func() (err error) {
			nc, err = nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Millisecond*200),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, nil, err
	}

	js, err := nc.JetStream(nats.PublishAsyncMaxPending(128))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to initialize NATS JetStream")
		nc.Close()
		return nil, nil, err
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:       EventStream,
		Subjects:   []string{EventSubjects},
		Retention:  nats.LimitsPolicy,
		Discard:    nats.DiscardOld,
		Storage:    nats.FileStorage,
		MaxAge:     time.Hour * 24 * 7,
		Replicas:   1,
		Duplicates: time.Minute * 10,
	})
	if err != nil {
		log.Warn().Err(err).Msg("infra: nats: failed to create jetstream stream: is it already created?")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			select {
			case <-js.PublishAsyncComplete():
			case <-ctx.Done():
			}
			return nc.Drain()
		},
	})

	return nc, js, nil
}
