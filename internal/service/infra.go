package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/cache"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/flog"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/jetstream"
)

// NewResultStore backs the result caches with Redis when it is configured,
// and with process memory otherwise.
func NewResultStore(client *redis.Client) cache.Store {
	if client == nil {
		return cache.NewMemoryStore()
	}
	return cache.NewRedisStore(client)
}

func NewPublisher(js nats.JetStreamContext) *jetstream.Publisher {
	return jetstream.NewPublisher(js)
}

func requestID(ctx context.Context) string {
	if id, ok := flog.IDFromCtx(ctx); ok {
		return id.String()
	}
	return ""
}
