package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Ivan-Pavelic/stroop-effect/internal/core/classifier"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/async"
)

var (
	ErrRedisNotReachable = errors.New("redis not reachable")
	ErrNATSNotReachable  = errors.New("nats not reachable")
)

const (
	DependencyDisabled = "disabled"
	DependencyOK       = "ok"
	DependencyDown     = "down"
)

type Health struct {
	Classifier *classifier.Adapter
	Redis      *redis.Client
	NATS       *nats.Conn
}

func NewHealth(adapter *classifier.Adapter, redis *redis.Client, nats *nats.Conn) *Health {
	return &Health{
		Classifier: adapter,
		Redis:      redis,
		NATS:       nats,
	}
}

type HealthStatus struct {
	ModelLoaded  bool
	Model        string
	Dependencies map[string]string
}

// Status reports optional dependencies as disabled, ok or down. It never
// fails.
func (s *Health) Status(ctx context.Context) HealthStatus {
	errs := async.Collect(
		async.Errable(func() error { return s.pingRedis(ctx) }),
		async.Errable(s.pingNATS),
	)

	return HealthStatus{
		ModelLoaded: s.Classifier.Available(),
		Model:       s.Classifier.Describe(),
		Dependencies: map[string]string{
			"redis": dependencyStatus(s.Redis != nil, errs[0]),
			"nats":  dependencyStatus(s.NATS != nil, errs[1]),
		},
	}
}

func dependencyStatus(enabled bool, err error) string {
	switch {
	case !enabled:
		return DependencyDisabled
	case err != nil:
		return DependencyDown
	default:
		return DependencyOK
	}
}

func (s *Health) pingRedis(ctx context.Context) error {
	if s.Redis == nil {
		return nil
	}
	if err := s.Redis.Ping(ctx).Err(); err != nil {
		return errors.Wrap(ErrRedisNotReachable, err.Error())
	}
	return nil
}

func (s *Health) pingNATS() error {
	if s.NATS == nil {
		return nil
	}
	// nats pings every 20 seconds on its own (see infra/nats.go)
	status := s.NATS.Status()
	if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
		return errors.Wrap(ErrNATSNotReachable, status.String())
	}
	return nil
}
