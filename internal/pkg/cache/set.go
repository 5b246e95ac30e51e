package cache

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/singleflight"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
)

// Key fingerprints v by hashing its JSON encoding.
func Key(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "cache: failed to encode key")
	}
	sum := xxh3.Hash128(b).Bytes()
	return hex.EncodeToString(sum[:]), nil
}

// Set is a namespace of msgpack-encoded values of type T within a Store.
type Set[T any] struct {
	name   string
	store  Store
	expire time.Duration

	group singleflight.Group
}

func NewSet[T any](store Store, name string, expire time.Duration) *Set[T] {
	return &Set[T]{
		name:   name,
		store:  store,
		expire: expire,
	}
}

func (c *Set[T]) key(key string) string {
	return c.name + ":" + key
}

func (c *Set[T]) Get(ctx context.Context, key string) (T, error) {
	var dest T
	key = c.key(key)

	b, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error().Err(err).Str("key", key).Str("store", c.store.Kind()).Msg("failed to get value from cache")
		}
		return dest, err
	}

	if err := msgpack.Unmarshal(b, &dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack")
		return dest, err
	}
	return dest, nil
}

func (c *Set[T]) Set(ctx context.Context, key string, value T) error {
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Str("store", c.store.Kind()).Msg("setting value to cache")
	}

	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}

	if err := c.store.Set(ctx, key, b, c.expire); err != nil {
		log.Error().Err(err).Str("key", key).Str("store", c.store.Kind()).Msg("failed to set value to cache")
		return err
	}
	return nil
}

func (c *Set[T]) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, c.key(key))
}

// MutexGetSet returns the cached value under key, or computes it with
// valueFunc and stores it. Concurrent callers for the same key share one
// computation. The bool reports whether the value was computed. A failing
// store never fails the call.
func (c *Set[T]) MutexGetSet(ctx context.Context, key string, valueFunc func() (T, error)) (T, bool, error) {
	if v, err := c.Get(ctx, key); err == nil {
		c.observe("hit")
		return v, false, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		// another caller may have filled the key meanwhile
		if v, err := c.Get(ctx, key); err == nil {
			c.observe("hit")
			return v, nil
		}
		c.observe("miss")

		v, err := valueFunc()
		if err != nil {
			return v, err
		}
		_ = c.Set(ctx, key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, true, err
	}
	return res.(T), true, nil
}

func (c *Set[T]) observe(outcome string) {
	observability.CacheLookups.WithLabelValues(c.name, outcome).Inc()
}
