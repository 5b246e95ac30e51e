package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Score  float64
	Labels []string
}

func TestSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSet[entry](NewMemoryStore(), "test", time.Minute)

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "a", entry{Score: 53.5, Labels: []string{"x"}}))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entry{Score: 53.5, Labels: []string{"x"}}, got)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutexGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewSet[entry](NewMemoryStore(), "test", time.Minute)

	var calls atomic.Int32
	compute := func() (entry, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		return entry{Score: 100}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := s.MutexGetSet(ctx, "k", compute)
			assert.NoError(t, err)
			assert.Equal(t, 100.0, v.Score)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())

	v, computed, err := s.MutexGetSet(ctx, "k", compute)
	require.NoError(t, err)
	assert.False(t, computed)
	assert.Equal(t, 100.0, v.Score)
}

func TestMutexGetSetError(t *testing.T) {
	s := NewSet[entry](NewMemoryStore(), "test", time.Minute)
	boom := errors.New("boom")

	_, computed, err := s.MutexGetSet(context.Background(), "k", func() (entry, error) {
		return entry{}, boom
	})
	assert.True(t, computed)
	assert.ErrorIs(t, err, boom)

	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKey(t *testing.T) {
	a, err := Key(map[string]any{"x": 1, "y": []int{1, 2}})
	require.NoError(t, err)
	b, err := Key(map[string]any{"y": []int{1, 2}, "x": 1})
	require.NoError(t, err)
	c, err := Key(map[string]any{"x": 2, "y": []int{1, 2}})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
