package async

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectKeepsOrder(t *testing.T) {
	boom := errors.New("boom")

	errs := Collect(
		Errable(func() error {
			time.Sleep(20 * time.Millisecond)
			return boom
		}),
		Errable(func() error { return nil }),
	)

	assert.Equal(t, []error{boom, nil}, errs)
}

func TestCollectEmpty(t *testing.T) {
	assert.Empty(t, Collect())
}
