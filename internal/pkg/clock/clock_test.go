package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/darkforge/internal/pkg/clock"
)

func TestRealNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	now := clock.New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
	assert.False(t, now.Before(before.Truncate(time.Second)))
}
