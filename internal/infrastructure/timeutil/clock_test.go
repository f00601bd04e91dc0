package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now(t *testing.T) {
	clock := SystemClock{}

	before := time.Now()
	got := clock.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixedClock_Now(t *testing.T) {
	instant := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)
	clock := NewFixedClock(instant)

	assert.Equal(t, instant, clock.Now())
	assert.Equal(t, instant, clock.Now(), "repeated reads stay frozen")
}

func TestFixedClock_Set(t *testing.T) {
	clock := NewFixedClock(time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC))

	later := time.Date(2025, 12, 16, 10, 30, 0, 0, time.UTC)
	clock.Set(later)

	assert.Equal(t, later, clock.Now())
}

func TestFixedClock_Advance(t *testing.T) {
	start := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)
	clock := NewFixedClock(start)

	clock.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clock.Now())

	clock.Advance(24 * time.Hour)
	assert.Equal(t, start.Add(90*time.Minute+24*time.Hour), clock.Now())
}
