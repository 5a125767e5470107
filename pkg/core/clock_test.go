package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickAdvancesByOne(t *testing.T) {
	c := NewClock()
	c.Tick()
	c.Tick()
	assert.Equal(t, int64(2), c.CurrentTick)
}

func TestWakeUpFirstCallOnlyAnchors(t *testing.T) {
	c := NewClock()
	c.WakeUp(time.Now())
	assert.Equal(t, int64(0), c.CurrentTick)
	assert.NotNil(t, c.LastSaved)
}

func TestWakeUpBridgesElapsedMinutes(t *testing.T) {
	c := NewClock()
	start := time.Now()
	c.WakeUp(start)
	c.WakeUp(start.Add(3*time.Minute + 30*time.Second))
	assert.Equal(t, int64(3), c.CurrentTick)
}

func TestWakeUpIsIdempotentWithNoElapsedTime(t *testing.T) {
	c := NewClock()
	now := time.Now()
	c.WakeUp(now)
	c.WakeUp(now)
	assert.Equal(t, int64(0), c.CurrentTick)
}
