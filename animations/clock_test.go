package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockLargeDeltaWraps(t *testing.T) {
	c := NewClock(4, 0.15)
	c.Update(0.61)

	assert.Equal(t, 0, c.Frame())
	assert.InDelta(t, 0.01, c.Elapsed(), 1e-9)
	assert.Equal(t, 1, c.Cycles())
}

func TestClockUpdate(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		duration  float64
		steps     []float64
		wantFrame int
	}{
		{"below one frame", 4, 0.15, []float64{0.1}, 0},
		{"exactly one frame", 4, 0.5, []float64{0.5}, 1},
		{"accumulates small steps", 4, 0.15, []float64{0.1, 0.1, 0.1}, 2},
		{"single frame never advances", 1, 0.15, []float64{5}, 0},
		{"zero delta", 4, 0.15, []float64{0}, 0},
		{"negative delta ignored", 4, 0.15, []float64{-1}, 0},
		{"many wraps", 3, 0.25, []float64{2.6}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(tt.count, tt.duration)
			for _, dt := range tt.steps {
				c.Update(dt)
			}
			assert.Equal(t, tt.wantFrame, c.Frame())
		})
	}
}

func TestClockFrameScale(t *testing.T) {
	c := NewClock(4, 0.1)
	c.FrameScale = []float64{0.5, 0.5, 10, 0.5}

	c.Update(0.11)
	assert.Equal(t, 2, c.Frame(), "two half-length frames fit in one base duration")

	c.Update(0.9)
	assert.Equal(t, 2, c.Frame(), "the long frame holds")

	c.Update(0.12)
	assert.Equal(t, 3, c.Frame())
}

func TestClockFreezeOnComplete(t *testing.T) {
	c := NewClock(3, 0.1)
	c.FreezeOnComplete = true

	c.Update(0.25)
	assert.Equal(t, 2, c.Frame())
	assert.False(t, c.Done())

	c.Update(10)
	assert.Equal(t, 2, c.Frame(), "stays on the last frame")
	assert.True(t, c.Done())

	c.Update(1)
	assert.Equal(t, 2, c.Frame())
}

func TestClockRestart(t *testing.T) {
	c := NewClock(4, 0.15)
	c.FreezeOnComplete = true
	c.Update(1)
	assert.True(t, c.Done())

	c.Restart()
	assert.Equal(t, 0, c.Frame())
	assert.Equal(t, 0.0, c.Elapsed())
	assert.False(t, c.Done())
}

func TestNewClockPanicsOnBadTiming(t *testing.T) {
	assert.Panics(t, func() { NewClock(0, 0.15) })
	assert.Panics(t, func() { NewClock(4, 0) })
	assert.Panics(t, func() { NewClock(4, -1) })
}
