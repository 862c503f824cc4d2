package animations

import "fmt"

// Clock cycles through FrameCount frames, holding each for FrameDuration
// seconds. It is shared by every animated entity kind.
type Clock struct {
	FrameCount    int
	FrameDuration float64   // seconds per frame
	FrameScale    []float64 // optional per-frame duration multipliers
	elapsed       float64
	frame         int
	cycles        int
	// FreezeOnComplete stays on the last frame instead of looping.
	FreezeOnComplete bool
}

// NewClock panics on a non-positive frame count or duration: those come from
// malformed level data and must not be masked.
func NewClock(frameCount int, frameDuration float64) *Clock {
	if frameCount < 1 {
		panic(fmt.Sprintf("animations: frame count %d, want >= 1", frameCount))
	}
	if frameDuration <= 0 {
		panic(fmt.Sprintf("animations: frame duration %v, want > 0", frameDuration))
	}
	return &Clock{
		FrameCount:    frameCount,
		FrameDuration: frameDuration,
	}
}

// Update advances the clock by dt seconds. A large dt steps through as many
// frames as it covers.
func (c *Clock) Update(dt float64) {
	if dt <= 0 || c.Done() {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.duration(c.frame) {
		c.elapsed -= c.duration(c.frame)
		if c.frame == c.FrameCount-1 {
			c.cycles++
			if c.FreezeOnComplete {
				c.elapsed = 0
				return
			}
		}
		c.frame = (c.frame + 1) % c.FrameCount
	}
}

func (c *Clock) duration(frame int) float64 {
	if frame < len(c.FrameScale) && c.FrameScale[frame] > 0 {
		return c.FrameDuration * c.FrameScale[frame]
	}
	return c.FrameDuration
}

func (c *Clock) Frame() int {
	return c.frame
}

func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Cycles returns how many times the clock has run past its last frame.
func (c *Clock) Cycles() int {
	return c.cycles
}

// Done reports whether a freezing clock has completed its single pass.
func (c *Clock) Done() bool {
	return c.FreezeOnComplete && c.cycles > 0
}

func (c *Clock) Restart() {
	c.frame = 0
	c.elapsed = 0
	c.cycles = 0
}
