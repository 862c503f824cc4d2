package factory

import (
	"fmt"

	"github.com/automoto/escape-the-maze/animations"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
)

// clockFromProps builds an animation clock whose frame count and duration
// can be overridden per object with the "frames" and "frame_duration"
// properties.
func clockFromProps(props leveldata.Properties, frames int, duration float64) *animations.Clock {
	return animations.NewClock(
		props.Int("frames", frames),
		props.Float("frame_duration", duration),
	)
}

// checkTiming rejects authored animation overrides the clock cannot run.
func checkTiming(levelID string, rec leveldata.ObjectRecord) error {
	if rec.Properties.Has("frames") && rec.Properties.Int("frames", 0) < 1 {
		return fmt.Errorf("level %q: object %d: frames %q must be a positive integer",
			levelID, rec.ID, rec.Properties["frames"])
	}
	if rec.Properties.Has("frame_duration") && rec.Properties.Float("frame_duration", 0) <= 0 {
		return fmt.Errorf("level %q: object %d: frame_duration %q must be a positive number",
			levelID, rec.ID, rec.Properties["frame_duration"])
	}
	return nil
}

// staticClock is the single-frame clock used by entities without animation.
func staticClock() *animations.Clock {
	return animations.NewClock(1, cfg.Animation.DefaultFrameDuration)
}
