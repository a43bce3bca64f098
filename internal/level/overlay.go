package level

import "github.com/gravshot/gravshot/internal/world"

// HUD is the text layer's opacity on a given frame.
type HUD struct {
	TitleAlpha       uint8
	InstructionAlpha uint8
}

// Overlay fades the level title out over the first TextDuration frames, then
// fades the instructions in over the next TextDuration frames.
func Overlay(frame int, t *world.Tuning) HUD {
	d := t.TextDuration
	if d <= 0 {
		return HUD{InstructionAlpha: 255}
	}
	ramp := func(f int) uint8 {
		return uint8(255 * min(max(float64(f)/float64(d), 0), 1))
	}
	return HUD{
		TitleAlpha:       255 - ramp(frame),
		InstructionAlpha: ramp(frame - d),
	}
}
