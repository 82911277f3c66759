package sim

import (
	"image/color"
	"math/rand"
)

// CornerFlashFrames is how many frames the corner flash animation runs.
const CornerFlashFrames = 12

// LogoColor names an entry in the logo palette.
type LogoColor int

const (
	Red LogoColor = iota
	Orange
	Yellow
	Lime
	Cyan
	Blue
	Violet
	Magenta
	Pink
	White
	Gold
)

// restingPalette is the pool the logo recolors from after a wall bounce.
// Gold is reserved as the corner-hit accent and is never drawn from here.
var restingPalette = [...]LogoColor{
	Red, Orange, Yellow, Lime, Cyan, Blue, Violet, Magenta, Pink, White,
}

// flashPalette is cycled through, in order, while a corner flash is active.
var flashPalette = [...]LogoColor{
	Gold, Red, Yellow, Lime, Cyan, Blue, Magenta,
}

var colorValues = [...]color.RGBA{
	Red:     {R: 255, G: 62, B: 62, A: 255},
	Orange:  {R: 255, G: 146, B: 44, A: 255},
	Yellow:  {R: 255, G: 218, B: 56, A: 255},
	Lime:    {R: 128, G: 255, B: 74, A: 255},
	Cyan:    {R: 66, G: 233, B: 255, A: 255},
	Blue:    {R: 70, G: 132, B: 255, A: 255},
	Violet:  {R: 140, G: 98, B: 255, A: 255},
	Magenta: {R: 255, G: 74, B: 234, A: 255},
	Pink:    {R: 255, G: 104, B: 164, A: 255},
	White:   {R: 255, G: 255, B: 255, A: 255},
	Gold:    {R: 255, G: 210, B: 60, A: 255},
}

// Color returns the RGBA value of the palette entry.
func (c LogoColor) Color() color.RGBA {
	return colorValues[c]
}

// ColorState tracks the logo's resting color and the corner flash animation.
//
// A corner hit sets the resting color to Gold and starts a fixed-length flash
// that cycles through flashPalette by frame index. A plain wall bounce
// rerolls the resting color, never repeating the current one.
type ColorState struct {
	Resting LogoColor

	flashFrames int
	flashStep   int
	rng         *rand.Rand
}

// NewColorState returns a color state resting on initial.
func NewColorState(initial LogoColor, rng *rand.Rand) *ColorState {
	return &ColorState{Resting: initial, rng: rng}
}

// Observe applies one frame's bounce result to the color state.
func (cs *ColorState) Observe(r Result) {
	switch {
	case r.CornerHit:
		cs.Resting = Gold
		cs.flashFrames = CornerFlashFrames
		cs.flashStep = 0
	case r.Bounced():
		cs.Resting = cs.randomResting()
	}
}

// randomResting draws uniformly from the resting palette, redrawing until
// the choice differs from the current resting color.
func (cs *ColorState) randomResting() LogoColor {
	for {
		choice := restingPalette[cs.rng.Intn(len(restingPalette))]
		if choice != cs.Resting {
			return choice
		}
	}
}

// FrameColor returns the color to draw this frame and advances the flash
// animation by one frame. Call exactly once per frame.
func (cs *ColorState) FrameColor() color.RGBA {
	if cs.flashFrames > 0 {
		c := flashPalette[cs.flashStep%len(flashPalette)]
		cs.flashFrames--
		cs.flashStep++
		return c.Color()
	}
	return cs.Resting.Color()
}

// Flashing reports whether a corner flash is still running.
func (cs *ColorState) Flashing() bool {
	return cs.flashFrames > 0
}
