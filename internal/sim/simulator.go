package sim

import (
	"math"
	"math/rand"
)

const (
	// maxStepPixels bounds how far the logo may travel in one sub-step so a
	// fast logo can't tunnel through a wall between frames.
	maxStepPixels = 16.0

	// jitterDegrees is the half-width of the random rotation applied to the
	// velocity after a bounce. Keeps long runs from settling into a loop.
	jitterDegrees = 0.45
)

// Vec2 is a 2D point or vector in screen pixels.
type Vec2 struct {
	X, Y float64
}

// Result reports what happened during one simulated frame. Flags are
// OR-aggregated over all sub-steps of the frame.
type Result struct {
	BouncedX  bool
	BouncedY  bool
	CornerHit bool
}

// Bounced reports whether either axis hit a wall this frame.
func (r Result) Bounced() bool {
	return r.BouncedX || r.BouncedY
}

// Simulator advances an axis-aligned box bouncing inside the screen bounds.
// Pos is the top-left corner of the box; Vel is in pixels per second.
// Bounds are passed per Step because the screen can change size under us.
type Simulator struct {
	Pos    Vec2
	Vel    Vec2
	Extent Vec2
	Margin float64

	rng *rand.Rand
}

// New returns a simulator with bounce jitter driven by rng.
// A nil rng disables jitter, which makes steps fully deterministic.
func New(pos, vel, extent Vec2, margin float64, rng *rand.Rand) *Simulator {
	return &Simulator{
		Pos:    pos,
		Vel:    vel,
		Extent: extent,
		Margin: margin,
		rng:    rng,
	}
}

// Center returns the center of the box.
func (s *Simulator) Center() Vec2 {
	return Vec2{
		X: s.Pos.X + s.Extent.X*0.5,
		Y: s.Pos.Y + s.Extent.Y*0.5,
	}
}

// Step advances the simulation by dt seconds inside a boundsW×boundsH screen.
// The frame is divided into sub-steps of at most maxStepPixels of travel.
// Each sub-step integrates, clamps the box inside the bounds forcing the
// velocity sign away from any touched wall, and checks corner proximity on
// the clamped position: touching two walls in the same sub-step is always a
// corner hit, touching one wall within Margin of a perpendicular wall counts
// too. When anything bounced, the velocity direction is jittered while its
// magnitude is preserved.
func (s *Simulator) Step(dt, boundsW, boundsH float64) Result {
	var res Result

	travel := math.Max(math.Abs(s.Vel.X), math.Abs(s.Vel.Y)) * dt
	steps := int(math.Ceil(travel / maxStepPixels))
	if steps < 1 {
		steps = 1
	}
	subDt := dt / float64(steps)

	for i := 0; i < steps; i++ {
		var bouncedX, bouncedY bool

		s.Pos.X += s.Vel.X * subDt
		s.Pos.Y += s.Vel.Y * subDt

		if s.Pos.X <= 0 {
			s.Pos.X = 0
			s.Vel.X = math.Abs(s.Vel.X)
			bouncedX = true
		} else if s.Pos.X+s.Extent.X >= boundsW {
			s.Pos.X = boundsW - s.Extent.X
			s.Vel.X = -math.Abs(s.Vel.X)
			bouncedX = true
		}

		if s.Pos.Y <= 0 {
			s.Pos.Y = 0
			s.Vel.Y = math.Abs(s.Vel.Y)
			bouncedY = true
		} else if s.Pos.Y+s.Extent.Y >= boundsH {
			s.Pos.Y = boundsH - s.Extent.Y
			s.Vel.Y = -math.Abs(s.Vel.Y)
			bouncedY = true
		}

		if bouncedX {
			res.BouncedX = true
		}
		if bouncedY {
			res.BouncedY = true
		}

		nearLeft := s.Pos.X <= s.Margin
		nearRight := s.Pos.X+s.Extent.X >= boundsW-s.Margin
		nearTop := s.Pos.Y <= s.Margin
		nearBottom := s.Pos.Y+s.Extent.Y >= boundsH-s.Margin
		nearCorner := (nearLeft || nearRight) && (nearTop || nearBottom)

		if (bouncedX && bouncedY) || (nearCorner && (bouncedX || bouncedY)) {
			res.CornerHit = true
		}
	}

	if res.Bounced() {
		s.applyJitter()
	}
	return res
}

func (s *Simulator) applyJitter() {
	if s.rng == nil {
		return
	}
	speed := math.Hypot(s.Vel.X, s.Vel.Y)
	if speed <= math.SmallestNonzeroFloat64 {
		return
	}

	angle := (s.rng.Float64()*2 - 1) * jitterDegrees * math.Pi / 180
	sin, cos := math.Sincos(angle)
	rx := s.Vel.X*cos - s.Vel.Y*sin
	ry := s.Vel.X*sin + s.Vel.Y*cos

	// Renormalize so the speed is preserved exactly.
	length := math.Hypot(rx, ry)
	if length > math.SmallestNonzeroFloat64 {
		scale := speed / length
		s.Vel.X = rx * scale
		s.Vel.Y = ry * scale
	}
}
