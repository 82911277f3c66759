// Package overlay runs the transparent click-through window and drives the
// bounce simulation from the display's frame clock.
package overlay

import (
	"fmt"
	"image/color"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dvdbounce/internal/audio"
	"dvdbounce/internal/config"
	"dvdbounce/internal/sim"
)

const (
	// Base velocity at speed multiplier 1, pixels per second.
	baseSpeedX = 240.0
	baseSpeedY = 180.0

	// A frame after a long stall (suspend, heavy swap) is clamped so the
	// simulator doesn't grind through thousands of sub-steps at once.
	maxFrameDelta = 250 * time.Millisecond

	tracePointCap = 4096
)

var traceColor = color.RGBA{R: 255, G: 255, B: 255, A: 70}

// Game implements ebiten.Game. One Update per tick: poll the quit flag,
// refresh bounds, step the simulator, decide the frame color.
type Game struct {
	opts    config.Options
	logo    *Logo
	sim     *sim.Simulator
	colors  *sim.ColorState
	trace   *sim.Trace
	chime   *audio.Chime
	running *atomic.Bool

	lastFrame time.Time
	drawColor color.RGBA
	boundsW   int
	boundsH   int
}

// NewGame places the logo at the screen center with the configured speed.
// running is the shared quit flag; any writer may clear it and the loop
// exits on the next frame.
func NewGame(opts config.Options, logo *Logo, chime *audio.Chime, running *atomic.Bool) *Game {
	w, h := screenBounds()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := sim.New(
		sim.Vec2{X: (float64(w) - logo.Width) * 0.5, Y: (float64(h) - logo.Height) * 0.5},
		sim.Vec2{X: baseSpeedX * opts.Speed, Y: baseSpeedY * opts.Speed},
		sim.Vec2{X: logo.Width, Y: logo.Height},
		float64(opts.CornerMargin),
		rng,
	)

	g := &Game{
		opts:      opts,
		logo:      logo,
		sim:       s,
		colors:    sim.NewColorState(sim.Cyan, rng),
		chime:     chime,
		running:   running,
		lastFrame: time.Now(),
		drawColor: sim.Cyan.Color(),
		boundsW:   w,
		boundsH:   h,
	}
	if opts.Trace {
		g.trace = sim.NewTrace(tracePointCap)
		g.trace.Append(s.Center())
	}
	return g
}

// screenBounds returns the current monitor size, falling back to the window
// size when the monitor reports nothing useful.
func screenBounds() (int, int) {
	w, h := ebiten.Monitor().Size()
	if w <= 0 || h <= 0 {
		w, h = ebiten.WindowSize()
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (g *Game) Update() error {
	if !g.running.Load() {
		return ebiten.Termination
	}
	if ebiten.IsFocused() && ctrlPressed() &&
		(inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyQ)) {
		g.running.Store(false)
		return ebiten.Termination
	}

	w, h := screenBounds()
	if w != g.boundsW || h != g.boundsH {
		g.boundsW, g.boundsH = w, h
		ebiten.SetWindowPosition(0, 0)
		ebiten.SetWindowSize(w, h)
	}

	now := time.Now()
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	res := g.sim.Step(dt.Seconds(), float64(w), float64(h))
	if res.CornerHit {
		c := g.sim.Center()
		fmt.Printf("corner hit at (%.1f, %.1f) with speed %.2fx\n", c.X, c.Y, g.opts.Speed)
		g.chime.Play()
	}

	g.colors.Observe(res)
	g.drawColor = g.colors.FrameColor()

	if g.trace != nil {
		g.trace.Append(g.sim.Center())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.trace != nil {
		pts := g.trace.Points()
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(screen,
				float32(pts[i-1].X), float32(pts[i-1].Y),
				float32(pts[i].X), float32(pts[i].Y),
				1, traceColor, false)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.logo.Scale, g.logo.Scale)
	op.GeoM.Translate(g.sim.Pos.X, g.sim.Pos.Y)
	op.ColorScale.ScaleWithColor(g.drawColor)
	screen.DrawImage(g.logo.Image, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)
}
