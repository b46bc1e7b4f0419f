//go:build ebiten

package app

import (
	"image/color"

	"fractalart/internal/core"
	"fractalart/internal/render"
	"fractalart/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Unlike a
// fixed-size automaton, an enhancement sim grows every step, so the painter
// and window are rebuilt whenever the reported size changes.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale     int
	maxRounds int
	round     int
	paused    bool
	tickOnce  bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, maxRounds int) *Game {
	size := sim.Size()
	return &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(),
		onColor:   color.White,
		offColor:  color.Black,
		scale:     scale,
		maxRounds: maxRounds,
	}
}

// Reset rewinds the simulation to its seed grid.
func (g *Game) Reset() {
	g.sim.Reset(0)
	g.round = 0
	g.tickOnce = false
	g.syncPainter()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	atLimit := g.maxRounds > 0 && g.round >= g.maxRounds
	if ((!g.paused) || g.tickOnce) && !atLimit {
		if err := g.sim.Step(); err != nil {
			return err
		}
		g.round++
		g.tickOnce = false
		g.syncPainter()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.hud != nil {
		on := 0
		for _, c := range g.sim.Cells() {
			on += int(c)
		}
		g.hud.Draw(screen, g.round, g.sim.Size().W, on)
	}
}

// Layout returns the logical screen size for the current grid.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// syncPainter reallocates the painter and resizes the window after the grid
// has grown or been reset.
func (g *Game) syncPainter() {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w == size.W && h == size.H {
		return
	}
	g.painter = render.NewGridPainter(size.W, size.H)
	ebiten.SetWindowSize(size.W*g.scale, size.H*g.scale)
}
