//go:build ebiten

package app

import (
	"image/color"
	"time"

	"roomba/internal/core"
	"roomba/internal/monitoring"
	"roomba/internal/render"
	"roomba/internal/sims/roomba"
	"roomba/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the roomba model to the ebiten.Game interface.
type Game struct {
	model   *roomba.Model
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	floor    color.RGBA
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	cellView bool
	seed     int64
}

// New constructs a Game for the provided model. The model is stepped at tps
// independently of the ebiten frame rate.
func New(model *roomba.Model, cfg *Config) *Game {
	size := model.Size()
	return &Game{
		model:    model,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(model, cfg.Scale),
		hud:      ui.NewHUD(model, cfg.HUDWidth),
		pacer:    core.NewFixedStep(nil, cfg.TPS),
		floor:    color.RGBA{R: 245, G: 245, B: 245, A: 255},
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		paused:   cfg.Paused,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the model with the provided seed and the pending
// slider values.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.model.Reset(seed); err != nil {
		monitoring.Logger().Error("reset failed", "seed", seed, "err", err)
		return
	}
	size := g.model.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.tickOnce = false
}

// Update handles per-frame logic and advances the model.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.cellView = !g.cellView
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.model.Size().W * g.scale)

	if !g.model.Running() {
		return nil
	}
	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		if err := g.model.Step(); err != nil {
			monitoring.Logger().Error("step failed", "err", err)
		}
	}
	return nil
}

// Draw renders the current model state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cellView {
		g.painter.BlitPalette(screen, g.model.Cells(), g.model.Palette(), g.scale)
	} else {
		g.painter.BlitFloor(screen, g.floor, g.scale)
		g.painter.DrawSprites(screen, g.model.Sprites(), g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.model.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.model.Size(), g.scale, g.hudWidth)
}
