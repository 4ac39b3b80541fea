//go:build ebiten

package app

import (
	"time"

	"conway/internal/core"
	"conway/internal/life"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyN, ActionStepOnce},
	{ebiten.KeyF, ActionFaster},
	{ebiten.KeyS, ActionSlower},
	{ebiten.KeyD, ActionDefaultSpeed},
	{ebiten.KeyR, ActionRandomize},
	{ebiten.KeyX, ActionReseed},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyG, ActionGliderGun},
	{ebiten.KeyL, ActionToggleGrid},
	{ebiten.KeyEscape, ActionQuit},
	{ebiten.KeyQ, ActionQuit},
}

// Game adapts the control shell to the ebiten.Game interface.
type Game struct {
	shell   *Shell
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
}

// New constructs a Game drawing the shell's engine.
func New(shell *Shell) *Game {
	sim := shell.Sim()
	size := sim.Size()
	return &Game{
		shell:   shell,
		sim:     sim,
		painter: render.NewGridPainter(size, shell.CellSize(), render.LiveColor, render.DeadColor),
		overlay: ui.NewOverlay(size, shell.CellSize()),
		hud:     ui.NewHUD(),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	g.shell.SetHelpHeld(ebiten.IsKeyPressed(ebiten.KeyH))
	if g.shell.HelpVisible() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.shell.Apply(ka.action)
		}
	}
	if g.shell.Quit() {
		return ebiten.Termination
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.shell.Paint(mx, my, life.Alive)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		g.shell.Paint(mx, my, life.Dead)
	}

	g.shell.Tick(time.Now())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.shell.HelpVisible() {
		g.hud.DrawHelp(screen, HelpLines())
		return
	}
	g.painter.Draw(screen, g.sim.Cells())
	if g.shell.GridLines() {
		g.overlay.Draw(screen)
	}
	if g.shell.Paused() {
		g.hud.DrawStatus(screen, g.shell.Parameters())
	}
}

// Title returns the window title.
func (g *Game) Title() string { return "Conway's Game of Life (" + g.sim.Name() + ")" }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.shell.CellSize(), s.H * g.shell.CellSize()
}
