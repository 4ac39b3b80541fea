// Package term drives the control shell from a terminal. Each grid cell maps
// to one terminal column and row.
package term

import (
	"context"
	"time"

	"conway/internal/app"
	"conway/internal/life"
	"conway/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	liveRune = '█'
	gridRune = '·'
)

var runeActions = map[rune]app.Action{
	' ': app.ActionTogglePause,
	'n': app.ActionStepOnce,
	'f': app.ActionFaster,
	's': app.ActionSlower,
	'd': app.ActionDefaultSpeed,
	'r': app.ActionRandomize,
	'c': app.ActionClear,
	'g': app.ActionGliderGun,
	'l': app.ActionToggleGrid,
	'h': app.ActionToggleHelp,
	'x': app.ActionReseed,
	'q': app.ActionQuit,
}

// Terminal renders a Shell onto a tcell screen.
type Terminal struct {
	screen tcell.Screen
	shell  *app.Shell
	frame  time.Duration

	liveStyle   tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// New wraps an initialised screen. The screen is owned by the caller.
func New(screen tcell.Screen, shell *app.Shell, tps int) *Terminal {
	if tps <= 0 {
		tps = 60
	}
	screen.EnableMouse()
	return &Terminal{
		screen:      screen,
		shell:       shell,
		frame:       time.Second / time.Duration(tps),
		liveStyle:   tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		deadStyle:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Run pumps screen events and redraws once per frame until the shell quits,
// the screen is finalised, or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.Handle(ev)
			if t.shell.Quit() {
				return nil
			}
		case now := <-ticker.C:
			t.shell.Tick(now)
			t.Draw()
		}
	}
}

// Handle applies a single screen event to the shell. While the help panel is
// up only the help toggle and quit get through.
func (t *Terminal) Handle(ev tcell.Event) {
	help := t.shell.HelpVisible()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.shell.Apply(app.ActionQuit)
		case tcell.KeyRune:
			action, ok := runeActions[ev.Rune()]
			if !ok {
				return
			}
			if help && action != app.ActionToggleHelp && action != app.ActionQuit {
				return
			}
			t.shell.Apply(action)
		}
	case *tcell.EventMouse:
		if help {
			return
		}
		x, y := ev.Position()
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			t.shell.PaintCell(x, y, life.Alive)
		case ev.Buttons()&tcell.Button2 != 0:
			t.shell.PaintCell(x, y, life.Dead)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// Draw paints the grid, or the help panel when it is visible.
func (t *Terminal) Draw() {
	t.screen.Clear()
	if t.shell.HelpVisible() {
		for i, line := range app.HelpLines() {
			t.drawString(0, i, line, tcell.StyleDefault)
		}
		t.screen.Show()
		return
	}

	sim := t.shell.Sim()
	size := sim.Size()
	grid := t.shell.GridLines()
	for i, c := range sim.Cells() {
		x, y := i%size.W, i/size.W
		switch {
		case c != 0:
			t.screen.SetContent(x, y, liveRune, nil, t.liveStyle)
		case grid:
			t.screen.SetContent(x, y, gridRune, nil, t.deadStyle)
		}
	}
	t.drawString(0, size.H, sim.Name()+"  "+ui.StatusLine(t.shell.Parameters()), t.statusStyle)
	t.screen.Show()
}

func (t *Terminal) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
