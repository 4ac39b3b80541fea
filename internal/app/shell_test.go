package app

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"conway/internal/core"
	"conway/internal/life"
)

func newTestShell(t *testing.T, mutate func(*Config)) *Shell {
	t.Helper()
	cfg := NewConfig()
	cfg.Width = 10
	cfg.Height = 8
	cfg.Seed = 1
	if mutate != nil {
		mutate(cfg)
	}
	s, err := NewShell(cfg, nil)
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	return s
}

func TestShellStartsPausedWithHelp(t *testing.T) {
	s := newTestShell(t, nil)
	if !s.Paused() {
		t.Fatal("shell should start paused")
	}
	if !s.HelpVisible() {
		t.Fatal("help should be visible at start")
	}
	if s.Tick(time.Unix(10, 0)) {
		t.Fatal("paused shell must not advance")
	}
}

func TestShellHelpHeld(t *testing.T) {
	s := newTestShell(t, nil)

	s.SetHelpHeld(true)
	if s.HelpVisible() {
		t.Fatal("first press should dismiss the start panel")
	}
	s.SetHelpHeld(true)
	if s.HelpVisible() {
		t.Fatal("holding the dismissing press must not reopen the panel")
	}
	s.SetHelpHeld(false)
	s.SetHelpHeld(true)
	if !s.HelpVisible() {
		t.Fatal("help should show while the key is held")
	}
	s.SetHelpHeld(false)
	if s.HelpVisible() {
		t.Fatal("help should hide on release")
	}
}

func TestShellToggleHelp(t *testing.T) {
	s := newTestShell(t, nil)
	s.Apply(ActionToggleHelp)
	if s.HelpVisible() {
		t.Fatal("toggle should dismiss the start panel")
	}
	s.Apply(ActionToggleHelp)
	if !s.HelpVisible() {
		t.Fatal("toggle should reopen the panel")
	}
}

func TestShellPaintOnlyWhilePaused(t *testing.T) {
	s := newTestShell(t, nil)
	if !s.Paint(25, 15, life.Alive) {
		t.Fatal("paint while paused should succeed")
	}
	if !s.Life().IsAlive(2, 1) {
		t.Fatal("pixel (25,15) should map to cell (2,1)")
	}

	s.Apply(ActionTogglePause)
	if s.Paint(55, 15, life.Alive) {
		t.Fatal("paint while running should be ignored")
	}
	if s.Life().IsAlive(5, 1) {
		t.Fatal("running shell modified the grid")
	}

	s.Apply(ActionTogglePause)
	if !s.Paint(25, 15, life.Dead) {
		t.Fatal("erase while paused should succeed")
	}
	if s.Life().IsAlive(2, 1) {
		t.Fatal("right-button paint should kill the cell")
	}
}

func TestShellPaintWhileRunningWhenAllowed(t *testing.T) {
	s := newTestShell(t, func(c *Config) {
		c.Running = true
		c.EditWhileRunning = true
	})
	if !s.Paint(0, 0, life.Alive) {
		t.Fatal("edit policy should allow painting while running")
	}
}

func TestShellCellAtBounds(t *testing.T) {
	s := newTestShell(t, nil)
	for _, p := range [][2]int{{-5, 0}, {0, -5}, {-1, -1}, {100, 0}, {0, 80}} {
		if _, _, ok := s.CellAt(p[0], p[1]); ok {
			t.Fatalf("CellAt(%d,%d) should be out of range", p[0], p[1])
		}
		if s.Paint(p[0], p[1], life.Alive) {
			t.Fatalf("Paint(%d,%d) should be ignored", p[0], p[1])
		}
	}
	if s.Life().Population() != 0 {
		t.Fatal("out-of-range paints changed the grid")
	}
	if x, y, ok := s.CellAt(99, 79); !ok || x != 9 || y != 7 {
		t.Fatalf("CellAt(99,79) = %d,%d,%v", x, y, ok)
	}
}

func TestShellTickHonoursInterval(t *testing.T) {
	s := newTestShell(t, func(c *Config) { c.Running = true })
	start := time.Unix(100, 0)
	if !s.Tick(start) {
		t.Fatal("first running tick should advance")
	}
	if s.Tick(start.Add(50 * time.Millisecond)) {
		t.Fatal("tick inside the interval must not advance")
	}
	if !s.Tick(start.Add(150 * time.Millisecond)) {
		t.Fatal("tick after the interval should advance")
	}
	if got := s.Life().Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}
}

func TestShellStepOnceWhilePaused(t *testing.T) {
	s := newTestShell(t, nil)
	s.Apply(ActionStepOnce)
	if !s.Tick(time.Unix(1, 0)) {
		t.Fatal("step once should advance while paused")
	}
	if s.Tick(time.Unix(2, 0)) {
		t.Fatal("step once should only advance a single generation")
	}
}

func TestShellSpeedControls(t *testing.T) {
	s := newTestShell(t, nil)
	s.Apply(ActionSlower)
	if want := core.DefaultInterval + core.IntervalStep; s.Interval() != want {
		t.Fatalf("interval = %v, want %v", s.Interval(), want)
	}
	for i := 0; i < 10; i++ {
		s.Apply(ActionFaster)
	}
	if s.Interval() != core.FastestInterval {
		t.Fatalf("interval = %v, want %v", s.Interval(), core.FastestInterval)
	}
	s.Apply(ActionDefaultSpeed)
	if s.Interval() != core.DefaultInterval {
		t.Fatalf("interval = %v, want %v", s.Interval(), core.DefaultInterval)
	}
}

func TestShellGridActions(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.Seed = 3
	s, err := NewShell(cfg, log.New(&buf, "", 0))
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}

	s.Apply(ActionGliderGun)
	if got := s.Life().Population(); got != 36 {
		t.Fatalf("glider gun population = %d, want 36", got)
	}
	s.Apply(ActionRandomize)
	if s.Life().Population() == 0 {
		t.Fatal("randomize produced an empty grid")
	}
	s.Apply(ActionClear)
	if s.Life().Population() != 0 {
		t.Fatal("clear left live cells")
	}
	s.Apply(ActionToggleGrid)
	if !s.GridLines() {
		t.Fatal("grid lines should toggle on")
	}
	s.Apply(ActionTogglePause)
	s.LoadPreset("missing")

	out := buf.String()
	for _, want := range []string{"loaded preset glidergun", "cleared", "paused=false", "unknown preset"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %q missing %q", out, want)
		}
	}

	s.Apply(ActionQuit)
	if !s.Quit() {
		t.Fatal("quit action should be recorded")
	}
}

func TestShellParameters(t *testing.T) {
	s := newTestShell(t, nil)
	snap := s.Parameters()
	for key, want := range map[string]string{"interval": "0.100", "paused": "true", "grid": "false", "population": "0"} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %s = %+v, want %q", key, p, want)
		}
	}
}

func TestNewShellPreset(t *testing.T) {
	s := newTestShell(t, func(c *Config) {
		c.Width = 46
		c.Height = 19
		c.Preset = "glidergun"
	})
	if got := s.Life().Population(); got != 36 {
		t.Fatalf("population = %d, want 36", got)
	}
}

func TestShellReseed(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.Seed = 5
	s, err := NewShell(cfg, log.New(&buf, "", 0))
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	s.Apply(ActionReseed)
	if s.Life().Population() == 0 {
		t.Fatal("reseed should randomize the grid")
	}
	if p, ok := s.Parameters().Lookup("seed"); !ok || p.Value == "5" {
		t.Fatalf("seed parameter = %+v, expected a fresh seed", p)
	}
	if !strings.Contains(buf.String(), "reseeded with") {
		t.Fatalf("log %q missing reseed entry", buf.String())
	}
}

func TestShellSimMatchesEngine(t *testing.T) {
	s := newTestShell(t, nil)
	s.Life().SetCell(1, 1, life.Alive)
	sim := s.Sim()
	if sim.Name() != "life" {
		t.Fatalf("Name() = %q", sim.Name())
	}
	if size := sim.Size(); size.W != 10 || size.H != 8 {
		t.Fatalf("Size() = %+v", size)
	}
	if sim.Cells()[1*10+1] != 1 {
		t.Fatal("Cells() should expose the engine buffer")
	}
	sim.Reset(9)
	if s.Life().Population() == 0 {
		t.Fatal("Reset should randomize through the engine")
	}
}

func TestShellPresetClippedWarning(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.Width = 20
	cfg.Height = 15
	cfg.Preset = "glidergun"
	if _, err := NewShell(cfg, log.New(&buf, "", 0)); err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"loaded preset glidergun (Glider Gun)", "needs 46x19, grid is 20x15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %q missing %q", out, want)
		}
	}

	buf.Reset()
	cfg.Width, cfg.Height = 46, 19
	if _, err := NewShell(cfg, log.New(&buf, "", 0)); err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	if strings.Contains(buf.String(), "clipped") {
		t.Fatalf("fitting preset logged a clip warning: %q", buf.String())
	}
}
