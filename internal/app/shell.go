package app

import (
	"io"
	"log"
	"strconv"
	"time"

	"conway/internal/core"
	"conway/internal/life"
)

// Action is a discrete command issued by a front-end.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStepOnce
	ActionFaster
	ActionSlower
	ActionDefaultSpeed
	ActionRandomize
	ActionReseed
	ActionClear
	ActionGliderGun
	ActionToggleGrid
	ActionToggleHelp
	ActionQuit
)

// Shell owns the engine and the interactive state around it. It knows nothing
// about windows or terminals; front-ends translate their input into Actions
// and pointer edits, then call Tick once per frame.
type Shell struct {
	life     *life.Life
	interval *core.Interval
	cellSize int
	logger   *log.Logger

	paused           bool
	stepOnce         bool
	gridLines        bool
	editWhileRunning bool
	quit             bool

	helpIntro   bool
	helpHeld    bool
	helpSwallow bool
}

// NewShell builds a Shell and its engine from cfg. A nil logger discards output.
func NewShell(cfg *Config, logger *log.Logger) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Shell{
		life:             life.NewWithConfig(cfg.Life()),
		interval:         core.NewInterval(cfg.Interval),
		cellSize:         cfg.CellSize,
		logger:           logger,
		paused:           !cfg.Running,
		gridLines:        cfg.GridLines,
		editWhileRunning: cfg.EditWhileRunning,
		helpIntro:        cfg.HelpAtStart,
	}
	if cfg.Preset != "" {
		s.LoadPreset(cfg.Preset)
	}
	return s, nil
}

// Life exposes the engine for rendering.
func (s *Shell) Life() *life.Life { return s.life }

// Sim exposes the engine through the contract the renderers draw from.
func (s *Shell) Sim() core.Sim { return s.life }

// CellSize returns the edge length of a cell in pixels.
func (s *Shell) CellSize() int { return s.cellSize }

// Paused reports whether generations are on hold.
func (s *Shell) Paused() bool { return s.paused }

// GridLines reports whether the grid overlay is enabled.
func (s *Shell) GridLines() bool { return s.gridLines }

// Quit reports whether a front-end asked to exit.
func (s *Shell) Quit() bool { return s.quit }

// Interval returns the current time between generations.
func (s *Shell) Interval() time.Duration { return s.interval.Every() }

// HelpVisible reports whether the controls panel should be drawn.
func (s *Shell) HelpVisible() bool { return s.helpIntro || s.helpHeld }

// SetHelpHeld records whether the help key is currently held down. The press
// that dismisses the panel shown at start does not reopen it.
func (s *Shell) SetHelpHeld(held bool) {
	switch {
	case !held:
		s.helpHeld = false
		s.helpSwallow = false
	case s.helpIntro:
		s.helpIntro = false
		s.helpSwallow = true
	case !s.helpSwallow:
		s.helpHeld = true
	}
}

// Apply executes a single action.
func (s *Shell) Apply(a Action) {
	switch a {
	case ActionTogglePause:
		s.paused = !s.paused
		s.logger.Printf("paused=%v", s.paused)
	case ActionStepOnce:
		s.stepOnce = true
	case ActionFaster:
		s.interval.Faster()
	case ActionSlower:
		s.interval.Slower()
	case ActionDefaultSpeed:
		s.interval.Default()
	case ActionRandomize:
		s.life.Randomize()
		s.logger.Printf("randomized, population=%d", s.life.Population())
	case ActionReseed:
		seed := time.Now().UnixNano()
		s.life.Reset(seed)
		s.logger.Printf("reseeded with %d, population=%d", seed, s.life.Population())
	case ActionClear:
		s.life.Clear()
		s.logger.Print("cleared")
	case ActionGliderGun:
		s.LoadPreset(life.GliderGun.Name)
	case ActionToggleGrid:
		s.gridLines = !s.gridLines
	case ActionToggleHelp:
		if s.helpIntro {
			s.helpIntro = false
		} else {
			s.helpHeld = !s.helpHeld
		}
	case ActionQuit:
		s.quit = true
	}
}

// LoadPreset replaces the grid with a registered pattern. Patterns larger than
// the grid are clipped and a warning is logged.
func (s *Shell) LoadPreset(name string) {
	if err := s.life.LoadPreset(name); err != nil {
		s.logger.Print(err)
		return
	}
	p, _ := life.Preset(name)
	s.logger.Printf("loaded preset %s (%s)", p.Name, p.Label)
	w, h := p.Bounds()
	if size := s.life.Size(); w > size.W || h > size.H {
		s.logger.Printf("preset %s needs %dx%d, grid is %dx%d; pattern clipped", p.Name, w, h, size.W, size.H)
	}
}

// CellAt maps a pointer position in pixels to a grid cell.
func (s *Shell) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/s.cellSize, py/s.cellSize
	size := s.life.Size()
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// Paint sets the cell under the pointer. Edits are dropped while the
// simulation runs unless the shell was configured to allow them.
func (s *Shell) Paint(px, py int, c life.Cell) bool {
	x, y, ok := s.CellAt(px, py)
	if !ok {
		return false
	}
	return s.PaintCell(x, y, c)
}

// PaintCell sets a cell by grid coordinates under the same edit policy as Paint.
func (s *Shell) PaintCell(x, y int, c life.Cell) bool {
	if !s.paused && !s.editWhileRunning {
		return false
	}
	return s.life.SetCell(x, y, c)
}

// Tick advances the engine at most once. It reports whether a generation ran.
func (s *Shell) Tick(now time.Time) bool {
	if s.stepOnce {
		s.stepOnce = false
		s.life.Advance()
		s.interval.Mark(now)
		return true
	}
	if s.paused || !s.interval.Ready(now) {
		return false
	}
	s.life.Advance()
	return true
}

// Parameters reports the shell state merged with the engine counters.
func (s *Shell) Parameters() core.ParameterSnapshot {
	shell := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Controls",
		Params: []core.Parameter{
			{Key: "interval", Label: "Interval", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.interval.Every().Seconds(), 'f', 3, 64)},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
			{Key: "grid", Label: "Grid", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.gridLines)},
		},
	}}}
	return shell.Merge(s.life.Parameters())
}

// HelpLines lists the controls shown in the help panel.
func HelpLines() []string {
	return []string{
		"Controls:",
		"Space: Pause/Unpause",
		"N: Step once",
		"Left Mouse: Paint live cells (paused)",
		"Right Mouse: Erase cells (paused)",
		"S: Slow down",
		"F: Speed up",
		"D: Default speed",
		"R: Randomize",
		"X: Reseed and randomize",
		"G: Glider Gun",
		"C: Clear",
		"L: Toggle grid lines",
		"Esc: Exit",
		"Hold H: Show/Hide this menu",
		"Press H to start. Enjoy!",
	}
}
