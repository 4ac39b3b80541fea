package app

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"conway/internal/core"
	"conway/internal/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	CellSize int           `json:"cell_size"`
	TPS      int           `json:"tps"`
	Interval time.Duration `json:"interval"`
	Seed     int64         `json:"seed"`
	Workers  int           `json:"workers"`
	Preset   string        `json:"preset"`

	GridLines        bool `json:"grid_lines"`
	Running          bool `json:"running"`
	EditWhileRunning bool `json:"edit_while_running"`
	HelpAtStart      bool `json:"help_at_start"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:       def.Width,
		Height:      def.Height,
		CellSize:    10,
		TPS:         60,
		Interval:    core.DefaultInterval,
		Workers:     def.Workers,
		HelpAtStart: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 picks one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently per generation")
	fs.StringVar(&c.Preset, "preset", c.Preset, "pattern to load at start ("+strings.Join(life.Presets(), ", ")+")")
	fs.BoolVar(&c.GridLines, "grid", c.GridLines, "draw grid lines")
	fs.BoolVar(&c.Running, "run", c.Running, "start running instead of paused")
	fs.BoolVar(&c.EditWhileRunning, "edit-running", c.EditWhileRunning, "allow painting cells while running")
	fs.BoolVar(&c.HelpAtStart, "help-at-start", c.HelpAtStart, "show the controls until H is pressed")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with defaults; flags override it")
}

// Parse loads the JSON file named by -config, if any, and then applies args on
// top so explicit flags win over file values.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigFile == "" {
		return c.Validate()
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.Load(c.ConfigFile); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "reapply flag -%s", name)
		}
	}
	return c.Validate()
}

// Load overlays the JSON document at path onto c.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// UnmarshalJSON decodes a config document. The interval may be a duration
// string such as "250ms" or a number of nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	doc := struct {
		*plain
		Interval json.RawMessage `json:"interval"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Interval) == 0 || string(doc.Interval) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(doc.Interval, &text); err == nil {
		d, err := time.ParseDuration(text)
		if err != nil {
			return errors.Wrap(err, "interval")
		}
		c.Interval = d
		return nil
	}
	var ns int64
	if err := json.Unmarshal(doc.Interval, &ns); err != nil {
		return errors.Wrap(err, "interval")
	}
	c.Interval = time.Duration(ns)
	return nil
}

// Validate rejects configurations the shell cannot run.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Interval < core.FastestInterval || c.Interval > core.SlowestInterval {
		return errors.Errorf("interval %v outside [%v, %v]", c.Interval, core.FastestInterval, core.SlowestInterval)
	}
	if c.Preset != "" {
		if _, ok := life.Preset(c.Preset); !ok {
			return errors.Wrapf(life.ErrUnknownPreset, "preset %q (available: %s)", c.Preset, strings.Join(life.Presets(), ", "))
		}
	}
	return nil
}

// Life returns the engine configuration described by c.
func (c *Config) Life() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Seed: c.Seed, Workers: c.Workers}
}
