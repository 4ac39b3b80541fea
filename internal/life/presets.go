package life

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPreset is returned by LoadPreset for names that were never registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// Pattern is a named constellation of live cells at absolute coordinates.
type Pattern struct {
	Name  string
	Label string
	Cells []Point
}

// Bounds returns the smallest grid size that holds every cell of the pattern.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

var presets = map[string]Pattern{}

// RegisterPreset adds a pattern under its name, replacing any previous one.
func RegisterPreset(p Pattern) {
	if p.Name == "" {
		return
	}
	presets[p.Name] = p
}

// Preset looks up a registered pattern.
func Preset(name string) (Pattern, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets returns the registered pattern names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPreset clears the grid and stamps the named pattern. Cells that fall
// outside the grid are dropped. An unknown name leaves the grid untouched.
func (l *Life) LoadPreset(name string) error {
	p, ok := presets[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPreset, "load %q", name)
	}
	l.Clear()
	for _, c := range p.Cells {
		l.SetCell(c.X, c.Y, Alive)
	}
	return nil
}

// GliderGun is the Gosper glider gun. It needs a grid of at least 46x19.
var GliderGun = Pattern{
	Name:  "glidergun",
	Label: "Glider Gun",
	Cells: []Point{
		{10, 14}, {10, 15}, {11, 14}, {11, 15},
		{20, 14}, {20, 15}, {20, 16}, {21, 13}, {21, 17},
		{22, 12}, {22, 18}, {23, 12}, {23, 18}, {24, 15},
		{25, 13}, {25, 17}, {26, 14}, {26, 15}, {26, 16}, {27, 15},
		{30, 12}, {30, 13}, {30, 14}, {31, 12}, {31, 13}, {31, 14},
		{32, 11}, {32, 15},
		{34, 10}, {34, 11}, {34, 15}, {34, 16},
		{44, 12}, {44, 13}, {45, 12}, {45, 13},
	},
}

func init() {
	RegisterPreset(GliderGun)
	RegisterPreset(Pattern{
		Name:  "glider",
		Label: "Glider",
		Cells: []Point{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}},
	})
	RegisterPreset(Pattern{
		Name:  "blinker",
		Label: "Blinker",
		Cells: []Point{{1, 2}, {2, 2}, {3, 2}},
	})
}
