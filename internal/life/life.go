package life

import (
	"math/rand/v2"

	"conway/internal/core"

	"golang.org/x/sync/errgroup"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

var _ core.Sim = (*Life)(nil)

// Life implements Conway's Game of Life on a bounded grid. Positions outside
// the grid count as dead and are never wrapped.
type Life struct {
	cfg Config

	cur *core.ByteGrid
	nxt *core.ByteGrid

	rng        *rand.Rand
	generation int
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead grid configured from cfg.
func NewWithConfig(cfg Config) *Life {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Life{
		cfg: cfg,
		cur: cur,
		nxt: core.NewByteGrid(cur.W, cur.H),
		rng: core.NewRNG(cfg.Seed).Source(),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current generation in row-major order. Callers must treat
// it as read-only; use SetCell to edit.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation reports how many advances ran since the grid was last cleared,
// randomized or loaded from a preset.
func (l *Life) Generation() int { return l.generation }

// Population counts the live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// IsAlive reports whether (x, y) holds a live cell.
func (l *Life) IsAlive(x, y int) bool { return l.cur.At(x, y) == uint8(Alive) }

// SetCell overwrites a single position. It reports false when (x, y) is
// outside the grid, in which case nothing changes.
func (l *Life) SetCell(x, y int, c Cell) bool {
	if c != Dead {
		c = Alive
	}
	return l.cur.Set(x, y, uint8(c))
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Randomize sets every cell alive or dead with equal probability.
func (l *Life) Randomize() {
	core.FillBinary(l.rng, l.cur.Cells())
	l.generation = 0
}

// Reset re-seeds the random source and randomizes the board.
func (l *Life) Reset(seed int64) {
	l.cfg.Seed = seed
	l.rng = core.NewRNG(seed).Source()
	l.Randomize()
}

// CountNeighbours returns the number of live cells among the eight positions
// surrounding (x, y).
func (l *Life) CountNeighbours(x, y int) int {
	g := l.cur
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			n += int(g.Cells()[ny*g.W+nx])
		}
	}
	return n
}

// Advance computes the next generation from the current one and swaps the
// buffers. With more than one worker the rows are split into bands that are
// computed concurrently; each band only writes its own rows of the next buffer.
func (l *Life) Advance() {
	h := l.cur.H
	workers := l.cfg.Workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		l.stepRows(0, h)
	} else {
		var eg errgroup.Group
		band := (h + workers - 1) / workers
		for y0 := 0; y0 < h; y0 += band {
			y0 := y0
			y1 := min(y0+band, h)
			eg.Go(func() error {
				l.stepRows(y0, y1)
				return nil
			})
		}
		// stepRows cannot fail; Wait only joins the bands.
		_ = eg.Wait()
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

func (l *Life) stepRows(y0, y1 int) {
	w := l.cur.W
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := l.CountNeighbours(x, y)
			alive := cur[idx] == uint8(Alive)
			nxt[idx] = uint8(Dead)
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = uint8(Alive)
			}
		}
	}
}
