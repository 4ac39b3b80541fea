//go:build ebiten

package render

import (
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws a binary cell buffer as squares of a fixed edge length.
// The cells are uploaded into a one-pixel-per-cell image that is then scaled.
type GridPainter struct {
	size  core.Size
	scale float64
	on    color.Color
	off   color.Color

	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for a grid of the given size drawn at
// cellSize pixels per cell.
func NewGridPainter(size core.Size, cellSize int, on, off color.Color) *GridPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridPainter{
		size:  size,
		scale: float64(cellSize),
		on:    on,
		off:   off,
		img:   ebiten.NewImage(size.W, size.H),
		buf:   make([]byte, 4*size.W*size.H),
	}
}

// Draw paints cells onto dst. Buffers of the wrong length are skipped.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.size.W*gp.size.H {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(gp.scale, gp.scale)
	dst.DrawImage(gp.img, op)
}
