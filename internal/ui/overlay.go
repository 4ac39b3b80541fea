//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/core"
	"conway/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws grid lines on top of the cell layer.
type Overlay struct {
	size  core.Size
	scale int
	color color.RGBA
	pixel *ebiten.Image

	xs []int
	ys []int
}

// NewOverlay constructs an overlay for a grid of the given size drawn at scale
// pixels per cell.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{
		size:  size,
		scale: scale,
		color: color.RGBA{R: 200, G: 200, B: 200, A: 255},
		xs:    render.GridLineOffsets(size.W*scale, scale),
		ys:    render.GridLineOffsets(size.H*scale, scale),
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders one-pixel lines at every multiple of the cell size.
func (o *Overlay) Draw(screen *ebiten.Image) {
	width := float64(o.size.W * o.scale)
	height := float64(o.size.H * o.scale)
	for _, x := range o.xs {
		o.drawRect(screen, float64(x), 0, 1, height)
	}
	for _, y := range o.ys {
		o.drawRect(screen, 0, float64(y), width, 1)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.color)
	screen.DrawImage(o.pixel, op)
}
