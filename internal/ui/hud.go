//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the help panel and the status line.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// DrawHelp paints the controls list over a blank background.
func (h *HUD) DrawHelp(screen *ebiten.Image, lines []string) {
	screen.Fill(color.White)
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range lines {
		col := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		if i == 0 {
			col = color.RGBA{A: 255}
		}
		text.Draw(screen, line, face, panelPadding, y, col)
		y += lineHeight
	}
}

// DrawStatus paints a one-line summary in the bottom-left corner.
func (h *HUD) DrawStatus(screen *ebiten.Image, snap core.ParameterSnapshot) {
	face := basicfont.Face7x13
	line := StatusLine(snap)
	bounds := text.BoundString(face, line)
	height := screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*statusPadding), float64(bounds.Dy()+2*statusPadding))
	op.GeoM.Translate(0, float64(height-bounds.Dy()-2*statusPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, line, face, statusPadding, height-statusPadding-bounds.Max.Y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

const (
	panelPadding   = 10
	headerBaseline = 14
	lineHeight     = 20
	statusPadding  = 4
)
