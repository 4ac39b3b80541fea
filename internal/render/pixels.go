package render

import "image/color"

// Default cell colours.
var (
	LiveColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	DeadColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// GridLineOffsets returns the pixel offsets of the grid lines that separate
// cells of the given size across extent pixels, excluding the outer edges.
func GridLineOffsets(extent, cellSize int) []int {
	if cellSize <= 0 || extent <= cellSize {
		return nil
	}
	offsets := make([]int, 0, extent/cellSize)
	for o := cellSize; o < extent; o += cellSize {
		offsets = append(offsets, o)
	}
	return offsets
}
