package model

const bytesPerPixel = 4

var (
	aliveRGBA = [bytesPerPixel]byte{0xff, 0x00, 0x00, 0xff}
	deadRGBA  = [bytesPerPixel]byte{0xff, 0xff, 0xff, 0xff}
)

// Draw rasterizes the board into an RGBA frame, one pixel per cell in row-major order.
// Pixels past the last cell and any trailing partial pixel are left untouched, so the
// frame's width must match the board's for the picture to line up.
func Draw(b *Board, frame []byte) {
	for i := 0; i+bytesPerPixel <= len(frame); i += bytesPerPixel {
		status, ok := b.GetStatusAt(i / bytesPerPixel)
		if !ok {
			continue
		}
		if status == Alive {
			copy(frame[i:i+bytesPerPixel], aliveRGBA[:])
		} else {
			copy(frame[i:i+bytesPerPixel], deadRGBA[:])
		}
	}
}

// Cell is a single positioned cell, drawn on its own against a dead background
type Cell struct {
	X, Y   int
	Status Status
}

// Draw paints every pixel of a frame that is width pixels wide: the cell's own
// pixel is red when alive, every other pixel is white.
func (c Cell) Draw(frame []byte, width int) {
	if width <= 0 {
		return
	}
	for i := 0; i+bytesPerPixel <= len(frame); i += bytesPerPixel {
		pixel := i / bytesPerPixel
		if pixel%width == c.X && pixel/width == c.Y && c.Status == Alive {
			copy(frame[i:i+bytesPerPixel], aliveRGBA[:])
		} else {
			copy(frame[i:i+bytesPerPixel], deadRGBA[:])
		}
	}
}

// isAlivePixel reports whether the RGBA pixel at the start of px is the alive colour
func isAlivePixel(px []byte) bool {
	return len(px) >= bytesPerPixel &&
		px[0] == aliveRGBA[0] && px[1] == aliveRGBA[1] && px[2] == aliveRGBA[2] && px[3] == aliveRGBA[3]
}
