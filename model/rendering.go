package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer presents RGBA frames as text blocks
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display writes the frame to the terminal, one block per alive-coloured pixel
func (r *TerminalRenderer) Display(frame []byte, width, height int) error {
	if len(frame) < width*height*bytesPerPixel {
		return errors.Errorf("[Display] frame of %d bytes is too small for %dx%d", len(frame), width, height)
	}

	w := bufio.NewWriter(r.out)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * bytesPerPixel
			if isAlivePixel(frame[i:]) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClear)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
