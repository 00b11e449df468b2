// Package terminal implements the presentation sink and key input source on a text terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	bell        = "\a"

	pixelOn  = "█"
	pixelOff = " "
)

// Display renders frames as full block characters, one per lit pixel.
type Display struct {
	w       io.Writer
	started bool
}

// NewDisplay returns a display writing to the given terminal output.
func NewDisplay(w io.Writer) *Display {
	return &Display{w: w}
}

// Present draws the framebuffer. The screen is cleared before the first
// frame, later frames overwrite the previous one from the home position.
func (d *Display) Present(fb *machine.Framebuffer) error {
	var sb strings.Builder
	if !d.started {
		sb.WriteString(clearScreen)
		d.started = true
	}
	sb.WriteString(cursorHome)
	sb.WriteString(strings.ReplaceAll(Render(fb), "\n", "\r\n"))

	if _, err := io.WriteString(d.w, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Beep rings the terminal bell.
func (d *Display) Beep() error {
	if _, err := io.WriteString(d.w, bell); err != nil {
		return fmt.Errorf("writing bell: %w", err)
	}
	return nil
}

// Render returns the framebuffer as text, one line per pixel row.
func Render(fb *machine.Framebuffer) string {
	var sb strings.Builder
	sb.Grow((machine.DisplayWidth*len(pixelOn) + 1) * machine.DisplayHeight)

	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			if fb.Pixel(x, y) == 1 {
				sb.WriteString(pixelOn)
			} else {
				sb.WriteString(pixelOff)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Discard is a presentation sink that drops all frames and beeps.
type Discard struct{}

// Present implements the presentation sink.
func (Discard) Present(*machine.Framebuffer) error { return nil }

// Beep implements the presentation sink.
func (Discard) Beep() error { return nil }
