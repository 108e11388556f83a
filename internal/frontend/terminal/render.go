package terminal

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const statusHelp = "ESC: quit  keys: 1234 qwer asdf zxcv"

// cellRune returns the character for a terminal cell that shows two
// vertically stacked pixels.
func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// renderCells calls set for every terminal cell of the framebuffer, each
// cell covers two display rows.
func renderCells(fb chip8.Framebuffer, set func(x, y int, ch rune)) {
	for y := 0; y < fb.Height(); y += 2 {
		for x := 0; x < fb.Width(); x++ {
			set(x, y/2, cellRune(fb.Pixel(x, y), fb.Pixel(x, y+1)))
		}
	}
}

// statusText returns the status line, it has the same length for both
// tone states so that it overwrites the previous status.
func statusText(sound bool) string {
	indicator := ""
	if sound {
		indicator = "[beep]"
	}
	return fmt.Sprintf("%s  %-6s", statusHelp, indicator)
}
