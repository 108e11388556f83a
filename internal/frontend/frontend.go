// Package frontend defines the interface between the emulation driver and
// the host input and output implementations.
package frontend

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrQuit is returned by PollKeys when the user requested to quit.
var ErrQuit = errors.New("quit requested")

// SetKeyFunc sets the pressed state of a key of the CHIP-8 key pad.
type SetKeyFunc func(key uint8, pressed bool)

// Frontend renders the machine display and provides key pad input.
// All methods are called from the goroutine that runs the machine.
type Frontend interface {
	// Init prepares the frontend for output.
	Init() error
	// Close releases all resources of the frontend.
	Close() error
	// Render outputs the current content of the framebuffer.
	Render(fb chip8.Framebuffer) error
	// PollKeys reports all key state changes since the last call, it is
	// called once per frame and must not block.
	PollKeys(set SetKeyFunc) error
	// Sound turns the tone output on or off.
	Sound(on bool)
}
