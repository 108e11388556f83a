// Package headless implements a frontend without any output that is used
// for automated runs and tests.
package headless

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

var _ frontend.Frontend = (*Headless)(nil)

// KeyEvent is a scripted key state change that is reported at the given frame.
type KeyEvent struct {
	Frame   uint64
	Key     uint8
	Pressed bool
}

// Headless is a frontend that keeps the last rendered frame in memory.
type Headless struct {
	logger *log.Logger
	events []KeyEvent

	frame      uint64
	renders    uint64
	soundOn    bool
	soundTicks uint64
	last       []byte
	lastText   string
}

// New returns a new headless frontend. The key events are reported to the
// machine in the frame they are scheduled for.
func New(logger *log.Logger, events ...KeyEvent) *Headless {
	return &Headless{
		logger: logger,
		events: append([]KeyEvent(nil), events...),
	}
}

// Init implements frontend.Frontend.
func (h *Headless) Init() error {
	return nil
}

// Close logs the last rendered frame on debug level.
func (h *Headless) Close() error {
	if h.renders > 0 {
		h.logger.Debug("Last frame", log.String("display", "\n"+h.lastText))
	}
	return nil
}

// Render stores a copy of the framebuffer.
func (h *Headless) Render(fb chip8.Framebuffer) error {
	h.renders++
	h.last = fb.Bytes()
	h.lastText = fb.String()
	return nil
}

// PollKeys reports the scripted key events of the current frame.
func (h *Headless) PollKeys(set frontend.SetKeyFunc) error {
	remaining := h.events[:0]
	for _, event := range h.events {
		if event.Frame > h.frame {
			remaining = append(remaining, event)
			continue
		}
		set(event.Key, event.Pressed)
	}
	h.events = remaining
	h.frame++
	return nil
}

// Sound counts the frames with an active tone.
func (h *Headless) Sound(on bool) {
	h.soundOn = on
	if on {
		h.soundTicks++
	}
}

// SoundOn returns whether the tone is currently on.
func (h *Headless) SoundOn() bool {
	return h.soundOn
}

// Frames returns the number of polled frames.
func (h *Headless) Frames() uint64 {
	return h.frame
}

// Renders returns the number of rendered frames.
func (h *Headless) Renders() uint64 {
	return h.renders
}

// SoundFrames returns the number of frames with an active tone.
func (h *Headless) SoundFrames() uint64 {
	return h.soundTicks
}

// LastFrame returns the packed framebuffer data of the last rendered frame.
func (h *Headless) LastFrame() []byte {
	return h.last
}

// LastFrameText returns the text rendering of the last rendered frame.
func (h *Headless) LastFrameText() string {
	return h.lastText
}
