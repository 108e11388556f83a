// Package terminal implements a frontend that renders the CHIP-8 display
// in a terminal and reads the key pad input from the keyboard.
package terminal

import (
	"fmt"
	"sync"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

var _ frontend.Frontend = (*Terminal)(nil)

const (
	statusLine = chip8.DisplayHeight/2 + 1
	eventQueue = 64
)

// Terminal is a termbox based frontend.
type Terminal struct {
	logger   *log.Logger
	releaser *keyReleaser

	events chan termbox.Event
	wg     sync.WaitGroup
	sound  bool
}

// New returns a new terminal frontend. Pressed keys are released after the
// given number of frames.
func New(logger *log.Logger, releaseFrames int) *Terminal {
	return &Terminal{
		logger:   logger,
		releaser: newKeyReleaser(releaseFrames),
		events:   make(chan termbox.Event, eventQueue),
	}
}

// Init switches the terminal to full screen mode and starts reading input.
func (t *Terminal) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	width, height := termbox.Size()
	if width < chip8.DisplayWidth || height < statusLine+1 {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("width", width),
			log.Int("height", height))
	}

	t.wg.Add(1)
	go t.readEvents()
	return nil
}

// readEvents forwards terminal events until the event polling is interrupted.
func (t *Terminal) readEvents() {
	defer t.wg.Done()
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case t.events <- ev:
		default: // drop input when the emulation does not keep up
		}
	}
}

// Close stops reading input and restores the terminal.
func (t *Terminal) Close() error {
	termbox.Interrupt()
	t.wg.Wait()
	termbox.Close()
	return nil
}

// Render draws the framebuffer using half block characters.
func (t *Terminal) Render(fb chip8.Framebuffer) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("clearing terminal: %w", err)
	}
	renderCells(fb, func(x, y int, ch rune) {
		termbox.SetCell(x, y, ch, termbox.ColorWhite, termbox.ColorBlack)
	})
	t.drawStatus()
	return termbox.Flush()
}

func (t *Terminal) drawStatus() {
	for i, ch := range statusText(t.sound) {
		termbox.SetCell(i, statusLine, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// PollKeys reports the key presses since the last frame and releases keys
// that were not repeated in time.
func (t *Terminal) PollKeys(set frontend.SetKeyFunc) error {
	t.releaser.advance(func(key uint8) {
		set(key, false)
	})

	for {
		select {
		case ev := <-t.events:
			if err := t.handleEvent(ev, set); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (t *Terminal) handleEvent(ev termbox.Event, set frontend.SetKeyFunc) error {
	switch ev.Type {
	case termbox.EventError:
		return fmt.Errorf("reading terminal input: %w", ev.Err)
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
			return frontend.ErrQuit
		}
		key, ok := mapKey(ev.Ch)
		if !ok {
			return nil
		}
		if t.releaser.press(key) {
			t.logger.Debug("Key pressed", log.Hex("key", key))
		}
		set(key, true)
	case termbox.EventResize:
		t.logger.Debug("Terminal resized", log.Int("width", ev.Width), log.Int("height", ev.Height))
	}
	return nil
}

// Sound shows the tone state in the status line.
func (t *Terminal) Sound(on bool) {
	if on == t.sound {
		return
	}
	t.sound = on
	t.drawStatus()
	if err := termbox.Flush(); err != nil {
		t.logger.Error("Updating status failed", log.Err(err))
	}
}
