// Package runner implements the host driver loop that paces the CHIP-8
// machine, ticks its timers and connects it to a frontend.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

// Config contains the pacing settings of the driver loop.
type Config struct {
	CyclesPerFrame int    // instructions executed per frame
	FrameRate      int    // frames per second, the timers tick once per frame
	MaxCycles      uint64 // stop after this many instructions, 0 runs until quit
}

// Machine is the part of the CHIP-8 machine that the driver loop uses.
type Machine interface {
	Step() error
	TickTimers()
	SetKey(key uint8, pressed bool)
	Framebuffer() chip8.Framebuffer
	SoundTimer() byte
	DrawCount() uint64
}

// Runner drives a machine at a fixed frame rate.
type Runner struct {
	logger   *log.Logger
	machine  Machine
	frontend frontend.Frontend
	config   Config
	clock    Clock

	frames        uint64
	executed      uint64
	lastDrawCount uint64
	rendered      bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock that paces the frames.
func WithClock(clock Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// New returns a new driver for the machine. A clock that ticks at the
// configured frame rate is used unless one is passed as option.
func New(logger *log.Logger, m Machine, fe frontend.Frontend, config Config, options ...Option) (*Runner, error) {
	if config.CyclesPerFrame < 1 {
		return nil, fmt.Errorf("invalid cycles per frame %d", config.CyclesPerFrame)
	}
	if config.FrameRate < 1 {
		return nil, fmt.Errorf("invalid frame rate %d", config.FrameRate)
	}

	r := &Runner{
		logger:   logger,
		machine:  m,
		frontend: fe,
		config:   config,
	}
	for _, option := range options {
		option(r)
	}
	if r.clock == nil {
		r.clock = NewTickerClock(time.Second / time.Duration(config.FrameRate))
	}
	return r, nil
}

// Run executes frames until the context is canceled, the frontend requests
// to quit, the cycle limit is reached or the machine faults.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.frontend.Init(); err != nil {
		return fmt.Errorf("initializing frontend: %w", err)
	}
	defer func() {
		r.clock.Stop()
		if err := r.frontend.Close(); err != nil {
			r.logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	for {
		if err := r.clock.Wait(ctx); err != nil {
			return err
		}

		done, err := r.frame()
		if err != nil {
			return err
		}
		if done {
			r.logger.Debug("Emulation stopped",
				log.Int("frames", int(r.frames)),
				log.Int("cycles", int(r.executed)))
			return nil
		}
	}
}

// frame runs one frame: input, instruction cycles, timer tick and output.
func (r *Runner) frame() (bool, error) {
	r.frames++

	err := r.frontend.PollKeys(r.machine.SetKey)
	if errors.Is(err, frontend.ErrQuit) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("polling input: %w", err)
	}

	for i := 0; i < r.config.CyclesPerFrame; i++ {
		if r.config.MaxCycles > 0 && r.executed >= r.config.MaxCycles {
			return true, r.render()
		}
		if err := r.machine.Step(); err != nil {
			r.logFault(err)
			return false, fmt.Errorf("executing instruction: %w", err)
		}
		r.executed++
	}

	r.machine.TickTimers()
	r.frontend.Sound(r.machine.SoundTimer() > 0)
	return false, r.render()
}

// render outputs the display if it changed since the last rendered frame.
func (r *Runner) render() error {
	drawCount := r.machine.DrawCount()
	if r.rendered && drawCount == r.lastDrawCount {
		return nil
	}
	r.rendered = true
	r.lastDrawCount = drawCount

	if err := r.frontend.Render(r.machine.Framebuffer()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

func (r *Runner) logFault(err error) {
	var (
		decodeErr *chip8.DecodeError
		stackErr  *chip8.StackError
		boundsErr *chip8.MemoryBoundsError
	)

	switch {
	case errors.As(err, &decodeErr):
		r.logger.Error("Unknown instruction",
			log.Hex("address", decodeErr.Address),
			log.Hex("opcode", decodeErr.Opcode))
	case errors.As(err, &stackErr):
		r.logger.Error("Stack fault",
			log.Hex("address", stackErr.Address),
			log.Hex("opcode", stackErr.Opcode),
			log.Err(stackErr.Unwrap()))
	case errors.As(err, &boundsErr):
		r.logger.Error("Memory access out of bounds",
			log.Hex("address", boundsErr.Address),
			log.Hex("opcode", boundsErr.Opcode),
			log.Hex("start", boundsErr.Start),
			log.Int("length", boundsErr.Length))
	default:
		r.logger.Error("Machine fault", log.Err(err))
	}
}

// Frames returns the number of executed frames.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Executed returns the number of instructions executed by the runner.
func (r *Runner) Executed() uint64 {
	return r.executed
}
