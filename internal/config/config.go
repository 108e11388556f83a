// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions returns the machine options for the program options.
func MachineOptions(logger *log.Logger, opts options.Program) []chip8.Option {
	var machineOptions []chip8.Option
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, chip8.WithSeed(opts.Seed))
	}
	if opts.Trace && opts.Debug {
		machineOptions = append(machineOptions, chip8.WithTrace(logger))
	}
	return machineOptions
}

// RunnerConfig returns the driver loop settings for the program options.
func RunnerConfig(opts options.Program) runner.Config {
	return runner.Config{
		CyclesPerFrame: opts.CyclesPerFrame,
		FrameRate:      opts.FrameRate,
		MaxCycles:      opts.MaxCycles,
	}
}

// RunnerOptions returns the driver loop options for the program options.
// Headless runs with a cycle limit are not paced to the frame rate.
func RunnerOptions(opts options.Program) []runner.Option {
	if opts.Headless && opts.MaxCycles > 0 {
		return []runner.Option{runner.WithClock(runner.UnpacedClock{})}
	}
	return nil
}

// CreateFrontend returns the terminal frontend if the standard input and
// output are connected to a terminal, otherwise the headless frontend.
func CreateFrontend(logger *log.Logger, opts options.Program) frontend.Frontend {
	return createFrontend(logger, opts, isTerminal(os.Stdin) && isTerminal(os.Stdout))
}

func createFrontend(logger *log.Logger, opts options.Program, interactive bool) frontend.Frontend {
	if opts.Headless {
		return headless.New(logger)
	}
	if !interactive {
		logger.Warn("No terminal detected, running headless")
		return headless.New(logger)
	}
	return terminal.New(logger, opts.ReleaseFrames)
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
