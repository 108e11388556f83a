package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateFrontend(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		name        string
		headless    bool
		interactive bool
		terminal    bool
	}{
		{"interactive terminal", false, true, true},
		{"headless flag", true, true, false},
		{"no terminal", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.NewProgram()
			opts.Headless = tt.headless

			fe := createFrontend(logger, opts, tt.interactive)
			_, isTerminal := fe.(*terminal.Terminal)
			_, isHeadless := fe.(*headless.Headless)
			assert.Equal(t, tt.terminal, isTerminal)
			assert.Equal(t, !tt.terminal, isHeadless)
		})
	}
}

func TestMachineOptions(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.NewProgram()
	assert.Len(t, MachineOptions(logger, opts), 0)

	opts.Seed = 5
	assert.Len(t, MachineOptions(logger, opts), 1)

	opts.Trace = true
	assert.Len(t, MachineOptions(logger, opts), 1)

	opts.Debug = true
	assert.Len(t, MachineOptions(logger, opts), 2)
}

func TestRunnerConfig(t *testing.T) {
	opts := options.NewProgram()
	opts.MaxCycles = 100

	cfg := RunnerConfig(opts)
	assert.Equal(t, options.DefaultCyclesPerFrame, cfg.CyclesPerFrame)
	assert.Equal(t, options.DefaultFrameRate, cfg.FrameRate)
	assert.Equal(t, uint64(100), cfg.MaxCycles)
}

func TestRunnerOptions(t *testing.T) {
	opts := options.NewProgram()
	assert.Len(t, RunnerOptions(opts), 0)

	opts.Headless = true
	assert.Len(t, RunnerOptions(opts), 0)

	opts.MaxCycles = 100
	assert.Len(t, RunnerOptions(opts), 1)
}
