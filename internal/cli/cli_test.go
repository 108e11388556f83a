package cli

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{CyclesPerFrame: 10, FrameRate: 60, ReleaseFrames: 6},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{CyclesPerFrame: 10, FrameRate: 60, ReleaseFrames: 6},
			},
		},
		{
			name: "emulation flags",
			args: []string{"prog", "-cycles", "20", "-fps", "30", "-max-cycles", "1000", "-seed", "7", "-headless", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					CyclesPerFrame: 20, FrameRate: 30, MaxCycles: 1000, Seed: 7,
					Headless: true, ReleaseFrames: 6,
				},
			},
		},
		{
			name: "trace flags",
			args: []string{"prog", "-debug", "-trace", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					CyclesPerFrame: 10, FrameRate: 60, ReleaseFrames: 6,
					Debug: true, Trace: true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no program file", []string{"prog"}},
		{"argument after file", []string{"prog", "test.ch8", "-debug"}},
		{"unknown flag", []string{"prog", "-unknown", "test.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlags_UnknownFlagMessage(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-unknown", "test.ch8"}

	_, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-unknown")
	// nothing is written by the parser itself
	assert.Equal(t, io.Discard, usageErr.flags.Output())
}

func TestParseFlags_Help(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-h"}

	_, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "", usageErr.Error())
}

func TestValidateOptionCombinations(t *testing.T) {
	valid := options.NewProgram()

	tests := []struct {
		name        string
		modify      func(*options.Program)
		expectError bool
	}{
		{"defaults", func(*options.Program) {}, false},
		{"zero cycles", func(o *options.Program) { o.CyclesPerFrame = 0 }, true},
		{"zero frame rate", func(o *options.Program) { o.FrameRate = 0 }, true},
		{"zero release frames", func(o *options.Program) { o.ReleaseFrames = 0 }, true},
		{"trace without debug", func(o *options.Program) { o.Trace = true }, true},
		{"trace with debug", func(o *options.Program) { o.Trace, o.Debug = true, true }, false},
		{"debug and quiet conflict", func(o *options.Program) { o.Debug, o.Quiet = true, true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)
			err := validateOptionCombinations(opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
