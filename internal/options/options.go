// Package options contains the program options.
package options

// Default values of the emulation options.
const (
	DefaultCyclesPerFrame = 10
	DefaultFrameRate      = 60
	DefaultReleaseFrames  = 6
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input CHIP-8 program file"`
}

// Flags contains behavior options.
type Flags struct {
	CyclesPerFrame int    `flag:"cycles" usage:"instructions executed per frame" default:"10"`
	FrameRate      int    `flag:"fps" usage:"frames per second, timers tick once per frame" default:"60"`
	MaxCycles      uint64 `flag:"max-cycles" usage:"stop after executing this many instructions (0: unlimited)"`
	Headless       bool   `flag:"headless" usage:"run without terminal output"`
	Seed           uint64 `flag:"seed" usage:"seed of the random number generator (0: time based)"`
	ReleaseFrames  int    `flag:"release-frames" usage:"frames after which a terminal key press is released" default:"6"`
	Trace          bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Debug          bool   `flag:"debug" usage:"enable debug logging"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		Flags: Flags{
			CyclesPerFrame: DefaultCyclesPerFrame,
			FrameRate:      DefaultFrameRate,
			ReleaseFrames:  DefaultReleaseFrames,
		},
	}
}
