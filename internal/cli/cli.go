// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// parse errors are reported once through UsageError.ShowUsage
	flags.SetOutput(io.Discard)
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		usageErr := &UsageError{flags: flags}
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, usageErr
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations checks option values and conflicting options
func validateOptionCombinations(opts options.Program) error {
	switch {
	case opts.CyclesPerFrame < 1:
		return fmt.Errorf("invalid cycles per frame %d, must be at least 1", opts.CyclesPerFrame)
	case opts.FrameRate < 1:
		return fmt.Errorf("invalid frame rate %d, must be at least 1", opts.FrameRate)
	case opts.ReleaseFrames < 1:
		return fmt.Errorf("invalid release frames %d, must be at least 1", opts.ReleaseFrames)
	case opts.Trace && !opts.Debug:
		return errors.New("option -trace requires -debug")
	case opts.Debug && opts.Quiet:
		return errors.New("options -debug and -q can not be combined")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input CHIP-8 program file")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", opts.CyclesPerFrame, "instructions executed per frame")
	flags.IntVar(&opts.FrameRate, "fps", opts.FrameRate, "frames per second, timers tick once per frame")
	flags.Uint64Var(&opts.MaxCycles, "max-cycles", 0, "stop after executing this many instructions, 0 runs until quit")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal output")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a time based seed")
	flags.IntVar(&opts.ReleaseFrames, "release-frames", opts.ReleaseFrames, "frames after which a key pressed in the terminal is released")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
