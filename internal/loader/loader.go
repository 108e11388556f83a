// Package loader handles program image loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// Loader handles loading CHIP-8 program images from disk.
// A CHIP-8 program file has no header, the whole file is copied into memory.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program image of the input file given in the options.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", opts.Input, err)
	}
	return data, nil
}

// LoadReader reads a program image from the reader. The image has to fit
// into the program area of the machine memory.
func (l *Loader) LoadReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized images
	limited := io.LimitReader(reader, chip8.MaxProgramSize+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return l.LoadFromBytes(data)
}

// LoadFromBytes validates a program image that is already in memory.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	switch {
	case len(data) == 0:
		return nil, chip8.ErrEmptyProgram
	case len(data) > chip8.MaxProgramSize:
		return nil, fmt.Errorf("%w: image exceeds %d bytes", chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	return bytes.Clone(data), nil
}

// LoadInto loads the input file given in the options into the machine.
func (l *Loader) LoadInto(m *chip8.Machine, opts options.Program) error {
	data, err := l.Load(opts)
	if err != nil {
		return err
	}
	if err := m.Load(data); err != nil {
		return fmt.Errorf("loading program into memory: %w", err)
	}
	return nil
}

// IsProgramError returns whether the error is caused by an invalid program image
// rather than by a failing file operation.
func IsProgramError(err error) bool {
	return errors.Is(err, chip8.ErrEmptyProgram) || errors.Is(err, chip8.ErrProgramTooLarge)
}
