package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x60, 0x10, 0x12, 0x02})

		loader := New()
		opts := options.Program{}
		opts.Input = tmpFile

		data, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x10, 0x12, 0x02}, data)
	})

	t.Run("load maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		loader := New()
		opts := options.Program{}
		opts.Input = tmpFile

		data, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Len(t, data, chip8.MaxProgramSize)
	})

	t.Run("error on oversized file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		loader := New()
		opts := options.Program{}
		opts.Input = tmpFile

		_, err := loader.Load(opts)
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
		assert.True(t, IsProgramError(err))
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New()
		opts := options.Program{}
		opts.Input = tmpFile

		_, err := loader.Load(opts)
		assert.True(t, errors.Is(err, chip8.ErrEmptyProgram))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{}
		opts.Input = "/nonexistent/file.ch8"

		_, err := loader.Load(opts)
		assert.Error(t, err)
		assert.False(t, IsProgramError(err))
	})
}

func TestLoadReader(t *testing.T) {
	loader := New()

	data, err := loader.LoadReader(bytes.NewReader([]byte{0x00, 0xE0}))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0}, data)

	_, err = loader.LoadReader(bytes.NewReader(make([]byte, 8192)))
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}

func TestLoadFromBytesCopies(t *testing.T) {
	input := []byte{0xA2, 0x2A}
	data, err := New().LoadFromBytes(input)
	assert.NoError(t, err)

	input[0] = 0
	assert.Equal(t, byte(0xA2), data[0])
}

func TestLoadInto(t *testing.T) {
	tmpFile := createTempFile(t, []byte{0x60, 0x10})
	opts := options.Program{}
	opts.Input = tmpFile

	m := chip8.New()
	assert.NoError(t, New().LoadInto(m, opts))
	assert.NoError(t, m.Step())
	assert.Equal(t, byte(0x10), m.V(0))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
