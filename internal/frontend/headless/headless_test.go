package headless

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestPollKeys(t *testing.T) {
	h := New(log.NewTestLogger(t),
		KeyEvent{Frame: 1, Key: 0x2, Pressed: true},
		KeyEvent{Frame: 1, Key: 0x3, Pressed: true},
		KeyEvent{Frame: 3, Key: 0x2, Pressed: false},
	)

	type change struct {
		key     uint8
		pressed bool
	}
	var changes []change
	set := func(key uint8, pressed bool) {
		changes = append(changes, change{key, pressed})
	}

	assert.NoError(t, h.PollKeys(set))
	assert.Len(t, changes, 0)

	assert.NoError(t, h.PollKeys(set))
	assert.Equal(t, []change{{0x2, true}, {0x3, true}}, changes)

	changes = nil
	assert.NoError(t, h.PollKeys(set))
	assert.Len(t, changes, 0)

	assert.NoError(t, h.PollKeys(set))
	assert.Equal(t, []change{{0x2, false}}, changes)
	assert.Equal(t, uint64(4), h.Frames())
}

func TestRender(t *testing.T) {
	h := New(log.NewTestLogger(t))
	assert.NoError(t, h.Init())

	m := chip8.New()
	assert.NoError(t, m.Load([]byte{0xA0, 0x50, 0xD0, 0x05}))
	assert.NoError(t, m.Step())
	assert.NoError(t, m.Step())

	assert.NoError(t, h.Render(m.Framebuffer()))
	assert.Equal(t, uint64(1), h.Renders())
	assert.Equal(t, m.Framebuffer().Bytes(), h.LastFrame())
	assert.Equal(t, m.Framebuffer().String(), h.LastFrameText())
	assert.NoError(t, h.Close())
}

func TestSound(t *testing.T) {
	h := New(log.NewTestLogger(t))

	h.Sound(true)
	h.Sound(true)
	assert.True(t, h.SoundOn())
	h.Sound(false)
	assert.False(t, h.SoundOn())
	assert.Equal(t, uint64(2), h.SoundFrames())
}
