package chip8

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/exp/rand"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, the font set is stored at FontStart
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where CHIP-8 programs are loaded and begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the memory address of the built-in hexadecimal font set.
	FontStart = 0x050

	// FontGlyphSize is the number of bytes of a single font glyph.
	FontGlyphSize = 5

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// StackSize is the maximum number of nested subroutine calls.
	StackSize = 16

	// KeyCount is the number of keys of the hexadecimal key pad.
	KeyCount = 16

	// InstructionSize is the size of every instruction in bytes.
	InstructionSize = 2
)

// flagRegister is VF, used for carry, borrow and collision results.
const flagRegister = 0xF

var fontSet = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// RandomSource provides the random numbers for the RND instruction.
// *rand.Rand of golang.org/x/exp/rand and math/rand both implement it.
type RandomSource interface {
	Uint32() uint32
}

// Option configures a Machine.
type Option func(*Machine)

// WithRandom sets the random number source used by the RND instruction.
func WithRandom(src RandomSource) Option {
	return func(m *Machine) {
		m.random = src
	}
}

// WithSeed uses a deterministic random number source with the given seed.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.random = rand.New(rand.NewSource(seed))
	}
}

// WithTrace logs every executed instruction on debug level.
func WithTrace(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// Machine is a CHIP-8 interpreter that owns the complete machine state.
// It is not safe for concurrent use.
type Machine struct {
	logger *log.Logger
	random RandomSource

	v      [RegisterCount]byte
	i      uint16
	pc     uint16
	sp     uint8
	stack  [StackSize]uint16
	memory [MemorySize]byte

	delayTimer byte
	soundTimer byte

	keys      [KeyCount]bool
	keyPress  uint16 // bit mask of keys that transitioned to pressed since the last timer tick
	waiting   bool   // a LD Vx, K instruction is waiting for a key press
	display   display
	cycles    uint64
	drawCount uint64
}

// New returns a new machine with cleared state, the font set loaded and
// the program counter set to the program start address.
func New(options ...Option) *Machine {
	m := &Machine{}
	for _, option := range options {
		option(m)
	}
	if m.random == nil {
		m.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m.Reset()
	return m
}

// Reset clears all machine state including the loaded program.
func (m *Machine) Reset() {
	m.v = [RegisterCount]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.sp = 0
	m.stack = [StackSize]uint16{}
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontStart:], fontSet[:])
	m.delayTimer = 0
	m.soundTimer = 0
	m.keys = [KeyCount]bool{}
	m.keyPress = 0
	m.waiting = false
	m.display.clear()
	m.cycles = 0
	m.drawCount = 0
}

// Load copies a program image into memory at the program start address.
func (m *Machine) Load(program []byte) error {
	if len(program) == 0 {
		return ErrEmptyProgram
	}
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// TickTimers decrements the delay and sound timers toward zero and drops the
// latched key presses. The host calls it at 60 Hz.
func (m *Machine) TickTimers() {
	m.keyPress = 0
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// SetKey sets the pressed state of a key of the key pad.
// Keys outside of 0-F are ignored.
func (m *Machine) SetKey(key uint8, pressed bool) {
	if int(key) >= KeyCount {
		return
	}
	if pressed && !m.keys[key] {
		m.keyPress |= 1 << key
	}
	m.keys[key] = pressed
}

// KeyPressed returns whether the key is currently pressed.
func (m *Machine) KeyPressed(key uint8) bool {
	return m.keys[key&0xF]
}

// Framebuffer returns a read-only view of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return Framebuffer{buf: &m.display}
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// SP returns the stack pointer.
func (m *Machine) SP() uint8 {
	return m.sp
}

// V returns the value of the general purpose register Vx.
func (m *Machine) V(x uint8) byte {
	return m.v[x&0xF]
}

// DelayTimer returns the value of the delay timer.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// SoundTimer returns the value of the sound timer. A tone sounds while it is not zero.
func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// ReadMemory returns the byte at the given address, addresses wrap at the memory size.
func (m *Machine) ReadMemory(address uint16) byte {
	return m.memory[address&MaxAddress]
}

// Waiting returns whether the machine is blocked on a key wait instruction.
func (m *Machine) Waiting() bool {
	return m.waiting
}

// Cycles returns the number of executed instruction cycles.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// DrawCount returns the number of executed draw and clear instructions.
// Hosts compare it between frames to detect display changes.
func (m *Machine) DrawCount() uint64 {
	return m.drawCount
}

// State is a copy of the complete machine state.
type State struct {
	V          [RegisterCount]byte
	I          uint16
	PC         uint16
	SP         uint8
	Stack      [StackSize]uint16
	DelayTimer byte
	SoundTimer byte
	Keys       [KeyCount]bool
	Waiting    bool
	Display    [DisplayBytes]byte
	Cycles     uint64
}

// Snapshot returns a copy of the machine state, memory is not included.
func (m *Machine) Snapshot() State {
	return State{
		V:          m.v,
		I:          m.i,
		PC:         m.pc,
		SP:         m.sp,
		Stack:      m.stack,
		DelayTimer: m.delayTimer,
		SoundTimer: m.soundTimer,
		Keys:       m.keys,
		Waiting:    m.waiting,
		Display:    m.display,
		Cycles:     m.cycles,
	}
}
