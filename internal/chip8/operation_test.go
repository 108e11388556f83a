package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x0000, "nop"},
		{0x00E0, chip8.Cls.Name},
		{0x00EE, chip8.Ret.Name},
		{0x1234, chip8.Jp.Name + " $234"},
		{0x2ABC, chip8.Call.Name + " $ABC"},
		{0x3A42, chip8.Se.Name + " VA, $42"},
		{0x9120, chip8.Sne.Name + " V1, V2"},
		{0x6310, chip8.Ld.Name + " V3, $10"},
		{0x8320, chip8.Ld.Name + " V3, V2"},
		{0x8324, chip8.Add.Name + " V3, V2"},
		{0x830E, chip8.Shl.Name + " V3"},
		{0xA300, chip8.Ld.Name + " I, $300"},
		{0xB300, chip8.Jp.Name + " V0, $300"},
		{0xC5F0, chip8.Rnd.Name + " V5, $F0"},
		{0xD125, chip8.Drw.Name + " V1, V2, $5"},
		{0xE59E, chip8.Skp.Name + " V5"},
		{0xE5A1, chip8.Sknp.Name + " V5"},
		{0xF507, chip8.Ld.Name + " V5, DT"},
		{0xF50A, chip8.Ld.Name + " V5, K"},
		{0xF515, chip8.Ld.Name + " DT, V5"},
		{0xF518, chip8.Ld.Name + " ST, V5"},
		{0xF51E, chip8.Add.Name + " I, V5"},
		{0xF529, chip8.Ld.Name + " F, V5"},
		{0xF533, chip8.Ld.Name + " B, V5"},
		{0xF555, chip8.Ld.Name + " [I], V5"},
		{0xF565, chip8.Ld.Name + " V5, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			op, err := Decode(ProgramStart, tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op.String())
		})
	}
}

func TestOperation_Instruction(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected *chip8.Instruction
	}{
		{OpInvalid, nil},
		{OpNop, nil},
		{OpCls, chip8.Cls},
		{OpCall, chip8.Call},
		{OpJpV0, chip8.Jp},
		{OpSubn, chip8.Subn},
		{OpLoad, chip8.Ld},
	}

	for _, tt := range tests {
		op := Operation{Kind: tt.kind}
		assert.True(t, op.Instruction() == tt.expected)
	}
	assert.Equal(t, "invalid", Operation{}.Name())
}

func TestOperation_IsSkip(t *testing.T) {
	skips := map[Kind]bool{
		OpSeByte: true, OpSneByte: true, OpSeReg: true,
		OpSneReg: true, OpSkp: true, OpSknp: true,
	}

	for kind := OpNop; kind <= OpLoad; kind++ {
		op := Operation{Kind: kind}
		assert.Equal(t, skips[kind], op.IsSkip())
		if kind != OpNop {
			assert.NotNil(t, op.Instruction())
		}
	}
}
