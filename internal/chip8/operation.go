package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies a decoded instruction form.
type Kind uint8

// Instruction forms, named after the opcode pattern they decode from.
const (
	OpInvalid  Kind = iota
	OpNop           // 0000
	OpCls           // 00E0 CLS
	OpRet           // 00EE RET
	OpJp            // 1nnn JP addr
	OpCall          // 2nnn CALL addr
	OpSeByte        // 3xkk SE Vx, byte
	OpSneByte       // 4xkk SNE Vx, byte
	OpSeReg         // 5xy0 SE Vx, Vy
	OpLdByte        // 6xkk LD Vx, byte
	OpAddByte       // 7xkk ADD Vx, byte
	OpLdReg         // 8xy0 LD Vx, Vy
	OpOr            // 8xy1 OR Vx, Vy
	OpAnd           // 8xy2 AND Vx, Vy
	OpXor           // 8xy3 XOR Vx, Vy
	OpAddReg        // 8xy4 ADD Vx, Vy
	OpSub           // 8xy5 SUB Vx, Vy
	OpShr           // 8xy6 SHR Vx
	OpSubn          // 8xy7 SUBN Vx, Vy
	OpShl           // 8xyE SHL Vx
	OpSneReg        // 9xy0 SNE Vx, Vy
	OpLdI           // Annn LD I, addr
	OpJpV0          // Bnnn JP V0, addr
	OpRnd           // Cxkk RND Vx, byte
	OpDrw           // Dxyn DRW Vx, Vy, nibble
	OpSkp           // Ex9E SKP Vx
	OpSknp          // ExA1 SKNP Vx
	OpLdVxDT        // Fx07 LD Vx, DT
	OpLdKey         // Fx0A LD Vx, K
	OpLdDTVx        // Fx15 LD DT, Vx
	OpLdSTVx        // Fx18 LD ST, Vx
	OpAddI          // Fx1E ADD I, Vx
	OpLdFont        // Fx29 LD F, Vx
	OpLdBCD         // Fx33 LD B, Vx
	OpStore         // Fx55 LD [I], Vx
	OpLoad          // Fx65 LD Vx, [I]
)

// instructions maps the instruction forms to the CHIP-8 instruction set definitions.
var instructions = map[Kind]*chip8.Instruction{
	OpCls:     chip8.Cls,
	OpRet:     chip8.Ret,
	OpJp:      chip8.Jp,
	OpCall:    chip8.Call,
	OpSeByte:  chip8.Se,
	OpSneByte: chip8.Sne,
	OpSeReg:   chip8.Se,
	OpLdByte:  chip8.Ld,
	OpAddByte: chip8.Add,
	OpLdReg:   chip8.Ld,
	OpOr:      chip8.Or,
	OpAnd:     chip8.And,
	OpXor:     chip8.Xor,
	OpAddReg:  chip8.Add,
	OpSub:     chip8.Sub,
	OpShr:     chip8.Shr,
	OpSubn:    chip8.Subn,
	OpShl:     chip8.Shl,
	OpSneReg:  chip8.Sne,
	OpLdI:     chip8.Ld,
	OpJpV0:    chip8.Jp,
	OpRnd:     chip8.Rnd,
	OpDrw:     chip8.Drw,
	OpSkp:     chip8.Skp,
	OpSknp:    chip8.Sknp,
	OpLdVxDT:  chip8.Ld,
	OpLdKey:   chip8.Ld,
	OpLdDTVx:  chip8.Ld,
	OpLdSTVx:  chip8.Ld,
	OpAddI:    chip8.Add,
	OpLdFont:  chip8.Ld,
	OpLdBCD:   chip8.Ld,
	OpStore:   chip8.Ld,
	OpLoad:    chip8.Ld,
}

// Operation is a decoded instruction with all operand fields extracted.
// Fields that are not used by the instruction form are zero.
type Operation struct {
	Kind Kind
	X    uint8  // register index of the second nibble
	Y    uint8  // register index of the third nibble
	N    uint8  // 4-bit immediate of the last nibble
	KK   uint8  // 8-bit immediate of the low byte
	NNN  uint16 // 12-bit address
}

// Instruction returns the instruction set definition of the operation or
// nil for the no-operation and invalid forms.
func (o Operation) Instruction() *chip8.Instruction {
	return instructions[o.Kind]
}

// Name returns the instruction mnemonic.
func (o Operation) Name() string {
	switch o.Kind {
	case OpInvalid:
		return "invalid"
	case OpNop:
		return "nop"
	}
	return o.Instruction().Name
}

// IsSkip returns true if the operation conditionally skips the next instruction.
func (o Operation) IsSkip() bool {
	switch o.Kind {
	case OpSeByte, OpSneByte, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	default:
		return false
	}
}

// String returns the operation in assembler syntax.
func (o Operation) String() string {
	name := o.Name()
	if params := o.params(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

func (o Operation) params() string {
	switch o.Kind {
	case OpJp, OpCall:
		return fmt.Sprintf("$%03X", o.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", o.NNN)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", o.NNN)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return fmt.Sprintf("V%X, $%02X", o.X, o.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", o.X, o.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", o.X)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", o.X, o.Y, o.N)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", o.X)
	case OpLdKey:
		return fmt.Sprintf("V%X, K", o.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", o.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", o.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", o.X)
	case OpLdFont:
		return fmt.Sprintf("F, V%X", o.X)
	case OpLdBCD:
		return fmt.Sprintf("B, V%X", o.X)
	case OpStore:
		return fmt.Sprintf("[I], V%X", o.X)
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", o.X)
	default:
		return ""
	}
}
