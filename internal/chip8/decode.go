package chip8

// Fetch returns the instruction word at the program counter.
func (m *Machine) Fetch() uint16 {
	return m.word(m.pc)
}

// Decode decodes the instruction at the given address without changing
// any machine state.
func (m *Machine) Decode(address uint16) (Operation, error) {
	return Decode(address, m.word(address))
}

func (m *Machine) word(address uint16) uint16 {
	hi := m.memory[address&MaxAddress]
	lo := m.memory[(address+1)&MaxAddress]
	return uint16(hi)<<8 | uint16(lo)
}

// Decode decodes an instruction word into an operation. The address is only
// used for the returned *DecodeError if the word matches no known opcode.
func Decode(address, opcode uint16) (Operation, error) {
	op := Operation{
		X:   uint8(opcode>>8) & 0xF,
		Y:   uint8(opcode>>4) & 0xF,
		N:   uint8(opcode) & 0xF,
		KK:  uint8(opcode),
		NNN: opcode & 0x0FFF,
	}

	switch opcode >> 12 {
	case 0x0:
		op.Kind = decodeSystem(opcode)
	case 0x1:
		op.Kind = OpJp
	case 0x2:
		op.Kind = OpCall
	case 0x3:
		op.Kind = OpSeByte
	case 0x4:
		op.Kind = OpSneByte
	case 0x5:
		if op.N == 0 {
			op.Kind = OpSeReg
		}
	case 0x6:
		op.Kind = OpLdByte
	case 0x7:
		op.Kind = OpAddByte
	case 0x8:
		op.Kind = decodeArithmetic(op.N)
	case 0x9:
		if op.N == 0 {
			op.Kind = OpSneReg
		}
	case 0xA:
		op.Kind = OpLdI
	case 0xB:
		op.Kind = OpJpV0
	case 0xC:
		op.Kind = OpRnd
	case 0xD:
		op.Kind = OpDrw
	case 0xE:
		op.Kind = decodeKey(op.KK)
	case 0xF:
		op.Kind = decodeMisc(op.KK)
	}

	if op.Kind == OpInvalid {
		return Operation{}, &DecodeError{Address: address, Opcode: opcode}
	}
	return trimOperands(op), nil
}

func decodeSystem(opcode uint16) Kind {
	switch opcode {
	case 0x0000:
		return OpNop
	case 0x00E0:
		return OpCls
	case 0x00EE:
		return OpRet
	default:
		return OpInvalid
	}
}

func decodeArithmetic(n uint8) Kind {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpInvalid
	}
}

func decodeKey(kk uint8) Kind {
	switch kk {
	case 0x9E:
		return OpSkp
	case 0xA1:
		return OpSknp
	default:
		return OpInvalid
	}
}

func decodeMisc(kk uint8) Kind {
	switch kk {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdKey
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdFont
	case 0x33:
		return OpLdBCD
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	default:
		return OpInvalid
	}
}

// trimOperands clears the operand fields that the instruction form does not use.
func trimOperands(op Operation) Operation {
	switch op.Kind {
	case OpNop, OpCls, OpRet:
		return Operation{Kind: op.Kind}
	case OpJp, OpCall, OpLdI, OpJpV0:
		return Operation{Kind: op.Kind, NNN: op.NNN}
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return Operation{Kind: op.Kind, X: op.X, KK: op.KK}
	case OpDrw:
		return Operation{Kind: op.Kind, X: op.X, Y: op.Y, N: op.N}
	case OpShr, OpShl, OpSkp, OpSknp, OpLdVxDT, OpLdKey, OpLdDTVx, OpLdSTVx,
		OpAddI, OpLdFont, OpLdBCD, OpStore, OpLoad:
		return Operation{Kind: op.Kind, X: op.X}
	default:
		return Operation{Kind: op.Kind, X: op.X, Y: op.Y}
	}
}
