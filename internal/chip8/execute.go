package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// Step runs one instruction cycle: the instruction at the program counter is
// fetched and decoded, the program counter is advanced by 2 and the
// operation is executed. On error the program counter still points to the
// faulting instruction and the machine must not be stepped again.
// A program counter that leaves the address space faults on the next fetch.
func (m *Machine) Step() error {
	address := m.pc
	if int(address)+InstructionSize > MemorySize {
		return &MemoryBoundsError{
			Address: address,
			Start:   int(address),
			Length:  InstructionSize,
		}
	}
	opcode := m.word(address)
	op, err := Decode(address, opcode)
	if err != nil {
		return err
	}

	if m.logger != nil {
		m.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.String("instruction", op.String()))
	}

	m.pc += InstructionSize
	if err := m.execute(op); err != nil {
		m.pc = address
		return m.annotate(err, address, opcode)
	}
	if m.logger != nil && op.IsSkip() && m.pc == address+2*InstructionSize {
		m.logger.Debug("Skipped instruction", log.Hex("address", address+InstructionSize))
	}
	m.cycles++
	return nil
}

// annotate sets the faulting instruction details of execution errors.
func (m *Machine) annotate(err error, address, opcode uint16) error {
	switch e := err.(type) {
	case *StackError:
		e.Address, e.Opcode = address, opcode
	case *MemoryBoundsError:
		e.Address, e.Opcode = address, opcode
	}
	return err
}

// Execute executes a decoded operation against the machine state. The
// program counter is expected to already point to the next instruction.
func (m *Machine) Execute(op Operation) error {
	return m.execute(op)
}

func (m *Machine) execute(op Operation) error {
	switch op.Kind {
	case OpNop:
	case OpCls:
		m.display.clear()
		m.drawCount++
	case OpRet:
		return m.ret()
	case OpJp:
		m.pc = op.NNN
	case OpCall:
		return m.call(op.NNN)
	case OpSeByte:
		m.skipIf(m.v[op.X] == op.KK)
	case OpSneByte:
		m.skipIf(m.v[op.X] != op.KK)
	case OpSeReg:
		m.skipIf(m.v[op.X] == m.v[op.Y])
	case OpSneReg:
		m.skipIf(m.v[op.X] != m.v[op.Y])
	case OpLdByte:
		m.v[op.X] = op.KK
	case OpAddByte:
		m.v[op.X] += op.KK
	case OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpShr, OpSubn, OpShl:
		m.arithmetic(op)
	case OpLdI:
		m.i = op.NNN
	case OpJpV0:
		m.pc = (op.NNN + uint16(m.v[0])) & MaxAddress
	case OpRnd:
		m.v[op.X] = byte(m.random.Uint32()) & op.KK
	case OpDrw:
		return m.draw(op)
	case OpSkp:
		m.skipIf(m.keys[m.v[op.X]&0xF])
	case OpSknp:
		m.skipIf(!m.keys[m.v[op.X]&0xF])
	case OpLdVxDT:
		m.v[op.X] = m.delayTimer
	case OpLdKey:
		m.waitForKey(op.X)
	case OpLdDTVx:
		m.delayTimer = m.v[op.X]
	case OpLdSTVx:
		m.soundTimer = m.v[op.X]
	case OpAddI:
		return m.addIndex(op.X)
	case OpLdFont:
		m.i = FontStart + uint16(m.v[op.X]&0xF)*FontGlyphSize
	case OpLdBCD:
		return m.storeBCD(op.X)
	case OpStore:
		return m.storeRegisters(op.X)
	case OpLoad:
		return m.loadRegisters(op.X)
	default:
		return &DecodeError{Address: m.pc - InstructionSize}
	}
	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += InstructionSize
	}
}

func (m *Machine) call(address uint16) error {
	if int(m.sp) >= StackSize {
		return &StackError{Overflow: true}
	}
	m.stack[m.sp] = m.pc
	m.sp++
	m.pc = address
	return nil
}

func (m *Machine) ret() error {
	if m.sp == 0 {
		return &StackError{}
	}
	m.sp--
	m.pc = m.stack[m.sp]
	return nil
}

// waitForKey blocks the program on the current instruction until a key
// transitions to pressed. The wait is a re-execution of the instruction on
// every cycle, key state changes happen between cycles through SetKey.
// Press transitions are latched until the next timer tick, so a press that
// arrived in the same frame before the wait started completes it.
func (m *Machine) waitForKey(x uint8) {
	m.waiting = true
	if m.keyPress == 0 {
		m.pc -= InstructionSize
		return
	}

	for key := uint8(0); key < KeyCount; key++ {
		if m.keyPress&(1<<key) != 0 {
			m.v[x] = key
			break
		}
	}
	m.waiting = false
	m.keyPress = 0
}
