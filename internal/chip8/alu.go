package chip8

// arithmetic executes the register to register operations of the 8xyN family.
// VF is written after Vx so that it holds the flag when Vx is VF.
func (m *Machine) arithmetic(op Operation) {
	vx := m.v[op.X]
	vy := m.v[op.Y]

	switch op.Kind {
	case OpLdReg:
		m.v[op.X] = vy
	case OpOr:
		m.v[op.X] = vx | vy
	case OpAnd:
		m.v[op.X] = vx & vy
	case OpXor:
		m.v[op.X] = vx ^ vy
	case OpAddReg:
		sum := uint16(vx) + uint16(vy)
		m.v[op.X] = byte(sum)
		m.v[flagRegister] = boolToByte(sum > 0xFF)
	case OpSub:
		m.v[op.X] = vx - vy
		m.v[flagRegister] = boolToByte(vx >= vy)
	case OpSubn:
		m.v[op.X] = vy - vx
		m.v[flagRegister] = boolToByte(vy >= vx)
	case OpShr:
		m.v[op.X] = vx >> 1
		m.v[flagRegister] = vx & 1
	case OpShl:
		m.v[op.X] = vx << 1
		m.v[flagRegister] = vx >> 7
	}
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
