package chip8

// checkRange returns an error if the memory range [start, start+length)
// extends past the end of memory.
func checkRange(start, length int) error {
	if start+length > MemorySize {
		return &MemoryBoundsError{Start: start, Length: length}
	}
	return nil
}

// addIndex adds Vx to I. The result is not masked to 12 bits, a result
// that points past the last memory address is an error and leaves I unchanged.
func (m *Machine) addIndex(x uint8) error {
	sum := int(m.i) + int(m.v[x])
	if sum > MaxAddress {
		return &MemoryBoundsError{Start: sum, Length: 0}
	}
	m.i = uint16(sum)
	return nil
}

// storeBCD stores the hundreds, tens and ones digits of Vx at I, I+1 and I+2.
func (m *Machine) storeBCD(x uint8) error {
	start := int(m.i)
	if err := checkRange(start, 3); err != nil {
		return err
	}
	value := m.v[x]
	m.memory[start] = value / 100
	m.memory[start+1] = value / 10 % 10
	m.memory[start+2] = value % 10
	return nil
}

// storeRegisters stores V0 to Vx in memory starting at I. I is not modified.
func (m *Machine) storeRegisters(x uint8) error {
	start := int(m.i)
	count := int(x) + 1
	if err := checkRange(start, count); err != nil {
		return err
	}
	copy(m.memory[start:start+count], m.v[:count])
	return nil
}

// loadRegisters loads V0 to Vx from memory starting at I. I is not modified.
func (m *Machine) loadRegisters(x uint8) error {
	start := int(m.i)
	count := int(x) + 1
	if err := checkRange(start, count); err != nil {
		return err
	}
	copy(m.v[:count], m.memory[start:start+count])
	return nil
}

// draw XORs an n byte sprite read from memory at I onto the display at
// position (Vx mod 64, Vy mod 32). Pixels beyond the right and bottom
// display edges are clipped. VF is set to 1 if a set pixel was cleared.
func (m *Machine) draw(op Operation) error {
	start := int(m.i)
	rows := int(op.N)
	if err := checkRange(start, rows); err != nil {
		return err
	}

	x0 := int(m.v[op.X]) % DisplayWidth
	y0 := int(m.v[op.Y]) % DisplayHeight
	var collision bool

	for row := 0; row < rows; row++ {
		y := y0 + row
		if y >= DisplayHeight {
			break
		}
		sprite := m.memory[start+row]
		for bit := 0; bit < 8; bit++ {
			x := x0 + bit
			if x >= DisplayWidth {
				break
			}
			if sprite&(0x80>>bit) == 0 {
				continue
			}
			if m.display.xorPixel(x, y) {
				collision = true
			}
		}
	}

	m.v[flagRegister] = boolToByte(collision)
	m.drawCount++
	return nil
}
