// Package chip8 implements a CHIP-8 virtual machine interpreter.
//
// # Machine State
//
// A Machine owns the complete state of the virtual machine:
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as flag register
//     for carry, borrow and sprite collision results
//   - 16-bit index register I and program counter PC
//   - a 16 entry return address stack with stack pointer SP
//   - 4KB of memory, the hexadecimal font set is stored at FontStart
//   - delay and sound timers that count down to zero at 60 Hz
//   - the 16 key hexadecimal key pad
//   - a 64x32 monochrome framebuffer
//
// # Instruction Cycle
//
// Step fetches the 16-bit instruction at PC, decodes it into an Operation,
// advances PC by 2 and executes the operation. Control flow instructions
// overwrite PC after the advance. The key wait instruction LD Vx, K keeps PC
// on itself until a key transitions to pressed, so the host keeps calling
// Step while feeding key state through SetKey.
//
// The machine does no timing on its own. A host driver calls Step at the
// desired instruction rate and TickTimers at 60 Hz:
//
//	m := chip8.New()
//	if err := m.Load(program); err != nil {
//		return err
//	}
//	for {
//		if err := m.Step(); err != nil {
//			return err
//		}
//	}
//
// # Errors
//
// Unknown instructions return a *DecodeError, stack over- and underflows a
// *StackError and memory accesses past the end of memory a
// *MemoryBoundsError. All of them are fatal for the running program.
package chip8
