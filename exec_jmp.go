package epio

// JMP condition codes, bits 7..5.
const (
	jmpAlways      uint8 = 0b000
	jmpXZero       uint8 = 0b001
	jmpXNotZeroDec uint8 = 0b010
	jmpYZero       uint8 = 0b011
	jmpYNotZeroDec uint8 = 0b100
	jmpXNotEqualY  uint8 = 0b101
	jmpPinHighCond uint8 = 0b110
	jmpOSRNotEmpty uint8 = 0b111
)

// execJMP implements the JMP opcode. The !OSRE condition is taken while
// the OSR count sits below the pull threshold, i.e. while the OSR still
// holds unshifted bits.
func (e *Emulator) execJMP(b int, smIdx int, instr uint16) (pcConsumed, suppressDelay bool) {
	m := &e.block[b].sm[smIdx]
	cond := uint8(instr>>5) & 0x7
	target := uint8(instr) & 0x1F

	var taken bool
	switch cond {
	case jmpAlways:
		taken = true
	case jmpXZero:
		taken = m.x == 0
	case jmpXNotZeroDec:
		pre := m.x
		m.x--
		taken = pre != 0
	case jmpYZero:
		taken = m.y == 0
	case jmpYNotZeroDec:
		pre := m.y
		m.y--
		taken = pre != 0
	case jmpXNotEqualY:
		taken = m.x != m.y
	case jmpPinHighCond:
		taken = e.jmpPinHigh(b, smIdx)
	case jmpOSRNotEmpty:
		taken = m.osrCount < m.reg.PullThresh()
	default:
		panic("epio: unreachable JMP condition")
	}

	if taken {
		m.pc = target
		return true, false
	}
	return false, false
}

// jmpPinHigh reads the JMP-pin condition's target pin (execctrl.jmp_pin +
// gpio_base), with input-invert applied.
func (e *Emulator) jmpPinHigh(b int, smIdx int) bool {
	blk := &e.block[b]
	m := &blk.sm[smIdx]
	pin := m.reg.JmpPin() + uint8(blk.gpioBase)
	return e.gpio.getInput(pin)
}
