package epio

// SET destination selectors, bits 7..5. Only these four are legal; the
// remaining encodings are reserved.
const (
	setDestPins    uint8 = 0b000
	setDestX       uint8 = 0b001
	setDestY       uint8 = 0b010
	setDestPindirs uint8 = 0b100
)

// execSET implements the SET opcode. SET never stalls.
func (e *Emulator) execSET(b int, smIdx int, instr uint16) (pcConsumed, suppressDelay bool) {
	blk := &e.block[b]
	m := &blk.sm[smIdx]

	dest := uint8(instr>>5) & 0x7
	data := uint32(instr) & 0x1F

	switch dest {
	case setDestX:
		m.x = data
	case setDestY:
		m.y = data
	case setDestPins:
		base := m.reg.SetBase()
		count := m.reg.SetCount()
		for i := uint8(0); i < count; i++ {
			pin := pinAddr(base, i, blk.gpioBase)
			e.gpio.writeOutputBit(pin, data&(1<<i) != 0)
		}
	case setDestPindirs:
		base := m.reg.SetBase()
		count := m.reg.SetCount()
		for i := uint8(0); i < count; i++ {
			pin := pinAddr(base, i, blk.gpioBase)
			e.gpio.writeDirectionBit(pin, data&(1<<i) != 0)
		}
	default:
		panic("epio: reserved SET destination")
	}
	return false, false
}
