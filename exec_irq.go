package epio

// execIRQ implements the IRQ opcode: clear, set, and set+wait with
// stall re-entry.
func (e *Emulator) execIRQ(b int, smIdx int, instr uint16) (pcConsumed, suppressDelay bool) {
	m := &e.block[b].sm[smIdx]

	clear := (instr>>6)&1 != 0
	wait := (instr>>5)&1 != 0
	mode := uint8(instr>>3) & 0x3
	idx := uint8(instr) & 0x7

	irqBlock, irqFlag := resolveIRQTarget(b, uint8(smIdx), mode, idx)

	if clear {
		// Clear wins over Wait.
		e.block[irqBlock].irq.scheduleClear(irqFlag)
		m.stalled = false
		return false, false
	}

	if !wait {
		e.block[irqBlock].irq.scheduleSet(irqFlag)
		m.stalled = false
		return false, false
	}

	// Clear=0, Wait=1: the set is only scheduled on first execution. A
	// re-execution (m.stalled already true) must only re-read the live
	// flag, never re-schedule the set: doing so on every retry would
	// re-assert the flag the instant it unstalls, defeating the waiter
	// the same cycle it observes the clear.
	if m.stalled {
		if !e.block[irqBlock].irq.isLive(irqFlag) {
			m.stalled = false
			return false, false
		}
		return true, true
	}
	e.block[irqBlock].irq.scheduleSet(irqFlag)
	m.stalled = true
	logStall(uint8(b), uint8(smIdx), "IRQ set+wait")
	return true, true
}
