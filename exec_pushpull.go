package epio

// execPushPull implements the shared PUSH/PULL/MOV-to-from-RX opcode
// (100). Bit 3 selects MOV-to-from-RX, which is not supported and is
// rejected at dispatch.
func (e *Emulator) execPushPull(b int, smIdx int, instr uint16) (pcConsumed, suppressDelay bool) {
	if instr&(1<<3) != 0 {
		panic("epio: MOV-to-from-RX is not supported by this implementation")
	}

	m := &e.block[b].sm[smIdx]
	pull := (instr>>7)&1 != 0
	ifModifier := (instr>>6)&1 != 0
	blocking := (instr>>5)&1 != 0

	if pull {
		return e.execPULL(b, smIdx, m, ifModifier, blocking)
	}
	return e.execPUSH(b, smIdx, m, ifModifier, blocking)
}

func (e *Emulator) execPUSH(b int, smIdx int, m *stateMachine, ifFull, blocking bool) (pcConsumed, suppressDelay bool) {
	if ifFull && m.isrCount < m.reg.PushThresh() {
		m.isr = 0
		m.isrCount = 0
		m.stalled = false
		return false, false
	}
	if !m.fifo.rx.full() {
		m.fifo.rx.push(m.isr)
		m.isr = 0
		m.isrCount = 0
		m.stalled = false
		return false, false
	}
	if blocking {
		m.stalled = true
		logStall(uint8(b), uint8(smIdx), "PUSH blocked: RX FIFO full")
		return true, true
	}
	m.isr = 0
	m.isrCount = 0
	m.stalled = false
	return false, false
}

func (e *Emulator) execPULL(b int, smIdx int, m *stateMachine, ifEmpty, blocking bool) (pcConsumed, suppressDelay bool) {
	if m.reg.AutoPull() && m.osrCount == 0 {
		m.stalled = false
		return false, false
	}
	if ifEmpty && m.osrCount < m.reg.PullThresh() {
		m.stalled = false
		return false, false
	}
	if !m.fifo.tx.empty() {
		m.osr = m.fifo.tx.pop()
		m.osrCount = 0
		m.stalled = false
		return false, false
	}
	if blocking {
		m.stalled = true
		logStall(uint8(b), uint8(smIdx), "PULL blocked: TX FIFO empty")
		return true, true
	}
	m.osr = m.x
	m.osrCount = 0
	m.stalled = false
	return false, false
}
