package epio

// StepCycles advances the model by exactly n cycles: an execute phase
// over every enabled state machine in fixed order, an IRQ finalise phase
// per block, then the cycle-counter bump.
func (e *Emulator) StepCycles(n uint32) {
	if n == 0 {
		panic("epio: step_cycles requires n > 0")
	}
	for i := uint32(0); i < n; i++ {
		e.stepOneCycle()
	}
}

func (e *Emulator) stepOneCycle() {
	for b := 0; b < NumBlocks; b++ {
		for sm := 0; sm < NumSMsPerBlock; sm++ {
			if e.block[b].sm[sm].enabled {
				e.stepSM(b, sm)
			}
		}
	}
	for b := range e.block {
		e.block[b].irq.finalize()
	}
	e.cycleCount++
}

// stepSM advances one state machine by one cycle: decode-skip while a
// delay is burning, otherwise fetch (pending-exec takes priority over the
// PC), execute, and apply the PC-wrap / delay-arming rules.
func (e *Emulator) stepSM(b, smIdx int) {
	blk := &e.block[b]
	m := &blk.sm[smIdx]

	if m.delay > 0 {
		m.delay--
		return
	}

	var instr uint16
	if m.execPending {
		instr = m.execInstr
		m.execPending = false
	} else {
		instr = blk.instr[m.pc]
	}

	pcConsumed, suppressDelay := e.execInstr(b, smIdx, instr)

	if m.stalled {
		return
	}

	if pcConsumed {
		if !suppressDelay {
			m.delay = delayField(instr)
		}
		return
	}

	wrapTop := m.reg.WrapTop()
	wrapBottom := m.reg.WrapBottom()
	if m.pc == wrapTop {
		m.pc = wrapBottom
	} else {
		m.pc++
	}
	if !suppressDelay {
		m.delay = delayField(instr)
	}
}
