package epio

// The PeekSM* family exposes read-only snapshots of per-SM state for
// testing and tooling.

func (e *Emulator) PeekSMPC(block, sm uint8) uint8 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].pc
}

func (e *Emulator) PeekSMX(block, sm uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].x
}

func (e *Emulator) PeekSMY(block, sm uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].y
}

func (e *Emulator) PeekSMISR(block, sm uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].isr
}

func (e *Emulator) PeekSMOSR(block, sm uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].osr
}

func (e *Emulator) PeekSMISRCount(block, sm uint8) uint8 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].isrCount
}

func (e *Emulator) PeekSMOSRCount(block, sm uint8) uint8 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].osrCount
}

func (e *Emulator) PeekSMStalled(block, sm uint8) bool {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].stalled
}

func (e *Emulator) PeekSMDelay(block, sm uint8) uint8 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].delay
}

func (e *Emulator) PeekSMExecPending(block, sm uint8) bool {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].execPending
}

func (e *Emulator) PeekSMExecInstr(block, sm uint8) uint16 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].execInstr
}
