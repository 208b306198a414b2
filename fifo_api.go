package epio

// PushTXFIFO appends a word to a state machine's TX FIFO (host-to-SM).
// Panics if the FIFO is already full.
func (e *Emulator) PushTXFIFO(block, sm uint8, v uint32) {
	checkBlockSM(block, sm)
	e.block[block].sm[sm].fifo.tx.push(v)
}

// PopTXFIFO removes and returns the head of a state machine's TX FIFO.
// Panics if empty.
func (e *Emulator) PopTXFIFO(block, sm uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].fifo.tx.pop()
}

// PushRXFIFO appends a word to a state machine's RX FIFO (host-side
// preload; normally the RX FIFO is written by the SM via PUSH/autopush).
func (e *Emulator) PushRXFIFO(block, sm uint8, v uint32) {
	checkBlockSM(block, sm)
	e.block[block].sm[sm].fifo.rx.push(v)
}

// PopRXFIFO removes and returns the head of a state machine's RX FIFO
// (SM-to-host). Panics if empty.
func (e *Emulator) PopRXFIFO(block, sm uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].fifo.rx.pop()
}

// TXDepth returns the current depth of a state machine's TX FIFO.
func (e *Emulator) TXDepth(block, sm uint8) uint8 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].fifo.tx.depth()
}

// RXDepth returns the current depth of a state machine's RX FIFO.
func (e *Emulator) RXDepth(block, sm uint8) uint8 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].fifo.rx.depth()
}

// PeekTXFIFO returns the entry at offset from the head of TX without
// removing it.
func (e *Emulator) PeekTXFIFO(block, sm, offset uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].fifo.tx.peek(offset)
}

// PeekRXFIFO returns the entry at offset from the head of RX without
// removing it.
func (e *Emulator) PeekRXFIFO(block, sm, offset uint8) uint32 {
	checkBlockSM(block, sm)
	return e.block[block].sm[sm].fifo.rx.peek(offset)
}

// WaitTXFIFO repeatedly steps single cycles until the TX FIFO becomes
// non-empty or maxSteps is exhausted. A negative maxSteps waits
// indefinitely. Returns the number of cycles stepped, or -1 if the step
// budget ran out before the FIFO held anything.
func (e *Emulator) WaitTXFIFO(block, sm uint8, maxSteps int32) int32 {
	checkBlockSM(block, sm)
	var stepped int32
	for e.block[block].sm[sm].fifo.tx.depth() == 0 {
		if maxSteps >= 0 && stepped >= maxSteps {
			return -1
		}
		e.StepCycles(1)
		stepped++
	}
	return stepped
}
