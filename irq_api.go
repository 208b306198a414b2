package epio

// SetBlockIRQ sets a block's live IRQ flag immediately (host-side direct
// manipulation, not deferred to end-of-cycle).
func (e *Emulator) SetBlockIRQ(block, idx uint8) {
	checkBlock(block)
	checkIRQIdx(idx)
	e.block[block].irq.setLive(idx)
}

// ClearBlockIRQ clears a block's live IRQ flag immediately.
func (e *Emulator) ClearBlockIRQ(block, idx uint8) {
	checkBlock(block)
	checkIRQIdx(idx)
	e.block[block].irq.clearLive(idx)
}

func checkIRQIdx(idx uint8) {
	if idx >= NumIRQsPerBlock {
		panic("epio: IRQ flag index out of range")
	}
}

// PeekBlockIRQ returns a block's current live IRQ flags as an 8-bit mask.
func (e *Emulator) PeekBlockIRQ(block uint8) uint8 {
	checkBlock(block)
	return e.block[block].irq.live
}
