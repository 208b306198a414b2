// Package dma is a generalised, multi-channel DMA peripheral that wires
// one state machine's RX FIFO, through an SRAM buffer, to another state
// machine's TX FIFO, each channel with its own configurable read/write
// cycle delay and bit width. It is built entirely on the epio package's
// public observation API plus the sram package, with no privileged access
// to either, so an embedder can step it alongside an Emulator or replace
// it with its own peripheral model.
package dma

import (
	"log"

	"github.com/piersfinlayson/epio-sub000/sram"
)

// NumChannels is the number of independently configurable channels.
const NumChannels = 16

// FIFOSource is the minimal surface of an epio.Emulator a DMA channel
// needs: FIFO depth/push/pop, addressed by (block, sm). Declared as an
// interface (rather than importing the epio package directly) so this
// package has no compile-time dependency cycle risk and so it can be
// exercised against a fake in unit tests.
type FIFOSource interface {
	TXDepth(block, sm uint8) uint8
	RXDepth(block, sm uint8) uint8
	PushTXFIFO(block, sm uint8, v uint32)
	PopRXFIFO(block, sm uint8) uint32
}

// BitMode is the DMA transfer width: a read of this width from SRAM is
// replicated across the full 32-bit word pushed to the write FIFO.
type BitMode uint8

const (
	Bits8  BitMode = 8
	Bits16 BitMode = 16
	Bits32 BitMode = 32
)

type channel struct {
	setup bool

	readBlock, readSM   uint8
	writeBlock, writeSM uint8
	readCycles          uint8
	writeCycles         uint8
	bitMode             BitMode

	readDelay, writeDelay uint8
	readAddr              uint32
	readValue             uint32
}

// Controller holds NumChannels independently configured DMA channels.
type Controller struct {
	channels [NumChannels]channel
}

// New returns a Controller with every channel unconfigured.
func New() *Controller { return &Controller{} }

// SetupReadPIOChain configures channel ch to move words from readSM's RX
// FIFO (in readBlock), through SRAM at the address it receives from the
// FIFO, to writeSM's TX FIFO (in writeBlock), replicating bitMode-wide
// SRAM reads across the full 32-bit word.
func (c *Controller) SetupReadPIOChain(ch int, readBlock, readSM uint8, readCycles uint8, writeBlock, writeSM uint8, writeCycles uint8, bitMode BitMode) {
	if ch < 0 || ch >= NumChannels {
		panic("dma: invalid channel index")
	}
	if bitMode != Bits8 && bitMode != Bits16 && bitMode != Bits32 {
		panic("dma: invalid bit mode")
	}
	if c.channels[ch].setup {
		log.Printf("dma: overwriting existing configuration for channel %d", ch)
	}
	c.channels[ch] = channel{
		setup:       true,
		readBlock:   readBlock,
		readSM:      readSM,
		readCycles:  readCycles,
		writeBlock:  writeBlock,
		writeSM:     writeSM,
		writeCycles: writeCycles,
		bitMode:     bitMode,
	}
}

// Step advances every configured channel by one cycle: writes first (to
// make FIFO room before reads), then reads, then checks for a newly
// available RX word that should trigger the next read.
func (c *Controller) Step(e FIFOSource, mem *sram.SRAM) {
	for i := range c.channels {
		ch := &c.channels[i]
		if !ch.setup {
			continue
		}
		c.stepWrite(e, ch)
		c.stepRead(mem, ch)
		c.stepTriggerRead(e, ch)
	}
}

func (c *Controller) stepWrite(e FIFOSource, ch *channel) {
	if ch.writeDelay == 0 {
		return
	}
	ch.writeDelay--
	if ch.writeDelay != 0 {
		return
	}
	if e.TXDepth(ch.writeBlock, ch.writeSM) >= 4 {
		ch.writeDelay = 1 // retry next cycle
		return
	}
	e.PushTXFIFO(ch.writeBlock, ch.writeSM, ch.readValue)
	ch.readValue = 0
}

func (c *Controller) stepRead(mem *sram.SRAM, ch *channel) {
	if ch.readDelay == 0 {
		return
	}
	ch.readDelay--
	if ch.readDelay != 0 {
		return
	}
	if ch.writeDelay > 0 {
		ch.readDelay = 1 // complete, but wait on the write side
		return
	}
	var value uint32
	switch ch.bitMode {
	case Bits8:
		b := uint32(mem.ReadByte(ch.readAddr))
		value = b | b<<8 | b<<16 | b<<24
	case Bits16:
		h := uint32(mem.ReadHalfword(ch.readAddr))
		value = h | h<<16
	default:
		value = mem.ReadWord(ch.readAddr)
	}
	ch.readValue = value
	ch.writeDelay = ch.writeCycles
}

func (c *Controller) stepTriggerRead(e FIFOSource, ch *channel) {
	if ch.readDelay != 0 {
		return
	}
	if e.RXDepth(ch.readBlock, ch.readSM) == 0 {
		return
	}
	ch.readAddr = e.PopRXFIFO(ch.readBlock, ch.readSM)
	ch.readDelay = ch.readCycles
}
