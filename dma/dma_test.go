package dma

import (
	"testing"

	"github.com/piersfinlayson/epio-sub000/sram"
)

type fakeFIFO struct {
	rx []uint32
	tx []uint32
}

func (f *fakeFIFO) TXDepth(block, sm uint8) uint8 { return uint8(len(f.tx)) }
func (f *fakeFIFO) RXDepth(block, sm uint8) uint8 { return uint8(len(f.rx)) }
func (f *fakeFIFO) PushTXFIFO(block, sm uint8, v uint32) {
	f.tx = append(f.tx, v)
}
func (f *fakeFIFO) PopRXFIFO(block, sm uint8) uint32 {
	v := f.rx[0]
	f.rx = f.rx[1:]
	return v
}

func TestChannelMovesWordFromSRAMToWriteFIFO(t *testing.T) {
	mem := sram.New()
	mem.WriteWord(sram.BaseAddr+16, 0xDEADBEEF)

	c := New()
	c.SetupReadPIOChain(0, 0, 1, 1, 0, 2, 1, Bits32)

	f := &fakeFIFO{rx: []uint32{sram.BaseAddr + 16}}

	for i := 0; i < 3; i++ {
		c.Step(f, mem)
	}

	if len(f.tx) != 1 {
		t.Fatalf("TX FIFO has %d entries, want 1", len(f.tx))
	}
	if f.tx[0] != 0xDEADBEEF {
		t.Fatalf("TX[0] = 0x%X, want 0xDEADBEEF", f.tx[0])
	}
}

func TestChannelReplicatesByteAcrossWord(t *testing.T) {
	mem := sram.New()
	mem.WriteByte(sram.BaseAddr+4, 0xAB)

	c := New()
	c.SetupReadPIOChain(1, 0, 1, 1, 0, 2, 1, Bits8)
	f := &fakeFIFO{rx: []uint32{sram.BaseAddr + 4}}

	for i := 0; i < 3; i++ {
		c.Step(f, mem)
	}

	if len(f.tx) != 1 || f.tx[0] != 0xABABABAB {
		t.Fatalf("TX = %v, want [0xABABABAB]", f.tx)
	}
}

func TestUnconfiguredChannelNeverMovesData(t *testing.T) {
	mem := sram.New()
	c := New()
	f := &fakeFIFO{rx: []uint32{sram.BaseAddr}}
	for i := 0; i < 5; i++ {
		c.Step(f, mem)
	}
	if len(f.tx) != 0 {
		t.Fatal("an unconfigured channel should never touch the FIFOs")
	}
	if len(f.rx) != 1 {
		t.Fatal("an unconfigured channel should never pop the RX FIFO")
	}
}

func TestSetupReadPIOChainInvalidChannelPanics(t *testing.T) {
	c := New()
	defer func() {
		if recover() == nil {
			t.Fatal("an out-of-range channel index should panic")
		}
	}()
	c.SetupReadPIOChain(NumChannels, 0, 0, 1, 0, 1, 1, Bits32)
}

func TestSetupReadPIOChainInvalidBitModePanics(t *testing.T) {
	c := New()
	defer func() {
		if recover() == nil {
			t.Fatal("an invalid bit mode should panic")
		}
	}()
	c.SetupReadPIOChain(0, 0, 0, 1, 0, 1, 1, BitMode(5))
}
