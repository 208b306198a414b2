// Package sram is a flat, range- and alignment-checked addressable byte
// buffer modelling the SRAM the emulated device's DMA engine reads and
// writes. The epio package never imports it and it holds no privileged
// access to Emulator state: it is a plain peripheral any embedder can
// wire up alongside an Emulator.
package sram

import "encoding/binary"

// Size is the SRAM capacity in bytes: 520 KiB, the RP2350's total
// on-chip SRAM.
const Size = 520 * 1024

// BaseAddr is the lowest address the SRAM buffer maps, the RP2350's
// SRAM window base.
const BaseAddr = 0x20000000

// SRAM is a flat byte buffer addressed starting at BaseAddr.
type SRAM struct {
	mem [Size]byte
}

// New returns a zeroed SRAM buffer.
func New() *SRAM { return &SRAM{} }

func (s *SRAM) checkAddr(addr uint32, width uint32) {
	if addr < BaseAddr {
		panic("sram: address below SRAM base")
	}
	offset := addr - BaseAddr
	if uint64(offset)+uint64(width) > Size {
		panic("sram: address out of range")
	}
	if addr%width != 0 {
		panic("sram: unaligned access")
	}
}

// Set bulk-copies data into SRAM starting at addr.
func (s *SRAM) Set(addr uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	s.checkAddr(addr, 1)
	final := addr + uint32(len(data)) - 1
	s.checkAddr(final, 1)
	copy(s.mem[addr-BaseAddr:], data)
}

// ReadByte reads one byte at addr.
func (s *SRAM) ReadByte(addr uint32) uint8 {
	s.checkAddr(addr, 1)
	return s.mem[addr-BaseAddr]
}

// ReadHalfword reads one little-endian 16-bit value at addr (must be
// 2-byte aligned).
func (s *SRAM) ReadHalfword(addr uint32) uint16 {
	s.checkAddr(addr, 2)
	off := addr - BaseAddr
	return binary.LittleEndian.Uint16(s.mem[off : off+2])
}

// ReadWord reads one little-endian 32-bit value at addr (must be 4-byte
// aligned).
func (s *SRAM) ReadWord(addr uint32) uint32 {
	s.checkAddr(addr, 4)
	off := addr - BaseAddr
	return binary.LittleEndian.Uint32(s.mem[off : off+4])
}

// WriteByte writes one byte at addr.
func (s *SRAM) WriteByte(addr uint32, v uint8) {
	s.checkAddr(addr, 1)
	s.mem[addr-BaseAddr] = v
}

// WriteHalfword writes one little-endian 16-bit value at addr.
func (s *SRAM) WriteHalfword(addr uint32, v uint16) {
	s.checkAddr(addr, 2)
	off := addr - BaseAddr
	binary.LittleEndian.PutUint16(s.mem[off:off+2], v)
}

// WriteWord writes one little-endian 32-bit value at addr.
func (s *SRAM) WriteWord(addr uint32, v uint32) {
	s.checkAddr(addr, 4)
	off := addr - BaseAddr
	binary.LittleEndian.PutUint32(s.mem[off:off+4], v)
}
