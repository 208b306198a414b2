package epio

// Top-level opcodes, bits 15..13 of the instruction word.
const (
	opJMP        uint16 = 0b000
	opWAIT       uint16 = 0b001
	opIN         uint16 = 0b010
	opOUT        uint16 = 0b011
	opPushPullMv uint16 = 0b100
	opMOV        uint16 = 0b101
	opIRQ        uint16 = 0b110
	opSET        uint16 = 0b111
)

func delayField(instr uint16) uint8 {
	return uint8(instr>>8) & 0x1F
}

// execInstr decodes and executes one instruction word for the given
// (block, sm), returning:
//   - pcConsumed: the instruction left the PC in a self-managed state
//     (JMP taken, OUT/MOV PC) that the scheduler must not advance.
//   - suppressDelay: the instruction's delay field must not be armed even
//     though it did not stall (true only for OUT/MOV EXEC destinations).
//
// The caller (stepSM in scheduler.go) checks m.stalled, which execInstr's
// callees set directly on the stateMachine, after this call returns.
func (e *Emulator) execInstr(b int, smIdx int, instr uint16) (pcConsumed, suppressDelay bool) {
	op := (instr >> 13) & 0x7
	switch op {
	case opJMP:
		return e.execJMP(b, smIdx, instr)
	case opWAIT:
		return e.execWAIT(b, smIdx, instr)
	case opIN:
		return e.execIN(b, smIdx, instr)
	case opOUT:
		return e.execOUT(b, smIdx, instr)
	case opPushPullMv:
		return e.execPushPull(b, smIdx, instr)
	case opMOV:
		return e.execMOV(b, smIdx, instr)
	case opIRQ:
		return e.execIRQ(b, smIdx, instr)
	case opSET:
		return e.execSET(b, smIdx, instr)
	}
	panic("epio: unreachable opcode")
}

// pinAddr computes the GPIO index for window-relative pin i starting at
// base, wrapping modulo 32 inside the block's 32-pin window before adding
// the window origin.
func pinAddr(base, i uint8, gpioBase uint32) uint8 {
	return uint8((uint32(base)+uint32(i))%32) + uint8(gpioBase)
}

// maskBits returns a mask of the low count bits (1 <= count <= 32). Go's
// defined shift-to-zero semantics for shift counts >= width make count==32
// work without a special case: 1<<32 == 0, so 0-1 wraps to 0xFFFFFFFF.
func maskBits(count uint8) uint32 {
	return uint32(1)<<count - 1
}
