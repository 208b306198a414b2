package epio

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// mnemonicOf renders one instruction word as a short disassembly line.
// This is a minimal, best-effort disassembler: its job is to help a human
// reading a test failure or a debug dump, not to round-trip through an
// assembler.
func mnemonicOf(instr uint16) string {
	delay := delayField(instr)
	suffix := ""
	if delay != 0 {
		suffix = fmt.Sprintf(" [%d]", delay)
	}

	op := (instr >> 13) & 0x7
	switch op {
	case opJMP:
		cond := uint8(instr>>5) & 0x7
		target := uint8(instr) & 0x1F
		return fmt.Sprintf("JMP %s, %d%s", jmpCondName(cond), target, suffix)
	case opWAIT:
		polarity := (instr >> 7) & 1
		source := uint8(instr>>5) & 0x3
		index := uint8(instr) & 0x1F
		return fmt.Sprintf("WAIT %d %s %d%s", polarity, waitSrcName(source), index, suffix)
	case opIN:
		src := uint8(instr>>5) & 0x7
		count := uint8(instr) & 0x1F
		return fmt.Sprintf("IN %s, %d%s", inSrcName(src), count, suffix)
	case opOUT:
		dst := uint8(instr>>5) & 0x7
		count := uint8(instr) & 0x1F
		return fmt.Sprintf("OUT %s, %d%s", outDestName(dst), count, suffix)
	case opPushPullMv:
		if (instr>>7)&1 != 0 {
			return "PULL" + suffix
		}
		return "PUSH" + suffix
	case opMOV:
		dst := uint8(instr>>5) & 0x7
		src := uint8(instr) & 0x7
		return fmt.Sprintf("MOV %s, %s%s", movDestName(dst), movSrcName(src), suffix)
	case opIRQ:
		idx := uint8(instr) & 0x7
		return fmt.Sprintf("IRQ %d%s", idx, suffix)
	case opSET:
		dst := uint8(instr>>5) & 0x7
		data := uint8(instr) & 0x1F
		return fmt.Sprintf("SET %s, %d%s", setDestName(dst), data, suffix)
	}
	return "???"
}

func jmpCondName(c uint8) string {
	names := []string{"", "!X", "X--", "!Y", "Y--", "X!=Y", "PIN", "!OSRE"}
	if int(c) < len(names) {
		return names[c]
	}
	return "?"
}

func waitSrcName(s uint8) string {
	names := []string{"GPIO", "PIN", "IRQ", "JMPPIN"}
	if int(s) < len(names) {
		return names[s]
	}
	return "?"
}

func inSrcName(s uint8) string {
	names := []string{"PINS", "X", "Y", "NULL", "ISR", "OSR"}
	if int(s) < len(names) {
		return names[s]
	}
	return "RESERVED"
}

func outDestName(d uint8) string {
	names := []string{"PINS", "X", "Y", "NULL", "PINDIRS", "PC", "ISR", "EXEC"}
	if int(d) < len(names) {
		return names[d]
	}
	return "?"
}

func movDestName(d uint8) string {
	names := []string{"PINS", "X", "Y", "PINDIRS", "EXEC", "PC", "ISR", "OSR"}
	if int(d) < len(names) {
		return names[d]
	}
	return "?"
}

func movSrcName(s uint8) string {
	names := []string{"PINS", "X", "Y", "NULL", "RESERVED", "STATUS", "ISR", "OSR"}
	if int(s) < len(names) {
		return names[s]
	}
	return "?"
}

func setDestName(d uint8) string {
	switch d {
	case setDestPins:
		return "PINS"
	case setDestX:
		return "X"
	case setDestY:
		return "Y"
	case setDestPindirs:
		return "PINDIRS"
	}
	return "RESERVED"
}

// DisassembleSM renders the instruction range [first_instr, end_instr] for
// a state machine into buf, one mnemonic per line, prefixing the
// start_instr line with "->". Returns a negative value if buf is too
// small, 0 if debug metadata is unset, otherwise the number of bytes
// written.
func (e *Emulator) DisassembleSM(block, sm uint8, buf []byte) int {
	checkBlockSM(block, sm)
	debug := e.block[block].sm[sm].debug
	if debug.IsUnset() {
		return 0
	}

	var sb strings.Builder
	for addr := debug.FirstInstr; addr <= debug.EndInstr; addr++ {
		marker := "  "
		if addr == debug.StartInstr {
			marker = "->"
		}
		instr := e.block[block].instr[addr]
		fmt.Fprintf(&sb, "%s %02d: %s\n", marker, addr, mnemonicOf(instr))
		if addr == debug.EndInstr {
			break
		}
	}

	out := sb.String()
	if len(out) > len(buf) {
		return -1
	}
	n := copy(buf, out)
	return n
}

// DumpState renders a raw, human-readable dump of the whole emulator,
// used as the fallback when a state machine has no debug metadata set for
// DisassembleSM.
func (e *Emulator) DumpState() string {
	return spew.Sdump(e)
}
