package epio

// AssemblerSMProgram is one state machine's slice of the assembler
// handoff: its configuration, FIFO preload, and pre-instructions run once
// before the SM is enabled (typically a JMP to the start address).
type AssemblerSMProgram struct {
	Config    Config
	PreloadTX []uint32
	PreloadRX []uint32
	PreInstrs []uint16
}

// AssemblerBlockProgram is one block's slice of the assembler handoff.
type AssemblerBlockProgram struct {
	GPIOBase   uint32
	Instrs     []uint16
	EnabledSMs uint8 // low 4 bits, one per SM
	SMs        [NumSMsPerBlock]AssemblerSMProgram
}

// AssemblerProgram is the full cross-block assembler handoff structure.
type AssemblerProgram struct {
	Blocks [NumBlocks]AssemblerBlockProgram
}

// FromAssembler builds a fresh, fully configured Emulator from an
// assembler handoff structure: copies configuration, preloads FIFOs so
// the first preload entry is the first word the consumer pops, runs
// pre-instructions through the real executor, and enables the marked SMs.
func FromAssembler(prog AssemblerProgram) *Emulator {
	e := New()
	for b := 0; b < NumBlocks; b++ {
		bp := prog.Blocks[b]
		e.SetGPIOBase(uint8(b), bp.GPIOBase)
		for addr, word := range bp.Instrs {
			if addr >= NumInstrs {
				panic("epio: assembler handoff instruction count exceeds instruction memory")
			}
			e.block[b].instr[addr] = word
		}

		for sm := 0; sm < NumSMsPerBlock; sm++ {
			smp := bp.SMs[sm]
			m := &e.block[b].sm[sm]
			m.reg = smp.Config

			for _, v := range smp.PreloadTX {
				m.fifo.tx.push(v)
			}
			for _, v := range smp.PreloadRX {
				m.fifo.rx.push(v)
			}

			for _, instr := range smp.PreInstrs {
				e.execInstr(b, sm, instr)
			}

			if bp.EnabledSMs&(1<<sm) != 0 {
				m.enabled = true
			}
		}
	}
	return e
}
