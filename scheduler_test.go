package epio

import "testing"

func TestStepCyclesZeroPanics(t *testing.T) {
	e := New()
	defer func() {
		if recover() == nil {
			t.Fatal("StepCycles(0) should panic")
		}
	}()
	e.StepCycles(0)
}

func TestDisabledSMNeverSteps(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encSET(0, setDestX, 5))
	// SM left disabled.
	e.StepCycles(3)
	if e.PeekSMX(0, 0) != 0 {
		t.Fatal("a disabled SM must never execute")
	}
	if e.CycleCount() != 3 {
		t.Fatalf("cycle count = %d, want 3 (global clock advances regardless of enabled SMs)", e.CycleCount())
	}
}

func TestAllFourSMsInABlockStepEveryCycle(t *testing.T) {
	e := New()
	// All four SMs share instruction memory and start at PC 0, so give
	// them one instruction whose effect is SM-specific: IRQ SET REL 0
	// raises flag (0+sm)&0b011, i.e. flag sm, for the SM that ran it.
	e.SetInstr(0, 0, encIRQ(0, false, false, irqSelRel, 0))
	for sm := uint8(0); sm < 4; sm++ {
		e.EnableSM(0, sm)
	}
	e.StepCycles(1)
	if got := e.PeekBlockIRQ(0); got != 0b1111 {
		t.Fatalf("block IRQ flags = %#b, want 0b1111 (one flag per SM that stepped)", got)
	}
}

func TestResetCycleCount(t *testing.T) {
	e := New()
	e.StepCycles(5)
	e.ResetCycleCount()
	if e.CycleCount() != 0 {
		t.Fatalf("cycle count = %d, want 0 after reset", e.CycleCount())
	}
	e.StepCycles(2)
	if e.CycleCount() != 2 {
		t.Fatalf("cycle count = %d, want 2", e.CycleCount())
	}
}

func TestDelayFieldBurnsCyclesWithoutDecoding(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encSET(3, setDestX, 1)) // delay=3
	e.SetInstr(0, 1, encSET(0, setDestX, 2))
	e.SetSMReg(0, 0, Config{ExecCtrl: uint32(1) << 12})
	e.EnableSM(0, 0)

	e.StepCycles(1) // executes addr0, arms delay=3
	if e.PeekSMX(0, 0) != 1 {
		t.Fatalf("X = %d, want 1", e.PeekSMX(0, 0))
	}
	if e.PeekSMPC(0, 0) != 1 {
		t.Fatalf("PC = %d, want 1 (advanced past the delayed instruction)", e.PeekSMPC(0, 0))
	}

	e.StepCycles(3) // three delay-burn cycles, no decode
	if e.PeekSMX(0, 0) != 1 {
		t.Fatal("X must not change while the delay counter is burning down")
	}

	e.StepCycles(1) // delay has drained; addr1 now decodes
	if e.PeekSMX(0, 0) != 2 {
		t.Fatalf("X = %d, want 2 after the delay drains", e.PeekSMX(0, 0))
	}
}
