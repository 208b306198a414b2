package epio

import "testing"

func TestPushBlockingStallsOnFullRX(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encPUSH(0, false, true))
	for i := uint32(0); i < MaxFIFODepth; i++ {
		e.PushRXFIFO(0, 0, i)
	}
	e.EnableSM(0, 0)

	e.StepCycles(1)
	if !e.PeekSMStalled(0, 0) {
		t.Fatal("blocking PUSH on a full RX FIFO should stall")
	}
	if e.PeekSMPC(0, 0) != 0 {
		t.Fatalf("PC = %d, want 0 (held at the PUSH)", e.PeekSMPC(0, 0))
	}

	e.PopRXFIFO(0, 0)
	e.StepCycles(1)
	if e.PeekSMStalled(0, 0) {
		t.Fatal("PUSH should complete once the RX FIFO has room")
	}
	if e.RXDepth(0, 0) != MaxFIFODepth {
		t.Fatalf("RX depth = %d, want %d", e.RXDepth(0, 0), MaxFIFODepth)
	}
}

func TestPushNonBlockingOnFullDropsDataAndClearsISR(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encIN(0, inSrcNull, 8)) // give ISR a non-zero count
	e.SetInstr(0, 1, encPUSH(0, false, false))
	e.SetSMReg(0, 0, Config{ExecCtrl: uint32(1) << 12})
	for i := uint32(0); i < MaxFIFODepth; i++ {
		e.PushRXFIFO(0, 0, i)
	}
	e.EnableSM(0, 0)

	e.StepCycles(2)
	if e.PeekSMStalled(0, 0) {
		t.Fatal("non-blocking PUSH must never stall")
	}
	if e.RXDepth(0, 0) != MaxFIFODepth {
		t.Fatal("non-blocking PUSH on a full FIFO must not push (data lost)")
	}
	if e.PeekSMISRCount(0, 0) != 0 {
		t.Fatalf("ISR count = %d, want 0 (cleared despite the drop)", e.PeekSMISRCount(0, 0))
	}
}

func TestPullNonBlockingOnEmptyLoadsX(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encSET(0, setDestX, 9))
	e.SetInstr(0, 1, encPULL(0, false, false))
	e.SetSMReg(0, 0, Config{ExecCtrl: uint32(1) << 12})
	e.EnableSM(0, 0)

	e.StepCycles(2)
	if e.PeekSMStalled(0, 0) {
		t.Fatal("non-blocking PULL must never stall")
	}
	if e.PeekSMOSR(0, 0) != 9 {
		t.Fatalf("OSR = %d, want 9 (X substituted on empty TX)", e.PeekSMOSR(0, 0))
	}
	if e.PeekSMOSRCount(0, 0) != 0 {
		t.Fatalf("OSR count = %d, want 0", e.PeekSMOSRCount(0, 0))
	}
}

func TestPullBlockingStallsUntilHostPush(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encPULL(0, false, true))
	e.EnableSM(0, 0)

	e.StepCycles(1)
	if !e.PeekSMStalled(0, 0) {
		t.Fatal("blocking PULL on an empty TX FIFO should stall")
	}

	e.PushTXFIFO(0, 0, 0x42)
	e.StepCycles(1)
	if e.PeekSMStalled(0, 0) {
		t.Fatal("PULL should complete once the host pushes")
	}
	if e.PeekSMOSR(0, 0) != 0x42 {
		t.Fatalf("OSR = 0x%X, want 0x42", e.PeekSMOSR(0, 0))
	}
}

func TestPullBarrierNoOpWhenAutopullAndOSRFull(t *testing.T) {
	e := New()
	e.SetInstr(0, 0, encPULL(0, false, true))
	e.SetInstr(0, 1, encPULL(0, false, true))
	e.SetSMReg(0, 0, Config{
		ExecCtrl:  uint32(1) << 12,
		ShiftCtrl: 1 << 17, // autopull
	})
	e.PushTXFIFO(0, 0, 0x11)
	e.PushTXFIFO(0, 0, 0x22)
	e.EnableSM(0, 0)

	e.StepCycles(2) // first PULL fills the OSR; second is a barrier no-op
	if e.PeekSMOSR(0, 0) != 0x11 {
		t.Fatalf("OSR = 0x%X, want 0x11 (second PULL must not refill)", e.PeekSMOSR(0, 0))
	}
	if e.TXDepth(0, 0) != 1 {
		t.Fatalf("TX depth = %d, want 1 (barrier no-op must not pop)", e.TXDepth(0, 0))
	}
}
