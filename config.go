package epio

// Config bundles a state machine's four opaque 32-bit configuration
// registers. The executor extracts fields from them by fixed bit offsets.
type Config struct {
	ClkDiv    uint32 // stored but not honoured; every cycle advances every SM
	ExecCtrl  uint32
	ShiftCtrl uint32
	PinCtrl   uint32
}

// threshConvert maps a raw 5-bit threshold field to its effective value:
// 0 encodes 32, all other values (1..31) encode themselves.
func threshConvert(v uint8) uint8 {
	if v == 0 {
		return 32
	}
	return v
}

// --- execctrl ---

func (c Config) WrapBottom() uint8 { return uint8(c.ExecCtrl>>7) & 0x1F }
func (c Config) WrapTop() uint8    { return uint8(c.ExecCtrl>>12) & 0x1F }
func (c Config) StatusSel() uint8  { return uint8(c.ExecCtrl>>5) & 0x3 }
func (c Config) StatusN() uint8    { return uint8(c.ExecCtrl) & 0x1F }
func (c Config) JmpPin() uint8     { return uint8(c.ExecCtrl>>24) & 0x1F }

// --- shiftctrl ---

func (c Config) AutoPush() bool      { return c.ShiftCtrl>>16&1 != 0 }
func (c Config) AutoPull() bool      { return c.ShiftCtrl>>17&1 != 0 }
func (c Config) InShiftRight() bool  { return c.ShiftCtrl>>18&1 != 0 }
func (c Config) OutShiftRight() bool { return c.ShiftCtrl>>19&1 != 0 }
func (c Config) PushThresh() uint8   { return threshConvert(uint8(c.ShiftCtrl>>20) & 0x1F) }
func (c Config) PullThresh() uint8   { return threshConvert(uint8(c.ShiftCtrl>>25) & 0x1F) }
func (c Config) InCount() uint8      { return uint8(c.ShiftCtrl) & 0x1F }

// --- pinctrl ---

func (c Config) OutBase() uint8  { return uint8(c.PinCtrl) & 0x1F }
func (c Config) OutCount() uint8 { return uint8(c.PinCtrl>>20) & 0x1F }
func (c Config) SetBase() uint8  { return uint8(c.PinCtrl>>5) & 0x1F }
func (c Config) SetCount() uint8 { return uint8(c.PinCtrl>>26) & 0x1F }
func (c Config) InBase() uint8   { return uint8(c.PinCtrl>>15) & 0x1F }

// SMDebug is optional per-SM disassembler metadata: three instruction
// addresses, 0xFF meaning "unset". Required invariant: first <= start <=
// end.
type SMDebug struct {
	FirstInstr uint8
	StartInstr uint8
	EndInstr   uint8
}

// DebugUnset is the 0xFF sentinel used for all three SMDebug fields.
const DebugUnset uint8 = 0xFF

// IsUnset reports whether the debug metadata has never been set.
func (d SMDebug) IsUnset() bool {
	return d.FirstInstr == DebugUnset && d.StartInstr == DebugUnset && d.EndInstr == DebugUnset
}
