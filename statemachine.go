package epio

// stateMachine owns all per-SM runtime state: scratch registers, shift
// registers and counters, program counter, delay counter, stall/enable
// flags, the pending-exec slot, its configuration registers, its FIFO
// pair, and optional debug metadata.
type stateMachine struct {
	x, y        uint32
	isr, osr    uint32
	isrCount    uint8 // 0..32
	osrCount    uint8 // 0..32; 32 is the "OSR empty" sentinel
	pc          uint8 // 0..31
	delay       uint8
	stalled     bool
	enabled     bool
	execPending bool
	execInstr   uint16
	reg         Config
	fifo        fifoPair
	debug       SMDebug
}

func (m *stateMachine) reset() {
	m.x, m.y = 0, 0
	m.isr, m.osr = 0, 0
	m.isrCount = 0
	m.osrCount = 32
	m.pc = 0
	m.delay = 0
	m.stalled = false
	m.enabled = false
	m.execPending = false
	m.execInstr = 0
	m.fifo = fifoPair{}
	m.debug = SMDebug{FirstInstr: DebugUnset, StartInstr: DebugUnset, EndInstr: DebugUnset}
}
