package jr100

// SchemaVersion guards against restoring a snapshot captured by an
// incompatible build; bump it whenever a field below changes shape.
const SchemaVersion = 1

// CPURegistersSnapshot mirrors the MB8861 register file.
type CPURegistersSnapshot struct {
	AccA           byte
	AccB           byte
	Index          uint16
	StackPointer   uint16
	ProgramCounter uint16
}

// CPUFlagsSnapshot mirrors the condition code register bits.
type CPUFlagsSnapshot struct {
	H, I, N, Z, V, C bool
}

// CPUStatusSnapshot mirrors the CPU's pending-request bookkeeping, none of
// which lives in the CCR or a general register.
type CPUStatusSnapshot struct {
	ResetRequested bool
	NMIRequested   bool
	IRQRequested   bool
	HaltRequested  bool
	HaltProcessed  bool
	FetchWai       bool
}

// VIAStateSnapshot mirrors every piece of R6522 state listed in
// SPEC_FULL.md §3 ("VIA state").
type VIAStateSnapshot struct {
	DDRA, DDRB   byte
	ORA, ORB     byte
	IRA, IRB     byte
	PortA, PortB byte

	IFR, IER byte
	PCR, ACR byte

	CA1In               bool
	CA2In, CA2Out       bool
	CA2Timer            int
	CB1In, CB1Out       bool
	CB2In, CB2Out       bool
	PreviousPB6         bool

	Timer1Counter     int32
	Timer1Latch       uint16
	Timer1Initialized bool
	Timer1Enabled     bool

	Timer2Counter     int32
	Timer2Latch       uint16
	Timer2Initialized bool
	Timer2Enabled     bool

	SR           byte
	ShiftTick    bool
	ShiftCounter int
	ShiftStarted bool

	CurrentClock uint64
}

// Snapshot is a point-in-time, fully-detached copy of a Computer's state,
// per SPEC_FULL.md §4.7 and §6's "CPU snapshot schema". It is plain data
// (no pointers into the live machine), so it serializes with the standard
// library's encoding/json without any custom MarshalJSON.
type Snapshot struct {
	SchemaVersion int

	Memory [0x10000]byte

	CPURegisters CPURegistersSnapshot
	CPUFlags     CPUFlagsSnapshot
	CPUStatus    CPUStatusSnapshot

	VIAState VIAStateSnapshot

	ClockCount uint64
}

// Capture takes a full snapshot of the machine. Must be called between
// Ticks, per SPEC_FULL.md §5's concurrency model.
func (c *Computer) Capture() Snapshot {
	var s Snapshot
	s.SchemaVersion = SchemaVersion

	for addr := 0; addr < 0x10000; addr++ {
		s.Memory[addr] = c.Memory.Load8(uint16(addr))
	}

	cpu := c.CPU
	s.CPURegisters = CPURegistersSnapshot{
		AccA:           cpu.AccA,
		AccB:           cpu.AccB,
		Index:          cpu.X,
		StackPointer:   cpu.SP,
		ProgramCounter: cpu.PC,
	}
	s.CPUFlags = CPUFlagsSnapshot{H: cpu.H, I: cpu.I, N: cpu.N, Z: cpu.Z, V: cpu.V, C: cpu.C}
	s.CPUStatus = CPUStatusSnapshot{
		ResetRequested: cpu.resetRequested,
		NMIRequested:   cpu.nmiRequested,
		IRQRequested:   cpu.irqRequested,
		HaltRequested:  cpu.haltRequested,
		HaltProcessed:  cpu.haltProcessed,
		FetchWai:       cpu.fetchWai,
	}

	via := c.VIA
	s.VIAState = VIAStateSnapshot{
		DDRA: via.ddra, DDRB: via.ddrb,
		ORA: via.ora, ORB: via.orb,
		IRA: via.ira, IRB: via.irb,
		PortA: via.portA, PortB: via.portB,
		IFR: via.ifr, IER: via.ier,
		PCR: via.pcr, ACR: via.acr,
		CA1In: via.ca1In, CA2In: via.ca2In, CA2Out: via.ca2Out,
		CA2Timer: via.ca2Timer,
		CB1In:    via.cb1In, CB1Out: via.cb1Out,
		CB2In: via.cb2In, CB2Out: via.cb2Out,
		PreviousPB6: via.previousPB6,
		Timer1Counter: via.timer1Counter, Timer1Latch: via.timer1Latch,
		Timer1Enabled: via.timer1Enabled, Timer1Initialized: via.timer1Initialized,
		Timer2Counter: via.timer2Counter, Timer2Latch: via.timer2Latch,
		Timer2Enabled: via.timer2Enabled, Timer2Initialized: via.timer2Initialized,
		SR: via.sr, ShiftTick: via.shiftTick, ShiftCounter: via.shiftCounter, ShiftStarted: via.shiftStarted,
		CurrentClock: via.currentClock,
	}

	s.ClockCount = cpu.ClockCount()
	return s
}

// Restore replaces the machine's entire state with a previously captured
// Snapshot. Rejects a snapshot from an incompatible schema version rather
// than partially applying it.
func (c *Computer) Restore(s Snapshot) error {
	if s.SchemaVersion != SchemaVersion {
		return newProgramLoadError("", "snapshot schema version %d unsupported (want %d)", s.SchemaVersion, SchemaVersion)
	}

	for addr := 0; addr < 0x10000; addr++ {
		c.Memory.Store8(uint16(addr), s.Memory[addr])
	}

	cpu := c.CPU
	cpu.AccA = s.CPURegisters.AccA
	cpu.AccB = s.CPURegisters.AccB
	cpu.X = s.CPURegisters.Index
	cpu.SP = s.CPURegisters.StackPointer
	cpu.PC = s.CPURegisters.ProgramCounter

	cpu.H, cpu.I, cpu.N = s.CPUFlags.H, s.CPUFlags.I, s.CPUFlags.N
	cpu.Z, cpu.V, cpu.C = s.CPUFlags.Z, s.CPUFlags.V, s.CPUFlags.C

	cpu.resetRequested = s.CPUStatus.ResetRequested
	cpu.nmiRequested = s.CPUStatus.NMIRequested
	cpu.irqRequested = s.CPUStatus.IRQRequested
	cpu.haltRequested = s.CPUStatus.HaltRequested
	cpu.haltProcessed = s.CPUStatus.HaltProcessed
	cpu.fetchWai = s.CPUStatus.FetchWai
	cpu.setClockCount(s.ClockCount)

	via := c.VIA
	vs := s.VIAState
	via.ddra, via.ddrb = vs.DDRA, vs.DDRB
	via.ora, via.orb = vs.ORA, vs.ORB
	via.ira, via.irb = vs.IRA, vs.IRB
	via.portA, via.portB = vs.PortA, vs.PortB
	via.ifr, via.ier = vs.IFR, vs.IER
	via.pcr, via.acr = vs.PCR, vs.ACR
	via.ca1In, via.ca2In, via.ca2Out = vs.CA1In, vs.CA2In, vs.CA2Out
	via.ca2Timer = vs.CA2Timer
	via.cb1In, via.cb1Out = vs.CB1In, vs.CB1Out
	via.cb2In, via.cb2Out = vs.CB2In, vs.CB2Out
	via.previousPB6 = vs.PreviousPB6
	via.timer1Counter, via.timer1Latch = vs.Timer1Counter, vs.Timer1Latch
	via.timer1Enabled, via.timer1Initialized = vs.Timer1Enabled, vs.Timer1Initialized
	via.timer2Counter, via.timer2Latch = vs.Timer2Counter, vs.Timer2Latch
	via.timer2Enabled, via.timer2Initialized = vs.Timer2Enabled, vs.Timer2Initialized
	via.sr, via.shiftTick, via.shiftCounter, via.shiftStarted = vs.SR, vs.ShiftTick, vs.ShiftCounter, vs.ShiftStarted
	via.currentClock = vs.CurrentClock

	return nil
}
