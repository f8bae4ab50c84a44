package jr100

import (
	"container/heap"
	"io"
	"log"
)

// DefaultCPUClockFrequency is the JR-100's stock MB8861 clock, in Hz.
const DefaultCPUClockFrequency = 894000

type LifecycleState int

const (
	StateStopped LifecycleState = iota
	StateRunning
	StatePaused
)

// scheduledEvent is one entry in the periodic-task min-heap: display
// refresh and gamepad polling both reschedule themselves by pushing a new
// event at task completion time, rather than living on a fixed ticker --
// the same "self-rescheduling event" shape as the reference's event queue.
type scheduledEvent struct {
	at       uint64
	interval uint64
	task     func(*Computer)
	index    int
}

type eventHeap []*scheduledEvent

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].at < h[j].at }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *eventHeap) Push(x interface{}) {
	e := x.(*scheduledEvent)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Computer ports jr100emu/jr100/jr100.py's top-level scheduler: it owns the
// CPU, memory map, VIA, and JR-100 peripherals, and drives them forward in
// lockstep via Tick. Grounded on the teacher's Bus (nes/bus.go), which
// plays the identical "own every chip, advance them together each step"
// role, generalized from a fixed 3:1 CPU:PPU clock ratio to an event-heap
// scheduler.
type Computer struct {
	Memory   *MemorySystem
	CPU      *CPU
	VIA      *VIA
	Display  *Display
	Keyboard *Keyboard
	Sound    *Sound
	ExtIO    *ExtendedIOPort
	RAM      *RAM
	BasicROM *BasicROM

	cpuClockFrequency float64
	state             LifecycleState
	events            eventHeap

	// OnDisplayRefresh and OnGamepadPoll are optional front-end hooks fired
	// at 60Hz and 120Hz respectively. A front end sets these to pull
	// Display.RenderPixels() for presentation or to push host input into
	// ExtIO.SetGamepadState; the core itself has no display surface or
	// input device to poll, so both default to nil and are skipped.
	OnDisplayRefresh func(*Computer)
	OnGamepadPoll    func(*Computer)

	Logger *log.Logger
}

// NewComputer assembles a fresh machine with all devices registered into
// the memory map, but does not load a ROM image; call LoadBasicROMBootstrap
// (see program.go) before PowerOn.
func NewComputer() *Computer {
	display := NewDisplay()
	keyboard := NewKeyboard()
	sound := NewSound()
	extIO := NewExtendedIOPort()
	ram := NewRAM(0x0000, 0x4000)
	ucRAM := NewUserCharacterRAM(display)
	vram := NewVideoRAMDevice(display)
	basicROM := NewBasicROM()

	memory := NewMemorySystem()
	memory.Register(ram)
	memory.Register(ucRAM)
	memory.Register(vram)
	memory.Register(extIO)
	memory.Register(basicROM)

	cpu := NewCPU(memory)
	hooks := NewJR100Hooks(keyboard, display, sound, cpu, DefaultCPUClockFrequency)
	via := NewVIA(hooks)
	hooks.bindVIA(via)
	memory.Register(via)

	comp := &Computer{
		Memory:            memory,
		CPU:               cpu,
		VIA:               via,
		Display:           display,
		Keyboard:          keyboard,
		Sound:             sound,
		ExtIO:             extIO,
		RAM:               ram,
		BasicROM:          basicROM,
		cpuClockFrequency: DefaultCPUClockFrequency,
		state:             StateStopped,
		Logger:            log.New(io.Discard, "", 0),
	}
	comp.scheduleDisplayRefresh()
	comp.scheduleGamepadPoll()
	return comp
}

func (c *Computer) State() LifecycleState { return c.state }

func (c *Computer) scheduleDisplayRefresh() {
	interval := uint64(c.cpuClockFrequency / 60)
	heap.Push(&c.events, &scheduledEvent{
		at:       c.CPU.ClockCount() + interval,
		interval: interval,
		task: func(comp *Computer) {
			if comp.OnDisplayRefresh != nil {
				comp.OnDisplayRefresh(comp)
			}
		},
	})
}

func (c *Computer) scheduleGamepadPoll() {
	interval := uint64(c.cpuClockFrequency / 120)
	heap.Push(&c.events, &scheduledEvent{
		at:       c.CPU.ClockCount() + interval,
		interval: interval,
		task: func(comp *Computer) {
			if comp.OnGamepadPoll != nil {
				comp.OnGamepadPoll(comp)
			}
		},
	})
}

// Tick runs the CPU for cycles clock ticks, catching the VIA up after the
// CPU burst, and fires periodic events, following SPEC_FULL.md §5's
// within-Tick ordering: events already due are dispatched before the CPU
// runs, the CPU burst executes atomically, the VIA (the only device with
// an Execute step) catches up once the CPU returns, and events that became
// due during the burst are dispatched last.
func (c *Computer) Tick(cycles uint64) error {
	if c.state != StateRunning {
		return nil
	}
	c.fireDueEvents(c.CPU.ClockCount())

	target := c.CPU.ClockCount() + cycles
	overshoot, err := c.CPU.Execute(cycles)
	_ = overshoot
	if err != nil {
		return err
	}
	c.VIA.Execute(c.CPU.ClockCount())

	c.fireDueEvents(target)
	return nil
}

func (c *Computer) fireDueEvents(clock uint64) {
	for len(c.events) > 0 && c.events[0].at <= clock {
		ev := heap.Pop(&c.events).(*scheduledEvent)
		ev.task(c)
		if ev.interval > 0 {
			ev.at += ev.interval
			heap.Push(&c.events, ev)
		}
	}
}

func (c *Computer) PowerOn() {
	c.state = StateRunning
	c.CPU.RequestReset()
}

func (c *Computer) Pause() {
	if c.state == StateRunning {
		c.state = StatePaused
	}
}

func (c *Computer) Resume() {
	if c.state == StatePaused {
		c.state = StateRunning
	}
}

func (c *Computer) PowerOff() { c.state = StateStopped }

// Reset clears mutable VIA state and the keyboard matrix, and reloads PC
// from the restart vector on the next Tick.
func (c *Computer) Reset() {
	c.VIA.Reset()
	c.Keyboard.Clear()
	c.Sound.Clear()
	c.CPU.RequestReset()
}
