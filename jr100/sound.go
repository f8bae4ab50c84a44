package jr100

// SoundEvent records one change to the JR-100's single square-wave line,
// driven by the VIA's Timer 1 (see JR100Hooks). Kept as a plain
// value type so a test can assert on the recorded history without needing
// an audio backend.
type SoundEvent struct {
	ClockCount uint64
	Frequency  float64
	On         bool
}

// Sound is an append-only log of line state changes. It never touches host
// audio -- turning the log into actual sound is the excluded host-playback
// concern SPEC_FULL.md leaves to a front end. Fire-and-forget: nothing ever
// reads SoundEvents back out of this type except tests.
type Sound struct {
	events    []SoundEvent
	frequency float64
	lineOn    bool
}

func NewSound() *Sound {
	return &Sound{}
}

func (s *Sound) SetFrequency(clockCount uint64, hz float64) {
	s.frequency = hz
	s.events = append(s.events, SoundEvent{ClockCount: clockCount, Frequency: hz, On: s.lineOn})
}

func (s *Sound) SetLineOn(clockCount uint64) {
	s.lineOn = true
	s.events = append(s.events, SoundEvent{ClockCount: clockCount, Frequency: s.frequency, On: true})
}

func (s *Sound) SetLineOff(clockCount uint64) {
	s.lineOn = false
	s.events = append(s.events, SoundEvent{ClockCount: clockCount, Frequency: s.frequency, On: false})
}

// Events returns the full recorded history. Callers must not mutate the
// returned slice.
func (s *Sound) Events() []SoundEvent { return s.events }

func (s *Sound) Clear() {
	s.events = nil
	s.frequency = 0
	s.lineOn = false
}
