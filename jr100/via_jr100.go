package jr100

// JR100Hooks wires the generic VIA to JR-100-specific peripherals, mirroring
// jr100/r6522.py's JR100R6522 subclass:
//   - Port A selects a keyboard row (its low 4 bits); the active-low
//     readback lands on Port B's low 5 bits -- write IORA, read IORB.
//   - Port B's bit 5 additionally selects the display's font plane (set =
//     user-defined, clear = normal), and bit 7 is copied onto bit 6 on every
//     ORB write and on every Timer 1 underflow in modes 2 and 3.
//   - Timer 1 drives the one-bit speaker line: a T1CH write while
//     free-run+PB7 mode is selected sets the frequency and turns the line
//     on, a T1CH write in any other mode turns it off, and a one-shot
//     (mode 0) underflow turns it off. Other underflows leave it alone.
type JR100Hooks struct {
	keyboard *Keyboard
	display  *Display
	sound    *Sound
	cpu      *CPU
	via      *VIA

	cpuClockFrequency float64
	previousFrequency float64
}

func NewJR100Hooks(keyboard *Keyboard, display *Display, sound *Sound, cpu *CPU, cpuClockFrequency float64) *JR100Hooks {
	return &JR100Hooks{keyboard: keyboard, display: display, sound: sound, cpu: cpu, cpuClockFrequency: cpuClockFrequency}
}

// bindVIA lets Computer finish wiring after both the VIA and the hooks
// exist (the VIA needs the hooks at construction, the hooks need the VIA
// to read back Port B and to drive Port B bits 6/7).
func (h *JR100Hooks) bindVIA(v *VIA) { h.via = v }

// StoreORB is store_orb_option: select the display's font plane from the
// current Port B reading and jumper PB7 onto PB6.
func (h *JR100Hooks) StoreORB(value byte) {
	if h.via == nil {
		return
	}
	if h.display != nil {
		if h.via.inputPortB()&0x20 == 0x20 {
			_ = h.display.SetCurrentFont(FontUserDefined)
		} else {
			_ = h.display.SetCurrentFont(FontNormal)
		}
	}
	h.jumperPB7PB6()
}

// StoreORA is store_iora_option: scan the keyboard row selected by ORA's
// low 4 bits and merge its active-low readback into Port B's low 5 bits,
// preserving whatever is already on bits 5-7.
func (h *JR100Hooks) StoreORA(value byte) {
	if h.via == nil || h.keyboard == nil {
		return
	}
	row := int(value & 0x0F)
	merged := (h.via.inputPortB() & 0xE0) | h.keyboard.GetColumn(row)
	h.via.setPortBValue(merged)
}

// StoreT1CH is store_t1ch_option: recompute the speaker frequency whenever
// Timer 1's high byte is (re)loaded while free-run+PB7 mode (ACR 0xC0) is
// already selected; otherwise silence the line.
func (h *JR100Hooks) StoreT1CH() {
	if h.sound == nil || h.via == nil || h.cpu == nil {
		return
	}
	if h.via.acr&0xC0 != 0xC0 {
		h.sound.SetLineOff(h.cpu.ClockCount())
		return
	}
	divisor := float64(h.via.timer1Counter) + 2
	if divisor <= 0 {
		return
	}
	frequency := 894886.25 / divisor / 2.0
	if frequency == h.previousFrequency {
		h.sound.SetLineOn(h.cpu.ClockCount())
		return
	}
	h.previousFrequency = frequency
	h.sound.SetFrequency(h.cpu.ClockCount(), frequency)
	h.sound.SetLineOn(h.cpu.ClockCount())
}

// Timer1TimeoutMode0 is a one-shot Timer 1 underflow with PB7 disabled:
// nothing drives the speaker, so mute it.
func (h *JR100Hooks) Timer1TimeoutMode0() {
	if h.sound == nil || h.cpu == nil {
		return
	}
	h.sound.SetLineOff(h.cpu.ClockCount())
}

// Timer1TimeoutMode1 is a free-run underflow with PB7 disabled. The JR-100
// ROM never selects this ACR combination for sound generation, so this
// hook -- present only for parity with the other three modes -- does
// nothing, matching timer1_timeout_mode1_option's default no-op.
func (h *JR100Hooks) Timer1TimeoutMode1() {}

// Timer1TimeoutMode2 is a one-shot underflow with PB7 enabled.
func (h *JR100Hooks) Timer1TimeoutMode2() { h.jumperPB7PB6() }

// Timer1TimeoutMode3 is the free-run+PB7 underflow that drives the speaker
// square wave.
func (h *JR100Hooks) Timer1TimeoutMode3() { h.jumperPB7PB6() }

func (h *JR100Hooks) HandlerIRQ(asserted bool) {
	if h.cpu == nil {
		return
	}
	h.cpu.SetIRQLine(asserted)
}

func (h *JR100Hooks) jumperPB7PB6() {
	if h.via == nil {
		return
	}
	h.via.setPortB(6, h.via.inputPortB()&0x80 != 0)
}
