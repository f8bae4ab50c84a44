package jr100

// UserCharacterRAM is the 0xC000-0xC0FF window: 256 bytes backing the
// display's 32 user-definable glyphs. Every store also pushes the row into
// Display so the pre-rendered font cache stays current, per SPEC_FULL.md
// §4.2 "User-defined character RAM".
type UserCharacterRAM struct {
	*Memory
	display *Display
}

const (
	UserCharacterRAMStart = 0xC000
	UserCharacterRAMLen   = userDefinedGlyphs * 8

	VideoRAMStart = 0xC100
	VideoRAMLen   = DisplayWidthChars * DisplayHeightChars

	ExtendedIOStart = 0xCC00
	ExtendedIOLen   = 0x0400
	gamepadOffset   = 2
)

func NewUserCharacterRAM(display *Display) *UserCharacterRAM {
	return &UserCharacterRAM{Memory: newMemory(UserCharacterRAMStart, UserCharacterRAMLen), display: display}
}

func (u *UserCharacterRAM) Store8(addr uint16, v byte) {
	idx := u.index(addr)
	u.data[idx] = v
	code := idx / displayPPC
	line := idx % displayPPC
	u.display.UpdateFont(code, line, v)
}

// VideoRAMDevice is the 0xC100-0xC3FF window backing the 32x24 character
// grid. Every store forwards into Display.
type VideoRAMDevice struct {
	*Memory
	display *Display
}

func NewVideoRAMDevice(display *Display) *VideoRAMDevice {
	return &VideoRAMDevice{Memory: newMemory(VideoRAMStart, VideoRAMLen), display: display}
}

func (v *VideoRAMDevice) Store8(addr uint16, val byte) {
	idx := v.index(addr)
	v.data[idx] = val
	v.display.WriteVideoRAM(idx, val)
}

// ExtendedIOPort is the 0xCC00-0xCFFF window. Only offset 2 (the gamepad
// status latch) is meaningful; every other offset reads 0x00 and ignores
// writes, per SPEC_FULL.md §4.2.
type ExtendedIOPort struct {
	start         uint16
	gamepadStatus byte
}

func NewExtendedIOPort() *ExtendedIOPort {
	return &ExtendedIOPort{start: ExtendedIOStart}
}

func (e *ExtendedIOPort) Start() uint16 { return e.start }
func (e *ExtendedIOPort) End() uint16   { return e.start + ExtendedIOLen - 1 }

func (e *ExtendedIOPort) Load8(addr uint16) byte {
	if int(addr-e.start) == gamepadOffset {
		return e.gamepadStatus
	}
	return 0x00
}

func (e *ExtendedIOPort) Store8(addr uint16, v byte) {
	if int(addr-e.start) == gamepadOffset {
		e.gamepadStatus = v
	}
}

// SetGamepadState packs the five JR-100 gamepad lines into the status
// latch: right=0x01, left=0x02, up=0x04, down=0x08, switch=0x10.
func (e *ExtendedIOPort) SetGamepadState(left, right, up, down, sw bool) {
	var v byte
	if right {
		v |= 0x01
	}
	if left {
		v |= 0x02
	}
	if up {
		v |= 0x04
	}
	if down {
		v |= 0x08
	}
	if sw {
		v |= 0x10
	}
	e.gamepadStatus = v
}

// BasicROM is the 0xE000-0xFFFF window: the read-only BASIC interpreter
// image, whose front 2048 bytes double as the normal-plane character
// generator source.
type BasicROM struct {
	*ROM
}

const (
	BasicROMStart       = 0xE000
	BasicROMLen         = 0x2000
	BasicROMFontAddress = 0xE000
	BasicROMFontLen     = 2048
)

func NewBasicROM() *BasicROM {
	return &BasicROM{ROM: NewROM(BasicROMStart, BasicROMLen)}
}

// FontAddress is the fixed offset within the ROM image where normal-plane
// glyph bytes live; used to seed Display.LoadCharacterROM after loading.
func (b *BasicROM) FontAddress() uint16 { return BasicROMFontAddress }

// FontBytes returns the first 2048 bytes of the loaded image.
func (b *BasicROM) FontBytes() []byte {
	return b.Bytes()[:BasicROMFontLen]
}
