package jr100

// Display ports jr100emu/jr100/display.py: a 32x24 character-mode
// framebuffer with two font planes (the normal ROM-resident glyphs and a
// user-definable plane), a per-bit-per-code color map, and pre-rendered
// glyph pixel grids rebuilt on every font-affecting write. It replaces the
// teacher's pixelgl-bound Display (which owned a live window, an RGBA
// image, and debug-text overlays); this type owns no window and only
// renders into an in-memory RGB grid via RenderPixels, matching the
// windowing-is-out-of-scope boundary drawn in SPEC_FULL.md.
const (
	DisplayWidthChars  = 32
	DisplayHeightChars = 24
	displayPPC         = 8

	FontNormal      = 0
	FontUserDefined = 1
)

// userDefinedGlyphs is the number of glyphs the 0xC000-0xC0FF UDC-RAM
// window can address (256 bytes / 8 rows each), occupying the top of the
// code space (224..255).
const userDefinedGlyphs = 32

type Display struct {
	colorMap       [2][256]uint32
	characterROM   [256 * 8]byte
	userDefinedRAM [userDefinedGlyphs * 8]byte
	videoRAM       [DisplayWidthChars * DisplayHeightChars]byte
	fonts          [2][256][64]uint32
	currentFont    int
}

func NewDisplay() *Display {
	d := &Display{}
	for code := 0; code < 256; code++ {
		d.colorMap[0][code] = 0x000000
		d.colorMap[1][code] = 0xFFFFFF
	}
	d.rebuildFonts()
	return d
}

func (d *Display) CurrentFont() int { return d.currentFont }

// SetCurrentFont validates the plane like the reference's set_current_font,
// which raises on anything outside {0,1}.
func (d *Display) SetCurrentFont(plane int) error {
	if plane != FontNormal && plane != FontUserDefined {
		return newProgramLoadError("", "invalid font plane %d", plane)
	}
	d.currentFont = plane
	return nil
}

// LoadCharacterROM seeds the normal-plane glyph source. It requires exactly
// 256*8 bytes, mirroring the reference's hard length check.
func (d *Display) LoadCharacterROM(data []byte) error {
	if len(data) != len(d.characterROM) {
		return newProgramLoadError("", "character rom must be exactly %d bytes, got %d", len(d.characterROM), len(data))
	}
	copy(d.characterROM[:], data)
	d.rebuildFonts()
	return nil
}

// LoadUserDefinedRAM seeds the user-defined plane's 32 glyphs (codes
// 224-255). Requires exactly 32*8 bytes.
func (d *Display) LoadUserDefinedRAM(data []byte) error {
	if len(data) != len(d.userDefinedRAM) {
		return newProgramLoadError("", "user-defined ram must be exactly %d bytes, got %d", len(d.userDefinedRAM), len(data))
	}
	copy(d.userDefinedRAM[:], data)
	d.rebuildUserDefinedFonts()
	return nil
}

// SetVideoRAM bulk-loads the 32x24 character grid. Requires exactly 768
// bytes.
func (d *Display) SetVideoRAM(data []byte) error {
	if len(data) != len(d.videoRAM) {
		return newProgramLoadError("", "video ram must be exactly %d bytes, got %d", len(d.videoRAM), len(data))
	}
	copy(d.videoRAM[:], data)
	return nil
}

// WriteVideoRAM writes a single character cell. It does not touch any font
// -- only which glyph is shown at that cell.
func (d *Display) WriteVideoRAM(index int, v byte) error {
	if index < 0 || index >= len(d.videoRAM) {
		return newProgramLoadError("", "video ram index out of range: %d", index)
	}
	d.videoRAM[index] = v
	return nil
}

// UpdateFont rewrites one row of a user-defined glyph. code is the 0..31
// offset into userDefinedRAM; the glyph actually rebuilt is code+224 on the
// user-defined plane.
func (d *Display) UpdateFont(code, line int, v byte) error {
	if code < 0 || code >= userDefinedGlyphs || line < 0 || line >= displayPPC {
		return newProgramLoadError("", "update_font out of range: code=%d line=%d", code, line)
	}
	d.userDefinedRAM[code*displayPPC+line] = v
	d.rebuildFontEntry(FontUserDefined, code+(256-userDefinedGlyphs))
	return nil
}

// SetColorMapEntry overrides one palette entry and rebuilds the affected
// glyph so the pre-rendered pixel cache stays consistent.
func (d *Display) SetColorMapEntry(plane, index int, color uint32) {
	d.colorMap[plane][index] = color
	d.rebuildFontEntry(plane, index)
}

func (d *Display) rebuildFonts() {
	for plane := 0; plane < 2; plane++ {
		for code := 0; code < 256; code++ {
			d.rebuildFontEntry(plane, code)
		}
	}
}

func (d *Display) rebuildUserDefinedFonts() {
	for code := 256 - userDefinedGlyphs; code < 256; code++ {
		d.rebuildFontEntry(FontUserDefined, code)
	}
}

func (d *Display) rebuildFontEntry(plane, code int) {
	for line := 0; line < displayPPC; line++ {
		value := d.glyphByte(plane, code, line)
		for bit := 0; bit < displayPPC; bit++ {
			pixel := (value >> (7 - bit)) & 1
			d.fonts[plane][code][line*displayPPC+bit] = d.colorMap[pixel][code]
		}
	}
}

// glyphByte reproduces display.py's _glyph_byte, including the reverse-
// video quirk: normal-plane codes 128-255 are the bitwise inverse of codes
// 0-127 from the same ROM bytes, while the user-defined plane's codes
// 128-255 come from the separately writable userDefinedRAM and are not
// inverted.
func (d *Display) glyphByte(plane, code, line int) byte {
	switch plane {
	case FontNormal:
		if code < 128 {
			return d.characterROM[code*displayPPC+line]
		}
		return d.characterROM[(code-128)*displayPPC+line] ^ 0xFF
	default: // FontUserDefined
		udcBase := 256 - userDefinedGlyphs
		if code < udcBase {
			return d.characterROM[code*displayPPC+line]
		}
		return d.userDefinedRAM[(code-udcBase)*displayPPC+line]
	}
}

// RenderPixels returns a height x width grid of packed 0xRRGGBB colors for
// the currently selected font plane. It is the only rendering surface this
// core exposes; turning that grid into actual pixels on screen is the
// excluded windowing front-end's job.
func (d *Display) RenderPixels() [][]uint32 {
	height := DisplayHeightChars * displayPPC
	width := DisplayWidthChars * displayPPC
	pixels := make([][]uint32, height)
	for i := range pixels {
		pixels[i] = make([]uint32, width)
	}

	for charY := 0; charY < DisplayHeightChars; charY++ {
		for charX := 0; charX < DisplayWidthChars; charX++ {
			code := d.videoRAM[charY*DisplayWidthChars+charX]
			glyph := &d.fonts[d.currentFont][code]
			for line := 0; line < displayPPC; line++ {
				row := pixels[charY*displayPPC+line]
				copy(row[charX*displayPPC:charX*displayPPC+displayPPC], glyph[line*displayPPC:line*displayPPC+displayPPC])
			}
		}
	}
	return pixels
}
