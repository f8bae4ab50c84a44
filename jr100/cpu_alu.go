package jr100

// ALU helpers, transcribed from jr100emu/cpu/cpu.py's per-flag arithmetic
// routines. Each mutates the receiver's condition code bits and returns
// whatever value (if any) the calling opcode stores back.
//
// Two deliberate deviations from the Python reference are recorded here
// rather than silently reproduced, per SPEC_FULL.md's Open Question
// resolutions:
//   - sts sets N/Z from the stack pointer actually stored, not from X
//     (the reference computes them from X, which is a reference bug).
//   - xim clears V like nim/oim (the reference never touches V for XIM at
//     all, leaving whatever the previous instruction left behind).

func (c *CPU) add8(x, y byte) byte {
	a, b := uint16(x), uint16(y)
	result := a + b
	value := byte(result)
	cn := value&0x80 != 0
	c.H = (a&0xF)+(b&0xF) > 0xF
	c.N = cn
	c.Z = value == 0
	sa, sb := int8(x), int8(y)
	c.V = (sa > 0 && sb > 0 && cn) || (sa < 0 && sb < 0 && !cn)
	c.C = result > 0xFF
	return value
}

func (c *CPU) adc8(x, y byte) byte {
	carryIn := uint16(0)
	if c.C {
		carryIn = 1
	}
	a, b := uint16(x), uint16(y)
	result := a + b + carryIn
	value := byte(result)
	cn := value&0x80 != 0
	c.H = (a&0xF)+(b&0xF)+carryIn > 0xF
	c.N = cn
	c.Z = value == 0
	sa, sb := int8(x), int8(y)
	c.V = (sa > 0 && sb > 0 && cn) || (sa < 0 && sb < 0 && !cn)
	c.C = result > 0xFF
	return value
}

func (c *CPU) add16(x, y uint16) uint16 {
	a, b := uint32(x), uint32(y)
	result := a + b
	value := uint16(result)
	signedValue := int16(value)
	c.N = signedValue < 0
	c.Z = value == 0
	sa, sb := int16(x), int16(y)
	cn := c.N
	c.V = (sa > 0 && sb > 0 && cn) || (sa < 0 && sb < 0 && !cn)
	c.C = result > 0xFFFF
	return value
}

func (c *CPU) nim(x, y byte) byte {
	result := x & y
	c.Z = result == 0
	c.N = !c.Z
	c.V = false
	return result
}

func (c *CPU) oim(x, y byte) byte {
	result := x | y
	c.Z = result == 0
	c.N = !c.Z
	c.V = false
	return result
}

func (c *CPU) xim(x, y byte) byte {
	result := x ^ y
	c.Z = result == 0
	c.N = !c.Z
	c.V = false
	return result
}

func (c *CPU) tmm(x, y byte) {
	switch {
	case x == 0 || y == 0:
		c.N, c.Z, c.V = false, true, false
	case y == 0xFF:
		c.N, c.Z, c.V = false, false, true
	default:
		c.N, c.Z, c.V = true, false, false
	}
}

func (c *CPU) and8(x, y byte) byte {
	result := x & y
	c.N = result&0x80 != 0
	c.Z = result == 0
	c.V = false
	return result
}

func (c *CPU) bit8(x, y byte) { c.and8(x, y) }

func (c *CPU) cmp8(x, y byte) {
	result := int32(x) - int32(y)
	value := byte(result & 0xFF)
	c.N = value&0x80 != 0
	c.Z = value == 0
	sx, sy := int8(x), int8(y)
	cn := c.N
	c.V = (sx > 0 && sy < 0 && cn) || (sx < 0 && sy > 0 && !cn)
	c.C = result < 0
}

func (c *CPU) clr() byte {
	c.N, c.Z, c.V, c.C = false, true, false, false
	return 0
}

func (c *CPU) com(x byte) byte {
	result := ^x
	c.N = result&0x80 != 0
	c.Z = result == 0
	c.V = false
	c.C = true
	return result
}

func (c *CPU) dec(x byte) byte {
	result := x - 1
	c.N = result&0x80 != 0
	c.Z = result == 0
	c.V = x == 0x80
	return result
}

func (c *CPU) eor8(x, y byte) byte {
	result := x ^ y
	c.N = result&0x80 != 0
	c.Z = result == 0
	c.V = false
	return result
}

func (c *CPU) inc(x byte) byte {
	result := x + 1
	c.N = result&0x80 != 0
	c.Z = result == 0
	c.V = x == 0x7F
	return result
}

func (c *CPU) lda(value byte) byte {
	c.N = value&0x80 != 0
	c.Z = value == 0
	c.V = false
	return value
}

func (c *CPU) lsr(x byte) byte {
	result := x >> 1
	c.N = false
	c.Z = result == 0
	c.C = x&0x01 != 0
	c.V = c.N != c.C
	return result
}

func (c *CPU) neg(x byte) byte {
	value := byte(-int16(x))
	c.N = value&0x80 != 0
	c.Z = value == 0
	c.V = value == 0x80
	c.C = value != 0x00
	return value
}

func (c *CPU) ora(x, y byte) byte {
	result := x | y
	c.N = result&0x80 != 0
	c.Z = result == 0
	c.V = false
	return result
}

func (c *CPU) sub8(x, y byte) byte {
	result := int32(x) - int32(y)
	out := byte(result & 0xFF)
	cn := out&0x80 != 0
	c.N = cn
	c.Z = out == 0
	sx, sy := int8(x), int8(y)
	c.V = (sx > 0 && sy < 0 && cn) || (sx < 0 && sy > 0 && !cn)
	c.C = result < 0
	return out
}

func (c *CPU) sbc8(x, y byte) byte {
	borrow := int32(0)
	if c.C {
		borrow = 1
	}
	result := int32(x) - int32(y) - borrow
	out := byte(result & 0xFF)
	cn := out&0x80 != 0
	c.N = cn
	c.Z = out == 0
	sx, sy := int8(x), int8(y)
	c.V = (sx > 0 && sy < 0 && cn) || (sx < 0 && sy > 0 && !cn)
	c.C = result < 0
	return out
}

func (c *CPU) sta(address uint16, value byte) {
	c.N = value&0x80 != 0
	c.Z = value == 0
	c.V = false
	c.store8(address, value)
}

func (c *CPU) tst(value byte) {
	c.N = value&0x80 != 0
	c.Z = value == 0
	c.V = false
	c.C = false
}

func (c *CPU) cpx(value uint16) {
	ix := c.X
	diff := uint16(int32(ix) - int32(value))
	signedDiff := int16(diff)
	c.N = signedDiff < 0
	c.Z = diff == 0
	ixSigned, opSigned := int16(ix), int16(value)
	cn := c.N
	c.V = (ixSigned > 0 && opSigned < 0 && cn) || (ixSigned < 0 && opSigned > 0 && !cn)
}

func (c *CPU) dex() { c.X--; c.Z = c.X == 0 }
func (c *CPU) des() { c.SP-- }
func (c *CPU) inx() { c.X++; c.Z = c.X == 0 }
func (c *CPU) ins() { c.SP++ }

func (c *CPU) ldx(value uint16) {
	c.X = value
	c.N = int16(value) < 0
	c.Z = value == 0
	c.V = false
}

func (c *CPU) lds(value uint16) {
	c.SP = value
	c.N = int16(value) < 0
	c.Z = value == 0
	c.V = false
}

func (c *CPU) stx(address uint16) {
	c.store16(address, c.X)
	c.N = int16(c.X) < 0
	c.Z = c.X == 0
	c.V = false
}

// sts stores SP and derives flags from SP, the value actually written --
// see the package doc comment above for why this differs from the ported
// reference.
func (c *CPU) sts(address uint16) {
	c.store16(address, c.SP)
	c.N = int16(c.SP) < 0
	c.Z = c.SP == 0
	c.V = false
}
