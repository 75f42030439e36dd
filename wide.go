package int24

// wide.go is the portable arithmetic backend: widen to a native 32 or
// 64 bit integer, compute, clamp back to 24 bits. On hosts with real
// ALUs this is also the fastest way to do it, and it doubles as the
// reference the limb backend is checked against, so it is exported as
// the Wide* method family. The two backends agree bit for bit on every
// input; anywhere the limb algorithms have a quirk (the magnitude
// based division, the truncating shifts) the wide versions reproduce
// it rather than doing the textbook thing.

// WideAdd is the portable implementation of Add.
func (a Int24) WideAdd(b Int24) Int24 {
	// The sum of two 24 bit values always fits in an int32.
	return FromInt32(a.Int32() + b.Int32())
}

// WideSub is the portable implementation of Sub.
func (a Int24) WideSub(b Int24) Int24 {
	return FromInt32(a.Int32() - b.Int32())
}

// WideMul is the portable implementation of Mul.
func (a Int24) WideMul(b Int24) Int24 {
	p := int64(a.Int32()) * int64(b.Int32())
	return FromInt32(int32(clamp(p, int64(MinInt24), int64(MaxInt24))))
}

// WideDiv is the portable implementation of Div. Division runs on
// saturated magnitudes, so abs(MinInt24) divides as MaxInt24; the
// plain quotient of two magnitudes is always in range.
func (a Int24) WideDiv(b Int24) Int24 {
	x, y := a.Int32(), b.Int32()
	if y == 0 {
		if x < 0 {
			return minVal
		}
		return maxVal
	}
	if x == MinInt24 && y == -1 {
		return maxVal
	}
	q := wideAbs(x) / wideAbs(y)
	if (x < 0) != (y < 0) {
		q = -q
	}
	return FromInt32(q)
}

// WideShl8Div is the portable implementation of Shl8Div. The prescaled
// dividend is exactly 32 bits; a quotient spilling into the top byte
// saturates the low 24 bits to the positive maximum before the sign is
// applied, and the sign is applied as a 24 bit two's complement
// negate, wrapping around. Both quirks are the contract.
func (a Int24) WideShl8Div(b Int24) Int24 {
	x, y := a.Int32(), b.Int32()
	if y == 0 {
		if x < 0 {
			return minVal
		}
		return maxVal
	}
	if x == MinInt24 && y == -1 {
		return maxVal
	}
	q := (uint32(wideAbs(x)) << 8) / uint32(wideAbs(y))
	if q > 0xffffff {
		q = 0x7fffff
	}
	if (x < 0) != (y < 0) {
		q = -q & 0xffffff
	}
	return Int24{[3]uint8{uint8(q), uint8(q >> 8), uint8(q >> 16)}}
}

// WideNeg is the portable implementation of Neg.
func (a Int24) WideNeg() Int24 {
	// -MinInt24 exceeds the range and clamps to MaxInt24.
	return FromInt32(-a.Int32())
}

// WideAbs is the portable implementation of Abs.
func (a Int24) WideAbs() Int24 {
	return FromInt32(wideAbs(a.Int32()))
}

// WideShl is the portable implementation of Shl. It truncates
// modularly like the bit-serial shifter; the widened intermediate is
// never clamped.
func (a Int24) WideShl(count uint8) Int24 {
	u := uint32(a.b[0]) | uint32(a.b[1])<<8 | uint32(a.b[2])<<16
	u <<= count
	return Int24{[3]uint8{uint8(u), uint8(u >> 8), uint8(u >> 16)}}
}

// WideShr is the portable implementation of Shr.
func (a Int24) WideShr(count uint8) Int24 {
	// Arithmetic shifts by 24 or more leave just the sign fill, which
	// native int32 shifts also do, so no cap on count is needed.
	return FromInt32(a.Int32() >> count)
}

// WideCmp is the portable implementation of Cmp.
func (a Int24) WideCmp(b Int24) int {
	x, y := a.Int32(), b.Int32()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// wideAbs returns the magnitude of v with the one unrepresentable
// case saturated: abs(MinInt24) is MaxInt24.
func wideAbs(v int32) int32 {
	if v == MinInt24 {
		return MaxInt24
	}
	if v < 0 {
		return -v
	}
	return v
}
