package int24

// limb.go is the low-level arithmetic backend. Nothing on the data
// path here is wider than one byte: every operation works limb by limb
// with explicit carry and borrow propagation, multiplication is a
// serial shift-and-add over the multiplier bits, and division is a
// bit-at-a-time restoring long division. That is the only way to do
// 24 bit arithmetic on a machine whose ALU stops at 8 bits, and
// keeping the Go rendition in the same shape keeps it checkable
// against such machines.
//
// The uint16 partial sums are adds-with-carry: the low byte is the
// limb, the high byte is the carry out. Likewise a borrow shows up as
// 0xff in the high byte of a uint16 difference.

// limbAdd adds the limbs of a and b with chained carries. Overflow
// follows the usual two's complement rule: the operands share a sign
// and the sum's sign differs, and the result saturates towards the
// operands' sign.
func limbAdd(a, b Int24) Int24 {
	s0 := uint16(a.b[0]) + uint16(b.b[0])
	s1 := uint16(a.b[1]) + uint16(b.b[1]) + s0>>8
	s2 := uint16(a.b[2]) + uint16(b.b[2]) + s1>>8
	r := Int24{[3]uint8{uint8(s0), uint8(s1), uint8(s2)}}
	if (a.b[2]^b.b[2])&0x80 == 0 && (a.b[2]^r.b[2])&0x80 != 0 {
		if a.b[2]&0x80 != 0 {
			return minVal
		}
		return maxVal
	}
	return r
}

// limbSub subtracts the limbs of b from a with chained borrows.
// Overflow happens when the operand signs differ and the result's
// sign differs from a's, saturating towards a's sign.
func limbSub(a, b Int24) Int24 {
	d0 := uint16(a.b[0]) - uint16(b.b[0])
	d1 := uint16(a.b[1]) - uint16(b.b[1]) - d0>>8&1
	d2 := uint16(a.b[2]) - uint16(b.b[2]) - d1>>8&1
	r := Int24{[3]uint8{uint8(d0), uint8(d1), uint8(d2)}}
	if (a.b[2]^b.b[2])&0x80 != 0 && (a.b[2]^r.b[2])&0x80 != 0 {
		if a.b[2]&0x80 != 0 {
			return minVal
		}
		return maxVal
	}
	return r
}

// negate is the unsaturated two's complement of a: invert the limbs
// and ripple a one through them.
func negate(a Int24) Int24 {
	s0 := uint16(^a.b[0]) + 1
	s1 := uint16(^a.b[1]) + s0>>8
	s2 := uint16(^a.b[2]) + s1>>8
	return Int24{[3]uint8{uint8(s0), uint8(s1), uint8(s2)}}
}

// limbNeg negates a, saturating the one value with no in-range
// negation. MinInt24 is the only input that negate leaves negative,
// so old sign & new sign is the whole test.
func limbNeg(a Int24) Int24 {
	r := negate(a)
	if a.b[2]&r.b[2]&0x80 != 0 {
		return maxVal
	}
	return r
}

// limbAbs returns the magnitude of a; abs(MinInt24) saturates to
// MaxInt24 via limbNeg.
func limbAbs(a Int24) Int24 {
	if a.b[2]&0x80 != 0 {
		return limbNeg(a)
	}
	return a
}

// limbMul multiplies a and b into a 48 bit product and saturates it to
// 24 bits. The product is built with a Booth serial multiply: 24
// rounds, each conditionally adding or subtracting the multiplicand
// into the high half of the accumulator and then arithmetic-shifting
// the whole 48 bits right by one, the multiplier occupying the low
// half and giving up one bit per round. The expected product sign is
// decided up front from the operand signs and carried separately: the
// accumulator alone cannot tell a legitimately negative product from
// an overflowed positive one.
func limbMul(a, b Int24) Int24 {
	if a == (Int24{}) || b == (Int24{}) {
		return Int24{}
	}
	if a == minVal {
		// |MinInt24 * b| > MaxInt24 for every nonzero b, so the result
		// is an extreme either way and only the sign is b's to pick.
		if b.b[2]&0x80 != 0 {
			return maxVal
		}
		return minVal
	}
	neg := (a.b[2]^b.b[2])&0x80 != 0

	var h0, h1, h2 uint8 // high half of the product accumulator
	prev := uint8(0)     // multiplier bit retired in the previous round
	for i := 0; i < 24; i++ {
		if prev != 0 {
			s0 := uint16(h0) + uint16(a.b[0])
			s1 := uint16(h1) + uint16(a.b[1]) + s0>>8
			s2 := uint16(h2) + uint16(a.b[2]) + s1>>8
			h0, h1, h2 = uint8(s0), uint8(s1), uint8(s2)
		}
		cur := b.b[0] & 1
		if cur != 0 {
			d0 := uint16(h0) - uint16(a.b[0])
			d1 := uint16(h1) - uint16(a.b[1]) - d0>>8&1
			d2 := uint16(h2) - uint16(a.b[2]) - d1>>8&1
			h0, h1, h2 = uint8(d0), uint8(d1), uint8(d2)
		}
		// Arithmetic shift of the whole 48 bit {h2 h1 h0 b2 b1 b0},
		// low limbs first so each picks up its neighbour's old bit.
		b.b[0] = b.b[0]>>1 | b.b[1]<<7
		b.b[1] = b.b[1]>>1 | b.b[2]<<7
		b.b[2] = b.b[2]>>1 | h0<<7
		h0 = h0>>1 | h1<<7
		h1 = h1>>1 | h2<<7
		h2 = uint8(int8(h2) >> 1)
		prev = cur
	}

	if !neg {
		// A positive product must have a clear sign bit and nothing
		// in the high half.
		if b.b[2]&0x80 != 0 || h0|h1|h2 != 0 {
			return maxVal
		}
		return b
	}
	// A negative product must have a set sign bit and an all-ones
	// high half.
	if b.b[2]&0x80 == 0 || h0&h1&h2 != 0xff {
		return minVal
	}
	return b
}

// limbDiv returns a / b truncated towards zero, see Div for the zero
// divisor and MinInt24 / -1 conventions.
func limbDiv(a, b Int24) Int24 {
	return limbDivide(a, b, false)
}

// limbShl8Div returns (a << 8) / b with the shift taken before the
// division in a 32 bit intermediate, see Shl8Div.
func limbShl8Div(a, b Int24) Int24 {
	return limbDivide(a, b, true)
}

func limbDivide(a, b Int24, prescale bool) Int24 {
	if b == (Int24{}) {
		// Division by zero saturates in the direction of the
		// dividend. No sign fixup afterwards.
		if a.b[2]&0x80 != 0 {
			return minVal
		}
		return maxVal
	}
	if a == minVal && b.b[0]&b.b[1]&b.b[2] == 0xff {
		// MinInt24 / -1: the only quotient whose magnitude is
		// unrepresentable.
		return maxVal
	}
	neg := (a.b[2]^b.b[2])&0x80 != 0
	a = limbAbs(a)
	b = limbAbs(b)
	var q Int24
	if prescale {
		q = udiv32(a, b)
	} else {
		q = udiv24(a, b)
	}
	if neg {
		// Plain two's complement, not limbNeg: the prescaled quotient
		// may exceed the positive range and negates with wraparound.
		q = negate(q)
	}
	return q
}

// udiv24 is an unsigned restoring long division of two 24 bit
// magnitudes, one quotient bit per round: shift the partial remainder
// left by one taking in the next dividend bit, subtract the divisor,
// and keep the difference only if it didn't borrow. Quotient bits
// shift into the dividend limbs as they vacate.
func udiv24(a, b Int24) Int24 {
	var r0, r1, r2 uint8 // partial remainder
	c := uint8(0)        // next quotient bit
	for i := 0; i < 24; i++ {
		hi := a.b[2] >> 7
		a.b[2] = a.b[2]<<1 | a.b[1]>>7
		a.b[1] = a.b[1]<<1 | a.b[0]>>7
		a.b[0] = a.b[0]<<1 | c
		r2 = r2<<1 | r1>>7
		r1 = r1<<1 | r0>>7
		r0 = r0<<1 | hi
		d0 := uint16(r0) - uint16(b.b[0])
		d1 := uint16(r1) - uint16(b.b[1]) - d0>>8&1
		d2 := uint16(r2) - uint16(b.b[2]) - d1>>8&1
		if d2>>8&1 != 0 {
			c = 0 // the divisor didn't fit; leave the remainder alone
			continue
		}
		r0, r1, r2 = uint8(d0), uint8(d1), uint8(d2)
		c = 1
	}
	// Take in the final quotient bit.
	a.b[2] = a.b[2]<<1 | a.b[1]>>7
	a.b[1] = a.b[1]<<1 | a.b[0]>>7
	a.b[0] = a.b[0]<<1 | c
	return a
}

// udiv32 is udiv24 with the dividend first moved up one whole limb,
// running over a 32 bit intermediate. A quotient that needs the top
// limb saturates the low three to the positive maximum; the caller
// applies the sign afterwards.
func udiv32(a, b Int24) Int24 {
	q := [4]uint8{0, a.b[0], a.b[1], a.b[2]} // a << 8
	var r [4]uint8
	c := uint8(0)
	for i := 0; i < 32; i++ {
		hi := q[3] >> 7
		q[3] = q[3]<<1 | q[2]>>7
		q[2] = q[2]<<1 | q[1]>>7
		q[1] = q[1]<<1 | q[0]>>7
		q[0] = q[0]<<1 | c
		r[3] = r[3]<<1 | r[2]>>7
		r[2] = r[2]<<1 | r[1]>>7
		r[1] = r[1]<<1 | r[0]>>7
		r[0] = r[0]<<1 | hi
		d0 := uint16(r[0]) - uint16(b.b[0])
		d1 := uint16(r[1]) - uint16(b.b[1]) - d0>>8&1
		d2 := uint16(r[2]) - uint16(b.b[2]) - d1>>8&1
		d3 := uint16(r[3]) - d2>>8&1 // the divisor's top limb is zero
		if d3>>8&1 != 0 {
			c = 0
			continue
		}
		r[0], r[1], r[2], r[3] = uint8(d0), uint8(d1), uint8(d2), uint8(d3)
		c = 1
	}
	q[3] = q[3]<<1 | q[2]>>7
	q[2] = q[2]<<1 | q[1]>>7
	q[1] = q[1]<<1 | q[0]>>7
	q[0] = q[0]<<1 | c
	if q[3] != 0 {
		return maxVal
	}
	return Int24{[3]uint8{q[0], q[1], q[2]}}
}

// limbShl shifts a left one bit at a time, the carry out of each limb
// feeding the next. Bits leaving the top limb are dropped.
func limbShl(a Int24, count uint8) Int24 {
	for ; count > 0; count-- {
		a.b[2] = a.b[2]<<1 | a.b[1]>>7
		a.b[1] = a.b[1]<<1 | a.b[0]>>7
		a.b[0] <<= 1
	}
	return a
}

// limbShr shifts a right one bit at a time, arithmetically: the top
// limb keeps its sign, each lower limb picks up the bit its neighbour
// drops.
func limbShr(a Int24, count uint8) Int24 {
	for ; count > 0; count-- {
		a.b[0] = a.b[0]>>1 | a.b[1]<<7
		a.b[1] = a.b[1]>>1 | a.b[2]<<7
		a.b[2] = uint8(int8(a.b[2]) >> 1)
	}
	return a
}

// limbGE reports whether a >= b, read off the limbwise subtraction
// a - b: a is greater or equal exactly when the difference's sign
// matches its overflow, the signed-comparison trick every flags
// register implements as N xor V.
func limbGE(a, b Int24) bool {
	d0 := uint16(a.b[0]) - uint16(b.b[0])
	d1 := uint16(a.b[1]) - uint16(b.b[1]) - d0>>8&1
	d2 := uint16(a.b[2]) - uint16(b.b[2]) - d1>>8&1
	n := uint8(d2)&0x80 != 0
	v := (a.b[2]^b.b[2])&(a.b[2]^uint8(d2))&0x80 != 0
	return n == v
}

// limbCmp builds the three way result from equality plus limbGE; there
// is no separate three way primitive.
func limbCmp(a, b Int24) int {
	if a == b {
		return 0
	}
	if limbGE(a, b) {
		return 1
	}
	return -1
}
