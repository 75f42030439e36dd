// Package int24 provides Int24, a signed two's complement 24 bit
// integer with total, saturating arithmetic: no operation ever panics,
// out of range results clamp to MaxInt24 or MinInt24 instead of
// wrapping. The exceptions are the left shifts, which deliberately
// truncate so they can be used for fixed-point scaling.
//
// Every operation has two implementations. wide.go widens to native 32
// or 64 bit arithmetic and clamps; limb.go works one byte at a time
// with hand written carry propagation, which is the shape the code has
// to take on a machine with 8 bit registers and no wide multiply or
// divide. The backend behind the named methods is picked once at build
// time (see backend_wide.go and backend_limb.go); the portable
// implementations are additionally always available as the Wide*
// methods, and are bit-identical to the limb backend for every input.
package int24

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Int24 is a signed two's complement 24 bit integer stored as three
// little-endian bytes. The zero value is 0. Int24s are comparable
// with ==.
type Int24 struct {
	b [3]uint8
}

const (
	// MaxInt24 is the largest value an Int24 can hold: 8388607.
	MaxInt24 int32 = 1<<23 - 1
	// MinInt24 is the smallest value an Int24 can hold: -8388608.
	MinInt24 int32 = -1 << 23
)

// The raw extreme bit patterns, used by both backends to saturate.
var (
	maxVal = Int24{[3]uint8{0xff, 0xff, 0x7f}}
	minVal = Int24{[3]uint8{0x00, 0x00, 0x80}}
)

// FromInt16 converts v to an Int24 by sign extension. It is always
// exact: the 16 bit range is a strict subset of the 24 bit range.
func FromInt16(v int16) Int24 {
	hi := uint8(0)
	if v < 0 {
		hi = 0xff
	}
	return Int24{[3]uint8{uint8(v), uint8(uint16(v) >> 8), hi}}
}

// FromInt32 converts v to an Int24, clamping to MinInt24 or MaxInt24
// if v is out of range.
func FromInt32(v int32) Int24 {
	v = clamp(v, MinInt24, MaxInt24)
	return Int24{[3]uint8{uint8(v), uint8(v >> 8), uint8(v >> 16)}}
}

// FromLEBytes reinterprets three little-endian bytes as an Int24.
// Every bit pattern is a valid value, so this cannot fail.
func FromLEBytes(b [3]byte) Int24 {
	return Int24{b}
}

// Int16 returns the value narrowed to 16 bits, clamping to the 16 bit
// extreme of the matching sign if it doesn't fit.
func (a Int24) Int16() int16 {
	return int16(clamp(a.Int32(), math.MinInt16, math.MaxInt16))
}

// Int32 returns the exact value. It never saturates: every Int24 fits
// in an int32.
func (a Int24) Int32() int32 {
	u := uint32(a.b[0]) | uint32(a.b[1])<<8 | uint32(a.b[2])<<16
	return int32(u<<8) >> 8
}

// LEBytes returns the three little-endian bytes of a.
func (a Int24) LEBytes() [3]byte {
	return a.b
}

func (a Int24) String() string {
	return fmt.Sprintf("%d", a.Int32())
}

// Add returns a + b, saturating on overflow.
func (a Int24) Add(b Int24) Int24 { return satAdd(a, b) }

// Sub returns a - b, saturating on overflow.
func (a Int24) Sub(b Int24) Int24 { return satSub(a, b) }

// Mul returns a * b, saturating on overflow.
func (a Int24) Mul(b Int24) Int24 { return satMul(a, b) }

// Div returns a / b truncated towards zero. It is total: dividing by
// zero returns MaxInt24 for a non-negative dividend and MinInt24
// otherwise, and MinInt24 / -1 returns MaxInt24. The division runs on
// saturated magnitudes with the sign applied afterwards, so a dividend
// of MinInt24 divides with magnitude MaxInt24.
func (a Int24) Div(b Int24) Int24 { return satDiv(a, b) }

// Shl8Div returns (a << 8) / b, with the shift taken in a 32 bit
// intermediate so no dividend bits are lost, and only the final
// quotient reduced to 24 bits. It is the fixed-point counterpart of
// Div: the quotient carries 8 fractional bits. The zero divisor and
// MinInt24 / -1 conventions are the same as Div's.
func (a Int24) Shl8Div(b Int24) Int24 { return satShl8Div(a, b) }

// Neg returns -a. Negating MinInt24 saturates to MaxInt24.
func (a Int24) Neg() Int24 { return satNeg(a) }

// Abs returns the absolute value of a. Abs of MinInt24 saturates to
// MaxInt24.
func (a Int24) Abs() Int24 { return satAbs(a) }

// Shl returns a shifted left by count bits. Unlike the arithmetic
// operations it does not saturate: bits shifted past the top are
// discarded, which is what deliberate fixed-point scaling wants.
func (a Int24) Shl(count uint8) Int24 { return satShl(a, count) }

// Shr returns a shifted right arithmetically (sign extending) by
// count bits.
func (a Int24) Shr(count uint8) Int24 { return satShr(a, count) }

// Cmp compares a and b, returning -1 if a < b, 0 if a == b and +1 if
// a > b. The order agrees with comparing Int32 values.
func (a Int24) Cmp(b Int24) int { return satCmp(a, b) }

// The shifts by whole limbs below are plain byte moves, the same on
// every backend, and bit-identical to Shl/Shr at counts 8 and 16.

// Shl8 returns a << 8, truncating like Shl.
func (a Int24) Shl8() Int24 {
	return Int24{[3]uint8{0, a.b[0], a.b[1]}}
}

// Shr8 returns a >> 8, sign extending like Shr.
func (a Int24) Shr8() Int24 {
	return Int24{[3]uint8{a.b[1], a.b[2], signFill(a.b[2])}}
}

// Shl16 returns a << 16, truncating like Shl.
func (a Int24) Shl16() Int24 {
	return Int24{[3]uint8{0, 0, a.b[0]}}
}

// Shr16 returns a >> 16, sign extending like Shr.
func (a Int24) Shr16() Int24 {
	s := signFill(a.b[2])
	return Int24{[3]uint8{a.b[2], s, s}}
}

// signFill spreads the sign bit of the high limb over a whole byte.
func signFill(hi uint8) uint8 {
	return uint8(int8(hi) >> 7)
}

// clamp returns v limited to [lo, hi].
func clamp[T constraints.Integer](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
