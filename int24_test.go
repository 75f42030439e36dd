package int24

import (
	"testing"
)

func TestFromInt16RoundTrip(t *testing.T) {
	// The 16 bit range is a strict subset, so every value survives.
	for v := -0x8000; v <= 0x7fff; v++ {
		got := FromInt16(int16(v))
		if got.Int16() != int16(v) {
			t.Fatalf("FromInt16(%d).Int16() = %d", v, got.Int16())
		}
		if got.Int32() != int32(v) {
			t.Fatalf("FromInt16(%d).Int32() = %d", v, got.Int32())
		}
	}
}

func TestInt16Saturates(t *testing.T) {
	for _, c := range []struct {
		in  int32
		out int16
	}{
		{0, 0},
		{0x1234, 0x1234},
		{-0x1234, -0x1234},
		{0x7fff, 0x7fff},
		{-0x8000, -0x8000},
		{0x8000, 0x7fff},
		{-0x8001, -0x8000},
		{0x123456, 0x7fff},
		{-0x123456, -0x8000},
		{MaxInt24, 0x7fff},
		{MinInt24, -0x8000},
	} {
		if got := FromInt32(c.in).Int16(); got != c.out {
			t.Errorf("FromInt32(%d).Int16() = %d, want %d", c.in, got, c.out)
		}
	}
}

func TestFromInt32(t *testing.T) {
	for _, c := range []struct {
		in, out int32
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{0x123456, 0x123456},
		{-0x123456, -0x123456},
		{MaxInt24, MaxInt24},
		{MinInt24, MinInt24},
		{MaxInt24 + 1, MaxInt24},
		{MinInt24 - 1, MinInt24},
		{0x12345678, MaxInt24},
		{-0x12345678, MinInt24},
		{1<<31 - 1, MaxInt24},
		{-1 << 31, MinInt24},
	} {
		if got := FromInt32(c.in).Int32(); got != c.out {
			t.Errorf("FromInt32(%d).Int32() = %d, want %d", c.in, got, c.out)
		}
	}
	// Walk a single bit up through the out-of-range region.
	for a := uint32(0x0080_0000); ; a <<= 1 {
		if got := FromInt32(int32(a)).Int32(); got != MaxInt24 {
			t.Errorf("FromInt32(%#x).Int32() = %d, want MaxInt24", a, got)
		}
		if a == 0x4000_0000 {
			break
		}
	}
	for a := uint32(0xff80_0000); ; a <<= 1 {
		if got := FromInt32(int32(a)).Int32(); got != MinInt24 {
			t.Errorf("FromInt32(%#x).Int32() = %d, want MinInt24", a, got)
		}
		if a == 0x8000_0000 {
			break
		}
	}
}

func TestLEBytes(t *testing.T) {
	for _, c := range []struct {
		b [3]byte
		v int32
	}{
		{[3]byte{0, 0, 0}, 0},
		{[3]byte{1, 0, 0}, 1},
		{[3]byte{0xff, 0xff, 0xff}, -1},
		{[3]byte{0x34, 0x12, 0x00}, 0x1234},
		{[3]byte{0x56, 0x34, 0x12}, 0x123456},
		{[3]byte{0xff, 0xff, 0x7f}, MaxInt24},
		{[3]byte{0x00, 0x00, 0x80}, MinInt24},
	} {
		if got := FromLEBytes(c.b).Int32(); got != c.v {
			t.Errorf("FromLEBytes(%x).Int32() = %d, want %d", c.b, got, c.v)
		}
		if got := FromInt32(c.v).LEBytes(); got != c.b {
			t.Errorf("FromInt32(%d).LEBytes() = %x, want %x", c.v, got, c.b)
		}
	}
}

func TestAdd(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, b, out Int24
	}{
		{i(0), i(0), i(0)},
		{i(1000), i(1010), i(2010)},
		{i(1000), i(-1010), i(-10)},
		{i(-1000), i(1010), i(10)},
		{i(0x7ffffe), i(2), i(0x7fffff)},
		{i(-0x7fffff), i(-2), i(-0x800000)},
		{i(MaxInt24), i(MaxInt24), i(MaxInt24)},
		{i(MinInt24), i(MinInt24), i(MinInt24)},
	} {
		if got := c.a.Add(c.b); got != c.out {
			t.Errorf("%v.Add(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
		if got := c.b.Add(c.a); got != c.out {
			t.Errorf("%v.Add(%v) = %v, want %v", c.b, c.a, got, c.out)
		}
		if got := c.a.WideAdd(c.b); got != c.out {
			t.Errorf("%v.WideAdd(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
	}
}

func TestSub(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, b, out Int24
	}{
		{i(1000), i(1010), i(-10)},
		{i(1000), i(-1010), i(2010)},
		{i(-1000), i(1010), i(-2010)},
		{i(-0x7fffff), i(2), i(-0x800000)},
		{i(0x7ffffe), i(-2), i(0x7fffff)},
		{i(0), i(MinInt24), i(MaxInt24)},
	} {
		if got := c.a.Sub(c.b); got != c.out {
			t.Errorf("%v.Sub(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
		if got := c.a.WideSub(c.b); got != c.out {
			t.Errorf("%v.WideSub(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
	}
}

func TestMul(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, b, out Int24
	}{
		{i(0), i(12345), i(0)},
		{i(12345), i(0), i(0)},
		{i(1), i(1), i(1)},
		{i(-1), i(-1), i(1)},
		{i(1000), i(1010), i(1010000)},
		{i(1000), i(-1010), i(-1010000)},
		{i(-1000), i(1010), i(-1010000)},
		{i(0x7f0000), i(2), i(0x7fffff)},
		{i(-0x80ffff), i(2), i(-0x800000)}, // operand already saturates to MinInt24
		{i(MinInt24), i(1), i(MinInt24)},
		{i(MinInt24), i(-1), i(MaxInt24)},
		{i(MinInt24), i(0), i(0)},
		{i(MaxInt24), i(MaxInt24), i(MaxInt24)},
		{i(MaxInt24), i(-1), i(-0x7fffff)},
	} {
		if got := c.a.Mul(c.b); got != c.out {
			t.Errorf("%v.Mul(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
		if got := c.b.Mul(c.a); got != c.out {
			t.Errorf("%v.Mul(%v) = %v, want %v", c.b, c.a, got, c.out)
		}
		if got := c.a.WideMul(c.b); got != c.out {
			t.Errorf("%v.WideMul(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
	}
}

func TestDiv(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, b, out Int24
	}{
		{i(100000), i(1010), i(99)},
		{i(100000), i(-1010), i(-99)},
		{i(-100000), i(1010), i(-99)},
		{i(-100000), i(-1010), i(99)},
		{i(7), i(2), i(3)}, // truncates towards zero
		{i(-7), i(2), i(-3)},
		{i(12345), i(1), i(12345)},
		{i(MinInt24), i(-1), i(MaxInt24)},
		// Division by zero saturates towards the dividend's sign.
		{i(0), i(0), i(MaxInt24)},
		{i(5), i(0), i(MaxInt24)},
		{i(-5), i(0), i(MinInt24)},
		// The dividend's magnitude saturates first, so MinInt24
		// divides as MaxInt24.
		{i(MinInt24), i(2), i(-0x3fffff)},
		{i(MinInt24), i(1), i(-0x7fffff)},
	} {
		if got := c.a.Div(c.b); got != c.out {
			t.Errorf("%v.Div(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
		if got := c.a.WideDiv(c.b); got != c.out {
			t.Errorf("%v.WideDiv(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
	}
}

func TestShl8Div(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, b, out Int24
	}{
		{i(100000), i(1010), i(25346)},
		{i(100000), i(-1010), i(-25346)},
		{i(-100000), i(1010), i(-25346)},
		{i(255), i(256), i(255)}, // 8 fractional bits: 255/256 scaled up
		{i(1000000), i(2), i(0x7fffff)},
		// Negative prescaled saturation clips the magnitude to
		// 0x7fffff and then negates it, giving -0x7fffff.
		{i(-1000000), i(2), i(-0x7fffff)},
		{i(MinInt24), i(-1), i(MaxInt24)},
		{i(5), i(0), i(MaxInt24)},
		{i(-5), i(0), i(MinInt24)},
		// The quotient 0x800000 fits the 32 bit intermediate but wraps
		// into the sign bit of the 24 bit result.
		{i(0x600000), i(0xc0), i(MinInt24)},
	} {
		if got := c.a.Shl8Div(c.b); got != c.out {
			t.Errorf("%v.Shl8Div(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
		if got := c.a.WideShl8Div(c.b); got != c.out {
			t.Errorf("%v.WideShl8Div(%v) = %v, want %v", c.a, c.b, got, c.out)
		}
	}
}

func TestNeg(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, out Int24
	}{
		{i(0), i(0)},
		{i(100000), i(-100000)},
		{i(-100000), i(100000)},
		{i(0x7fffff), i(-0x7fffff)},
		{i(-0x7fffff), i(0x7fffff)},
		{i(MinInt24), i(MaxInt24)}, // saturated
	} {
		if got := c.a.Neg(); got != c.out {
			t.Errorf("%v.Neg() = %v, want %v", c.a, got, c.out)
		}
		if got := c.a.WideNeg(); got != c.out {
			t.Errorf("%v.WideNeg() = %v, want %v", c.a, got, c.out)
		}
	}
}

func TestAbs(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, out Int24
	}{
		{i(0), i(0)},
		{i(100000), i(100000)},
		{i(-100000), i(100000)},
		{i(0x7fffff), i(0x7fffff)},
		{i(-0x7fffff), i(0x7fffff)},
		{i(MinInt24), i(MaxInt24)}, // saturated
	} {
		if got := c.a.Abs(); got != c.out {
			t.Errorf("%v.Abs() = %v, want %v", c.a, got, c.out)
		}
		if got := c.a.WideAbs(); got != c.out {
			t.Errorf("%v.WideAbs() = %v, want %v", c.a, got, c.out)
		}
	}
}

func TestShl(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a     Int24
		count uint8
		out   Int24
	}{
		{i(100000), 0, i(100000)},
		{i(100000), 2, i(400000)},
		{i(1000), 8, i(256000)},
		{i(1), 23, i(MinInt24)}, // into the sign bit, no saturation
		{i(0x400000), 1, i(MinInt24)},
		{i(0x600000), 1, i(-0x400000)}, // top bit dropped
		{i(-1), 4, i(-16)},
		{i(1), 24, i(0)},
		{i(-1), 30, i(0)},
	} {
		if got := c.a.Shl(c.count); got != c.out {
			t.Errorf("%v.Shl(%d) = %v, want %v", c.a, c.count, got, c.out)
		}
		if got := c.a.WideShl(c.count); got != c.out {
			t.Errorf("%v.WideShl(%d) = %v, want %v", c.a, c.count, got, c.out)
		}
	}
}

func TestShr(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a     Int24
		count uint8
		out   Int24
	}{
		{i(400000), 0, i(400000)},
		{i(400000), 2, i(100000)},
		{i(256000), 8, i(1000)},
		{i(-8), 1, i(-4)},
		{i(-1), 5, i(-1)}, // sign fill
		{i(MaxInt24), 23, i(0)},
		{i(MinInt24), 23, i(-1)},
		{i(12345), 24, i(0)},
		{i(-12345), 24, i(-1)},
	} {
		if got := c.a.Shr(c.count); got != c.out {
			t.Errorf("%v.Shr(%d) = %v, want %v", c.a, c.count, got, c.out)
		}
		if got := c.a.WideShr(c.count); got != c.out {
			t.Errorf("%v.WideShr(%d) = %v, want %v", c.a, c.count, got, c.out)
		}
	}
}

func TestShiftByWholeLimbs(t *testing.T) {
	// The whole-limb moves must be bit-identical to the bit-serial
	// shifter at their counts.
	for _, a := range interesting() {
		if got, want := a.Shl8(), a.Shl(8); got != want {
			t.Errorf("%v.Shl8() = %v, want %v", a, got, want)
		}
		if got, want := a.Shr8(), a.Shr(8); got != want {
			t.Errorf("%v.Shr8() = %v, want %v", a, got, want)
		}
		if got, want := a.Shl16(), a.Shl(16); got != want {
			t.Errorf("%v.Shl16() = %v, want %v", a, got, want)
		}
		if got, want := a.Shr16(), a.Shr(16); got != want {
			t.Errorf("%v.Shr16() = %v, want %v", a, got, want)
		}
	}
}

func TestCmp(t *testing.T) {
	i := FromInt32
	for _, c := range []struct {
		a, b Int24
		out  int
	}{
		{i(100000), i(100000), 0},
		{i(100000), i(100001), -1},
		{i(100001), i(100000), 1},
		{i(0), i(0), 0},
		{i(-1), i(0), -1},
		{i(MinInt24), i(MaxInt24), -1},
		{i(MaxInt24), i(MinInt24), 1},
		{i(MinInt24), i(MinInt24), 0},
	} {
		if got := c.a.Cmp(c.b); got != c.out {
			t.Errorf("%v.Cmp(%v) = %d, want %d", c.a, c.b, got, c.out)
		}
		if got := c.a.WideCmp(c.b); got != c.out {
			t.Errorf("%v.WideCmp(%v) = %d, want %d", c.a, c.b, got, c.out)
		}
	}
	// The ordering has to agree with the widened values everywhere.
	vals := interesting()
	for _, a := range vals {
		for _, b := range vals {
			want := 0
			if a.Int32() < b.Int32() {
				want = -1
			} else if a.Int32() > b.Int32() {
				want = 1
			}
			if got := a.Cmp(b); got != want {
				t.Fatalf("%v.Cmp(%v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestString(t *testing.T) {
	for _, c := range []struct {
		in  int32
		out string
	}{
		{0, "0"},
		{1234, "1234"},
		{-1234, "-1234"},
		{MaxInt24, "8388607"},
		{MinInt24, "-8388608"},
	} {
		if got := FromInt32(c.in).String(); got != c.out {
			t.Errorf("FromInt32(%d).String() = %q, want %q", c.in, got, c.out)
		}
	}
}
