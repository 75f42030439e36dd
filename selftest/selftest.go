// Package selftest is the arithmetic self-test suite run against a
// live int24 build, on target hardware or on a host. Every group
// checks the backend selected at build time alongside the portable
// Wide* mirror, reporting through a line oriented text protocol that
// a tethered monitor can follow, and the run stops at the first
// failure.
package selftest

import (
	"fmt"
	"io"
	"runtime"

	"github.com/pfcm/int24"
)

// Reporter receives the progress of a test run.
type Reporter interface {
	// Print emits free-form text.
	Print(text string)
	// Begin marks the start of a named test group.
	Begin(name string)
	// Assert records the outcome of one check, identified by its
	// source line. A non-nil error stops the run.
	Assert(line int, ok bool) error
}

// LineWriter is a Reporter that writes the wire protocol used over a
// serial link: "Begin: <name>\n" per group, then "line <n>: Ok\n" or
// "line <n>: FAILED\n" per check.
type LineWriter struct {
	W io.Writer
}

func (l LineWriter) Print(text string) {
	io.WriteString(l.W, text)
}

func (l LineWriter) Begin(name string) {
	fmt.Fprintf(l.W, "Begin: %s\n", name)
}

func (l LineWriter) Assert(line int, ok bool) error {
	if ok {
		fmt.Fprintf(l.W, "line %d: Ok\n", line)
		return nil
	}
	fmt.Fprintf(l.W, "line %d: FAILED\n", line)
	return fmt.Errorf("selftest: check at line %d failed", line)
}

// Run executes the whole suite against r, stopping at the first
// failed check and returning its error.
func Run(r Reporter) error {
	c := &checker{r: r}
	r.Print("\n\nBegin tests\n")
	for _, group := range []func(){
		c.convI16, c.convI32, c.add, c.sub, c.mul, c.div,
		c.shl8div, c.neg, c.abs, c.shl, c.shr, c.cmp,
	} {
		group()
		if c.err != nil {
			return c.err
		}
	}
	r.Print("Done!\n")
	return nil
}

type checker struct {
	r   Reporter
	err error
}

// check reports ok against the calling source line. Once a check has
// failed the rest are skipped.
func (c *checker) check(ok bool) {
	if c.err != nil {
		return
	}
	_, _, line, _ := runtime.Caller(1)
	c.err = c.r.Assert(line, ok)
}

func (c *checker) convI16() {
	c.r.Begin("conv_i16")

	c.check(int24.FromInt16(0x1234).Int16() == 0x1234)
	c.check(int24.FromInt16(-0x1234).Int16() == -0x1234)
	c.check(int24.FromInt32(0x123456).Int16() == 0x7fff)
	c.check(int24.FromInt32(-0x123456).Int16() == -0x8000)

	// Walk a set bit up through every position past the 16 bit range.
	for a := uint32(0x0000_8000); ; a <<= 1 {
		c.check(int24.FromInt32(int32(a)).Int16() == 0x7fff)
		if a == 0x4000_0000 {
			break
		}
	}
	for a := uint32(0xffff_8000); ; a <<= 1 {
		c.check(int24.FromInt32(int32(a)).Int16() == -0x8000)
		if a == 0x8000_0000 {
			break
		}
	}
}

func (c *checker) convI32() {
	c.r.Begin("conv_i32")

	c.check(int24.FromInt32(0x123456).Int32() == 0x123456)
	c.check(int24.FromInt32(-0x123456).Int32() == -0x123456)
	c.check(int24.FromInt32(0x12345678).Int32() == int24.MaxInt24)
	c.check(int24.FromInt32(-0x12345678).Int32() == int24.MinInt24)

	for a := uint32(0x0080_0000); ; a <<= 1 {
		c.check(int24.FromInt32(int32(a)).Int32() == int24.MaxInt24)
		if a == 0x4000_0000 {
			break
		}
	}
	for a := uint32(0xff80_0000); ; a <<= 1 {
		c.check(int24.FromInt32(int32(a)).Int32() == int24.MinInt24)
		if a == 0x8000_0000 {
			break
		}
	}
}

func (c *checker) add() {
	c.r.Begin("add")
	for _, v := range []struct{ a, b, out int32 }{
		{1000, 1010, 2010},
		{1000, -1010, -10},
		{-1000, 1010, 10},
		{0x7ffffe, 2, 0x7fffff},
		{-0x7fffff, -2, -0x800000},
	} {
		a, b, out := int24.FromInt32(v.a), int24.FromInt32(v.b), int24.FromInt32(v.out)
		c.check(a.Add(b) == out)
		c.check(a.WideAdd(b) == out)
	}
}

func (c *checker) sub() {
	c.r.Begin("sub")
	for _, v := range []struct{ a, b, out int32 }{
		{1000, 1010, -10},
		{1000, -1010, 2010},
		{-1000, 1010, -2010},
		{-0x7fffff, 2, -0x800000},
		{0x7ffffe, -2, 0x7fffff},
	} {
		a, b, out := int24.FromInt32(v.a), int24.FromInt32(v.b), int24.FromInt32(v.out)
		c.check(a.Sub(b) == out)
		c.check(a.WideSub(b) == out)
	}
}

func (c *checker) mul() {
	c.r.Begin("mul")
	for _, v := range []struct{ a, b, out int32 }{
		{1000, 1010, 1010000},
		{1000, -1010, -1010000},
		{-1000, 1010, -1010000},
		{0x7f0000, 2, 0x7fffff},
		{-0x80ffff, 2, -0x800000},
	} {
		a, b, out := int24.FromInt32(v.a), int24.FromInt32(v.b), int24.FromInt32(v.out)
		c.check(a.Mul(b) == out)
		c.check(a.WideMul(b) == out)
	}
}

func (c *checker) div() {
	c.r.Begin("div")
	for _, v := range []struct{ a, b, out int32 }{
		{100000, 1010, 99},
		{100000, -1010, -99},
		{-100000, 1010, -99},
		{-0x800000, -1, 0x7fffff},
	} {
		a, b, out := int24.FromInt32(v.a), int24.FromInt32(v.b), int24.FromInt32(v.out)
		c.check(a.Div(b) == out)
		c.check(a.WideDiv(b) == out)
	}
}

func (c *checker) shl8div() {
	c.r.Begin("shl8div")
	for _, v := range []struct{ a, b, out int32 }{
		{100000, 1010, 25346},
		{100000, -1010, -25346},
		{-100000, 1010, -25346},
		{1000000, 2, 0x7fffff},
	} {
		a, b, out := int24.FromInt32(v.a), int24.FromInt32(v.b), int24.FromInt32(v.out)
		c.check(a.Shl8Div(b) == out)
		c.check(a.WideShl8Div(b) == out)
	}
}

func (c *checker) neg() {
	c.r.Begin("neg")
	for _, v := range []struct{ a, out int32 }{
		{100000, -100000},
		{-100000, 100000},
		{0x7fffff, -0x7fffff},
		{-0x7fffff, 0x7fffff},
		{-0x800000, 0x7fffff}, // saturated
	} {
		a, out := int24.FromInt32(v.a), int24.FromInt32(v.out)
		c.check(a.Neg() == out)
		c.check(a.WideNeg() == out)
	}
}

func (c *checker) abs() {
	c.r.Begin("abs")
	for _, v := range []struct{ a, out int32 }{
		{100000, 100000},
		{-100000, 100000},
		{0x7fffff, 0x7fffff},
		{-0x7fffff, 0x7fffff},
		{-0x800000, 0x7fffff}, // saturated
	} {
		a, out := int24.FromInt32(v.a), int24.FromInt32(v.out)
		c.check(a.Abs() == out)
		c.check(a.WideAbs() == out)
	}
}

func (c *checker) shl() {
	c.r.Begin("shl")

	a := int24.FromInt32(100000)
	c.check(a.Shl(2) == int24.FromInt32(400000))
	c.check(a.WideShl(2) == int24.FromInt32(400000))

	a = int24.FromInt32(1000)
	c.check(a.Shl8() == int24.FromInt32(256000))
	c.check(a.Shl8() == a.Shl(8))
	c.check(a.Shl16() == a.Shl(16))
}

func (c *checker) shr() {
	c.r.Begin("shr")

	a := int24.FromInt32(400000)
	c.check(a.Shr(2) == int24.FromInt32(100000))
	c.check(a.WideShr(2) == int24.FromInt32(100000))

	a = int24.FromInt32(256000)
	c.check(a.Shr8() == int24.FromInt32(1000))
	c.check(a.Shr8() == a.Shr(8))
	c.check(a.Shr16() == a.Shr(16))
}

func (c *checker) cmp() {
	c.r.Begin("cmp")

	a, b := int24.FromInt32(100000), int24.FromInt32(100000)
	c.check(a == b)
	c.check(a.Cmp(b) == 0)
	c.check(a.WideCmp(b) == 0)

	b = int24.FromInt32(100001)
	c.check(a != b)
	c.check(a.Cmp(b) < 0)
	c.check(b.Cmp(a) > 0)
	c.check(a.WideCmp(b) < 0)
}
