package main

import "github.com/pfcm/int24"

// noise is a 24 bit Galois LFSR with taps at 24, 23, 22 and 17, which
// gives it a full period: it visits every nonzero pattern once before
// repeating. Deterministic, so any failing operand pair comes back on
// the next run.
type noise struct {
	state uint32
	n     uint32
}

const noiseTaps uint32 = 0xe10000

func newNoise(seed uint32) *noise {
	s := seed & 0xffffff
	if s == 0 {
		s = 0xffffff
	}
	return &noise{state: s}
}

// next returns the next operand. The LFSR never produces zero and
// takes a long time to wander near the extremes, so every 64th draw
// comes from the short list of values saturation actually cares
// about.
func (l *noise) next() int24.Int24 {
	l.n++
	if l.n%64 == 0 {
		return edges[(l.n/64)%uint32(len(edges))]
	}
	fb := l.state & 1
	l.state >>= 1
	if fb == 1 {
		l.state ^= noiseTaps
	}
	return int24.FromLEBytes([3]byte{uint8(l.state), uint8(l.state >> 8), uint8(l.state >> 16)})
}

var edges = []int24.Int24{
	int24.FromInt32(0),
	int24.FromInt32(1),
	int24.FromInt32(-1),
	int24.FromInt32(2),
	int24.FromInt32(-2),
	int24.FromInt32(int24.MaxInt24),
	int24.FromInt32(int24.MinInt24),
	int24.FromInt32(int24.MaxInt24 - 1),
	int24.FromInt32(int24.MinInt24 + 1),
}
