//go:build !avr && !int24_limb

package int24

// The portable backend: the named operations bind straight to the
// Wide* implementations.

func satAdd(a, b Int24) Int24     { return a.WideAdd(b) }
func satSub(a, b Int24) Int24     { return a.WideSub(b) }
func satMul(a, b Int24) Int24     { return a.WideMul(b) }
func satDiv(a, b Int24) Int24     { return a.WideDiv(b) }
func satShl8Div(a, b Int24) Int24 { return a.WideShl8Div(b) }
func satNeg(a Int24) Int24        { return a.WideNeg() }
func satAbs(a Int24) Int24        { return a.WideAbs() }
func satCmp(a, b Int24) int       { return a.WideCmp(b) }

func satShl(a Int24, count uint8) Int24 { return a.WideShl(count) }
func satShr(a Int24, count uint8) Int24 { return a.WideShr(count) }
