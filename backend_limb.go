//go:build avr || int24_limb

package int24

// The limb backend: for targets where byte arithmetic is all there is,
// and for exercising limb.go on a host with "-tags int24_limb".

func satAdd(a, b Int24) Int24     { return limbAdd(a, b) }
func satSub(a, b Int24) Int24     { return limbSub(a, b) }
func satMul(a, b Int24) Int24     { return limbMul(a, b) }
func satDiv(a, b Int24) Int24     { return limbDiv(a, b) }
func satShl8Div(a, b Int24) Int24 { return limbShl8Div(a, b) }
func satNeg(a Int24) Int24        { return limbNeg(a) }
func satAbs(a Int24) Int24        { return limbAbs(a) }
func satCmp(a, b Int24) int       { return limbCmp(a, b) }

func satShl(a Int24, count uint8) Int24 { return limbShl(a, count) }
func satShr(a Int24, count uint8) Int24 { return limbShr(a, count) }
