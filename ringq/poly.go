package ringq

import (
	"github.com/consensys/gnark/frontend"
)

// Polynomial gadgets over coefficient sequences. A sequence of length n+1
// represents a degree-n polynomial; the arithmetic gadgets in this file are
// endianness agnostic as long as both operands use the same convention (the
// convolution of two reversed sequences is the reversed convolution). The
// statement circuits declare their convention per gadget.
//
// None of these gadgets constrains coefficient magnitudes: callers must
// ensure the native field is large enough that the expected coefficient
// values never wrap around. The circuits in this repository pair them with
// the range gadgets for that reason.

// convolutionWindow returns the inclusive range of j such that both a[j] and
// b[i-j] exist for output index i, given deg(a) = n1 and deg(b) = n2. The
// window is asymmetric around the midpoint; shrinking or widening it by one
// silently under- or over-counts terms, so it is shared by every gadget that
// accumulates products.
func convolutionWindow(i, n1, n2 int) (lo, hi int) {
	lo = 0
	if i > n2 {
		lo = i - n2
	}
	hi = i
	if i > n1 {
		hi = n1
	}
	return lo, hi
}

// Convolve emits the schoolbook product of two coefficient sequences:
// out[i] = sum_j a[j] * b[i-j] over the valid window. The output has length
// len(a) + len(b) - 1. Each output coefficient is accumulated from a zero
// accumulator with multiply-add gates.
func (c *Chip) Convolve(a, b []frontend.Variable) []frontend.Variable {
	if len(a) == 0 || len(b) == 0 {
		panic("convolution operands must not be empty")
	}
	n1 := len(a) - 1
	n2 := len(b) - 1

	out := make([]frontend.Variable, n1+n2+1)
	for i := range out {
		acc := frontend.Variable(0)
		lo, hi := convolutionWindow(i, n1, n2)
		for j := lo; j <= hi; j++ {
			acc = c.api.MulAcc(acc, a[j], b[i-j])
		}
		out[i] = acc
	}

	return out
}

// AddPolys emits the coefficient-wise sum of two sequences of equal length.
func (c *Chip) AddPolys(a, b []frontend.Variable) []frontend.Variable {
	if len(a) != len(b) {
		panic("added coefficient sequences must have equal length")
	}
	out := make([]frontend.Variable, len(a))
	for i := range a {
		out[i] = c.api.Add(a[i], b[i])
	}
	return out
}

// ScalarMul emits the product of every coefficient with the tracked scalar k.
func (c *Chip) ScalarMul(a []frontend.Variable, k frontend.Variable) []frontend.Variable {
	out := make([]frontend.Variable, len(a))
	for i := range a {
		out[i] = c.api.Mul(a[i], k)
	}
	return out
}

// AssertDivisionIdentity constrains quotient * divisor + remainder to equal
// dividend coefficient-wise. All four sequences are big-endian (leading
// coefficient first) and fixed-length: the quotient is front-padded to
// len(dividend) - len(divisor) + 1 and the remainder to len(dividend), as
// produced by PadFront. The quotient and remainder typically come from the
// untrusted DivEuclid oracle; this assertion is what gives them their
// proof-backed guarantee.
func (c *Chip) AssertDivisionIdentity(dividend, divisor, quotient, remainder []frontend.Variable) {
	if len(divisor) == 0 || len(divisor) > len(dividend) {
		panic("divisor length must be in [1, len(dividend)]")
	}
	if len(quotient) != len(dividend)-len(divisor)+1 {
		panic("quotient length must be len(dividend) - len(divisor) + 1")
	}
	if len(remainder) != len(dividend) {
		panic("remainder must be padded to the dividend length")
	}

	product := c.Convolve(quotient, divisor)
	sum := c.AddPolys(product, remainder)
	for i := range sum {
		c.api.AssertIsEqual(sum[i], dividend[i])
	}
}
