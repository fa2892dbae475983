package ringq

import (
	"github.com/consensys/gnark/frontend"
)

// AssertInSet constrains v to be one of the given ring constants using the
// vanishing product (v - c_1) * ... * (v - c_k): the field has no zero
// divisors, so the product vanishes iff one factor does. No range check
// primitive is involved; the set is expected to be small (two to four
// elements, e.g. the ternary key distribution {0, 1, Q-1}).
func (c *Chip) AssertInSet(v frontend.Variable, set []uint64) {
	if len(set) == 0 {
		panic("membership set must not be empty")
	}
	product := frontend.Variable(1)
	for _, constant := range set {
		product = c.api.Mul(product, c.api.Sub(v, constant))
	}
	c.api.AssertIsEqual(product, 0)
}

// TernarySet returns the folded ternary key distribution {-1, 0, 1} for the
// chip's ring modulus.
func (c *Chip) TernarySet() []uint64 {
	return []uint64{0, 1, c.params.Q - 1}
}

// AssertAllInSet applies AssertInSet to every coefficient independently.
func (c *Chip) AssertAllInSet(coeffs []frontend.Variable, set []uint64) {
	for _, v := range coeffs {
		c.AssertInSet(v, set)
	}
}
