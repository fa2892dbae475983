package ringq

import (
	"github.com/consensys/gnark/frontend"
)

// This file implements the noise-bound membership gadget. A coefficient
// sampled from the centered distribution chi over [-B, B] folds into the two
// half-open ranges [0, B] and [Q-B, Q-1] of the ring, so membership is the
// OR of two range checks. B itself belongs to the lower range.

// IsLessThan returns a boolean signal equal to 1 iff v < bound. The chip
// range checks v to MaxBits bits before comparing, so the bounded comparator
// stays sound for any witness value the prover may supply.
func (c *Chip) IsLessThan(v frontend.Variable, bound uint64) frontend.Variable {
	c.rangeCheckerCheck(v, c.params.MaxBits)
	return c.comparator.IsLess(v, bound)
}

// Not negates a boolean signal.
func (c *Chip) Not(b frontend.Variable) frontend.Variable {
	return c.api.Sub(1, b)
}

// IsNoiseBounded returns a boolean signal equal to 1 iff v lies in
// [0, B] or [Q-B, Q-1].
func (c *Chip) IsNoiseBounded(v frontend.Variable) frontend.Variable {
	// Check for the range [0, B].
	inLowRange := c.IsLessThan(v, c.params.B+1)

	// Check for the range [Q-B, Q-1]: v >= Q-B is the negation of
	// v < Q-B, and v < Q holds for every reduced ring element but is
	// constrained explicitly, mirroring the lower range check.
	belowLowerBound := c.IsLessThan(v, c.params.Q-c.params.B)
	aboveLowerBound := c.Not(belowLowerBound)
	belowModulus := c.IsLessThan(v, c.params.Q)
	inHighRange := c.api.And(aboveLowerBound, belowModulus)

	return c.api.Or(inLowRange, inHighRange)
}

// AssertNoiseBounded constrains v to [0, B] ∪ [Q-B, Q-1]. A witness outside
// the folded range makes the constraint system unsatisfiable.
func (c *Chip) AssertNoiseBounded(v frontend.Variable) {
	c.api.AssertIsEqual(c.IsNoiseBounded(v), 1)
}

// AssertAllNoiseBounded applies AssertNoiseBounded to every coefficient
// independently.
func (c *Chip) AssertAllNoiseBounded(coeffs []frontend.Variable) {
	for _, v := range coeffs {
		c.AssertNoiseBounded(v)
	}
}
