package ringq

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Witness-side value assignment. Raw integer coefficients are folded into
// [0, Q-1] and turned into frontend variables in input order; no range or
// distribution validation happens here. Shape violations are reported as
// errors, which abort assignment construction.

// FoldSigned maps a signed integer into the ring: negative values become
// their additive inverse modulo Q, so -1 folds to Q-1.
func (p Params) FoldSigned(x int64) uint64 {
	q := int64(p.Q)
	r := x % q
	if r < 0 {
		r += q
	}
	return uint64(r)
}

// AssignSigned folds a signed coefficient sequence into the ring and returns
// one variable per coefficient, in input order. The sequence must have
// exactly the expected length.
func (p Params) AssignSigned(coeffs []int64, length int) ([]frontend.Variable, error) {
	if len(coeffs) != length {
		return nil, fmt.Errorf("expected %d coefficients, got %d", length, len(coeffs))
	}
	out := make([]frontend.Variable, len(coeffs))
	for i, x := range coeffs {
		out[i] = p.FoldSigned(x)
	}
	return out, nil
}

// FoldSignedAll folds a signed coefficient sequence without assigning it,
// for out-of-circuit reference computations.
func (p Params) FoldSignedAll(coeffs []int64) []uint64 {
	out := make([]uint64, len(coeffs))
	for i, x := range coeffs {
		out[i] = p.FoldSigned(x)
	}
	return out
}
