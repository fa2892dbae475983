package ringq

import (
	"fmt"
	"math/bits"
)

// Params fixes the public shape of one circuit instantiation. All fields are
// baked into the constraint system at compile time; none of them is secret.
type Params struct {
	// Q is the coefficient modulus of the ring. Signed coefficients are
	// folded into [0, Q-1], so -1 is represented as Q-1.
	Q uint64

	// B bounds the noise distribution: a coefficient sampled from chi must
	// lie in [-B, B], i.e. in [0, B] or [Q-B, Q-1] after folding.
	B uint64

	// N is the degree of the polynomials handled by the arithmetic gadgets.
	// Coefficient sequences have length N+1.
	N int

	// M is the degree of the cyclotomic divisor x^M + 1.
	M int

	// T is the scalar modulus used by the coefficient reduction gadget.
	T uint64

	// MaxBits is the bit width declared to the range checker. Every value
	// that enters a comparison must fit in MaxBits bits, so MaxBits must
	// cover Q. When the commit based range checker is in use this must be a
	// multiple of the basewidth it settles on (see rangechecker.go).
	MaxBits int
}

// NewParams validates a circuit configuration. Invalid configurations are
// caller bugs and must be rejected before any gadget is built: in particular
// B >= Q would make the two folded ranges overlap and the membership check
// vacuous.
func NewParams(q, b uint64, n, m int, t uint64, maxBits int) (Params, error) {
	if q < 2 {
		return Params{}, fmt.Errorf("ring modulus must be at least 2, got %d", q)
	}
	if b >= q {
		return Params{}, fmt.Errorf("noise bound %d must be smaller than the ring modulus %d", b, q)
	}
	if n < 1 {
		return Params{}, fmt.Errorf("polynomial degree must be positive, got %d", n)
	}
	if m < 1 || m > n {
		return Params{}, fmt.Errorf("divisor degree must be in [1, %d], got %d", n, m)
	}
	if t < 2 {
		return Params{}, fmt.Errorf("reduction modulus must be at least 2, got %d", t)
	}
	if maxBits < bits.Len64(q) {
		return Params{}, fmt.Errorf("range check width %d does not cover the ring modulus %d", maxBits, q)
	}
	if maxBits >= 64 {
		return Params{}, fmt.Errorf("range check width must stay below 64 bits, got %d", maxBits)
	}
	return Params{Q: q, B: b, N: n, M: m, T: t, MaxBits: maxBits}, nil
}

// DefaultParams returns the toy BFV-style configuration used throughout the
// tests and the CLI: q = 2^8 + 1, noise bound 30, degree-3 polynomials,
// divisor x^2 + 1, plaintext modulus 11, 16-bit range checks.
func DefaultParams() Params {
	p, err := NewParams(257, 30, 3, 2, 11, 16)
	if err != nil {
		panic(err)
	}
	return p
}
