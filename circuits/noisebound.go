// Package circuits wires the ringq gadgets into provable statements about
// RLWE polynomials. Every circuit comes in two forms built by the same code
// path: a blank shape for compilation and key generation, and an assignment
// carrying witness values. The gadget logic is identical in both; there is
// no mode-conditional behavior.
package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// NoiseBoundCircuit proves that every coefficient of a secret polynomial was
// drawn from the centered error distribution chi over [-B, B]: each folded
// coefficient must lie in [0, B] or [Q-B, Q-1]. Nothing is revealed.
//
// Coefficients are little endian (first element is the constant term),
// though the check is per-coefficient and order never matters here.
type NoiseBoundCircuit struct {
	Coeffs []frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *NoiseBoundCircuit) Define(api frontend.API) error {
	if len(c.Coeffs) != c.Params.N+1 {
		return fmt.Errorf("expected %d coefficients, got %d", c.Params.N+1, len(c.Coeffs))
	}

	chip := ringq.New(api, c.Params)
	chip.AssertAllNoiseBounded(c.Coeffs)

	return nil
}

// NewNoiseBoundCircuit returns the blank circuit shape for the given
// parameters.
func NewNoiseBoundCircuit(p ringq.Params) *NoiseBoundCircuit {
	return &NoiseBoundCircuit{
		Coeffs: make([]frontend.Variable, p.N+1),
		Params: p,
	}
}

// NewNoiseBoundAssignment folds the raw coefficients into the ring and
// builds the witness. It pre-checks the folded values against the same
// ranges the circuit constrains, so an out-of-distribution input fails here
// instead of during proof generation.
func NewNoiseBoundAssignment(p ringq.Params, coeffs []int64) (*NoiseBoundCircuit, error) {
	folded := p.FoldSignedAll(coeffs)
	for i, v := range folded {
		if v > p.B && v < p.Q-p.B {
			return nil, fmt.Errorf("coefficient %d folds to %d, outside [0, %d] and [%d, %d]",
				i, v, p.B, p.Q-p.B, p.Q-1)
		}
	}

	vars, err := p.AssignSigned(coeffs, p.N+1)
	if err != nil {
		return nil, err
	}
	return &NoiseBoundCircuit{Coeffs: vars, Params: p}, nil
}
