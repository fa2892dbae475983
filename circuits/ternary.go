package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// TernaryCircuit proves that every coefficient of a secret polynomial
// belongs to the ternary key distribution {-1, 0, 1}, folded into
// {0, 1, Q-1}, using the vanishing product gadget. Nothing is revealed.
type TernaryCircuit struct {
	Coeffs []frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *TernaryCircuit) Define(api frontend.API) error {
	if len(c.Coeffs) != c.Params.N+1 {
		return fmt.Errorf("expected %d coefficients, got %d", c.Params.N+1, len(c.Coeffs))
	}

	chip := ringq.New(api, c.Params)
	chip.AssertAllInSet(c.Coeffs, chip.TernarySet())

	return nil
}

func NewTernaryCircuit(p ringq.Params) *TernaryCircuit {
	return &TernaryCircuit{
		Coeffs: make([]frontend.Variable, p.N+1),
		Params: p,
	}
}

// NewTernaryAssignment folds the raw coefficients and pre-checks each one
// against {0, 1, Q-1} before building the witness.
func NewTernaryAssignment(p ringq.Params, coeffs []int64) (*TernaryCircuit, error) {
	for i, v := range p.FoldSignedAll(coeffs) {
		if v != 0 && v != 1 && v != p.Q-1 {
			return nil, fmt.Errorf("coefficient %d folds to %d, not in {0, 1, %d}", i, v, p.Q-1)
		}
	}

	vars, err := p.AssignSigned(coeffs, p.N+1)
	if err != nil {
		return nil, err
	}
	return &TernaryCircuit{Coeffs: vars, Params: p}, nil
}
