package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// PolyScalarMulCircuit proves that multiplying a secret degree-N polynomial
// by a secret scalar yields the revealed polynomial. Coefficients are little
// endian; all N+1 scaled coefficients are revealed.
type PolyScalarMulCircuit struct {
	Prod []frontend.Variable `gnark:",public"`

	A []frontend.Variable
	K frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *PolyScalarMulCircuit) Define(api frontend.API) error {
	if len(c.A) != c.Params.N+1 {
		return fmt.Errorf("expected %d coefficients, got %d", c.Params.N+1, len(c.A))
	}

	chip := ringq.New(api, c.Params)
	prod := chip.ScalarMul(c.A, c.K)

	var outputs ringq.Outputs
	outputs.MakePublic(prod...)
	return outputs.Bind(api, c.Prod)
}

func NewPolyScalarMulCircuit(p ringq.Params) *PolyScalarMulCircuit {
	return &PolyScalarMulCircuit{
		Prod:   make([]frontend.Variable, p.N+1),
		A:      make([]frontend.Variable, p.N+1),
		Params: p,
	}
}

// NewPolyScalarMulAssignment folds the operands and fills the public product
// from the cross-checked reference oracle.
func NewPolyScalarMulAssignment(p ringq.Params, a []int64, k int64) (*PolyScalarMulCircuit, error) {
	aVars, err := p.AssignSigned(a, p.N+1)
	if err != nil {
		return nil, err
	}
	kFolded := p.FoldSigned(k)

	expected, err := ringq.CrossCheckScalarMul(p.FoldSignedAll(a), kFolded)
	if err != nil {
		return nil, err
	}

	prod := make([]frontend.Variable, len(expected))
	for i, v := range expected {
		prod[i] = v
	}

	return &PolyScalarMulCircuit{Prod: prod, A: aVars, K: kFolded, Params: p}, nil
}
