package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// PolyAddCircuit proves that the coefficient-wise sum of two secret degree-N
// polynomials equals the revealed polynomial. Coefficients are little
// endian; all N+1 sum coefficients are revealed.
type PolyAddCircuit struct {
	Sum []frontend.Variable `gnark:",public"`

	A []frontend.Variable
	B []frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *PolyAddCircuit) Define(api frontend.API) error {
	if len(c.A) != c.Params.N+1 || len(c.B) != c.Params.N+1 {
		return fmt.Errorf("operands must both have %d coefficients, got %d and %d",
			c.Params.N+1, len(c.A), len(c.B))
	}

	chip := ringq.New(api, c.Params)
	sum := chip.AddPolys(c.A, c.B)

	var outputs ringq.Outputs
	outputs.MakePublic(sum...)
	return outputs.Bind(api, c.Sum)
}

func NewPolyAddCircuit(p ringq.Params) *PolyAddCircuit {
	return &PolyAddCircuit{
		Sum:    make([]frontend.Variable, p.N+1),
		A:      make([]frontend.Variable, p.N+1),
		B:      make([]frontend.Variable, p.N+1),
		Params: p,
	}
}

// NewPolyAddAssignment folds the operands and fills the public sum from the
// cross-checked reference oracle.
func NewPolyAddAssignment(p ringq.Params, a, b []int64) (*PolyAddCircuit, error) {
	aVars, err := p.AssignSigned(a, p.N+1)
	if err != nil {
		return nil, fmt.Errorf("operand a: %w", err)
	}
	bVars, err := p.AssignSigned(b, p.N+1)
	if err != nil {
		return nil, fmt.Errorf("operand b: %w", err)
	}

	expected, err := ringq.CrossCheckAdd(p.FoldSignedAll(a), p.FoldSignedAll(b))
	if err != nil {
		return nil, err
	}

	sum := make([]frontend.Variable, len(expected))
	for i, v := range expected {
		sum[i] = v
	}

	return &PolyAddCircuit{Sum: sum, A: aVars, B: bVars, Params: p}, nil
}
