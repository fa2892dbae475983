package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// PolyMulCircuit proves that the schoolbook product of two secret degree-N
// polynomials equals the revealed degree-2N polynomial. Coefficients are
// little endian; the full 2N+1 product coefficients are revealed, in
// ascending-power order.
//
// The inputs are assumed small enough that no product coefficient wraps the
// native field; callers needing that guarantee combine this circuit with the
// noise-bound check.
type PolyMulCircuit struct {
	Prod []frontend.Variable `gnark:",public"`

	A []frontend.Variable
	B []frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *PolyMulCircuit) Define(api frontend.API) error {
	if len(c.A) != c.Params.N+1 || len(c.B) != c.Params.N+1 {
		return fmt.Errorf("operands must both have %d coefficients, got %d and %d",
			c.Params.N+1, len(c.A), len(c.B))
	}

	chip := ringq.New(api, c.Params)
	prod := chip.Convolve(c.A, c.B)

	var outputs ringq.Outputs
	outputs.MakePublic(prod...)
	return outputs.Bind(api, c.Prod)
}

func NewPolyMulCircuit(p ringq.Params) *PolyMulCircuit {
	return &PolyMulCircuit{
		Prod:   make([]frontend.Variable, 2*p.N+1),
		A:      make([]frontend.Variable, p.N+1),
		B:      make([]frontend.Variable, p.N+1),
		Params: p,
	}
}

// NewPolyMulAssignment folds the operands, computes the expected product
// through the cross-checked reference oracle, and uses it as the public
// assignment. The circuit re-derives the product in-circuit, so a tampered
// public value makes the constraint system unsatisfiable.
func NewPolyMulAssignment(p ringq.Params, a, b []int64) (*PolyMulCircuit, error) {
	aVars, err := p.AssignSigned(a, p.N+1)
	if err != nil {
		return nil, fmt.Errorf("operand a: %w", err)
	}
	bVars, err := p.AssignSigned(b, p.N+1)
	if err != nil {
		return nil, fmt.Errorf("operand b: %w", err)
	}

	expected, err := ringq.CrossCheckMul(p.FoldSignedAll(a), p.FoldSignedAll(b))
	if err != nil {
		return nil, err
	}

	prod := make([]frontend.Variable, len(expected))
	for i, v := range expected {
		prod[i] = v
	}

	return &PolyMulCircuit{Prod: prod, A: aVars, B: bVars, Params: p}, nil
}
