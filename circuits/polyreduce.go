package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// PolyReduceCircuit proves that reducing every coefficient of a secret
// polynomial modulo the scalar modulus T yields the revealed remainders.
// Coefficients are big endian (last element is the constant term), matching
// the division circuit this reduction usually follows; the remainder order
// mirrors the input order.
//
// Input coefficients must fit in the declared range-check width (MaxBits,
// 16 bits with the default parameters); the assignment constructor rejects
// anything wider.
type PolyReduceCircuit struct {
	Rem []frontend.Variable `gnark:",public"`

	Poly []frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *PolyReduceCircuit) Define(api frontend.API) error {
	if len(c.Poly) != c.Params.N+1 {
		return fmt.Errorf("expected %d coefficients, got %d", c.Params.N+1, len(c.Poly))
	}

	chip := ringq.New(api, c.Params)
	rem := chip.ModReduceAll(c.Poly)

	var outputs ringq.Outputs
	outputs.MakePublic(rem...)
	return outputs.Bind(api, c.Rem)
}

func NewPolyReduceCircuit(p ringq.Params) *PolyReduceCircuit {
	return &PolyReduceCircuit{
		Rem:    make([]frontend.Variable, p.N+1),
		Poly:   make([]frontend.Variable, p.N+1),
		Params: p,
	}
}

// NewPolyReduceAssignment validates the input width, computes the expected
// remainders with plain integer arithmetic mirroring the in-circuit
// identity, and uses them as the public assignment.
func NewPolyReduceAssignment(p ringq.Params, poly []int64) (*PolyReduceCircuit, error) {
	if len(poly) != p.N+1 {
		return nil, fmt.Errorf("expected %d coefficients, got %d", p.N+1, len(poly))
	}

	limit := int64(1) << uint(p.MaxBits)
	polyVars := make([]frontend.Variable, len(poly))
	remVars := make([]frontend.Variable, len(poly))
	for i, v := range poly {
		if v < 0 || v >= limit {
			return nil, fmt.Errorf("coefficient %d is %d, outside [0, 2^%d)", i, v, p.MaxBits)
		}
		polyVars[i] = v
		remVars[i] = v % int64(p.T)
	}

	return &PolyReduceCircuit{Rem: remVars, Poly: polyVars, Params: p}, nil
}
