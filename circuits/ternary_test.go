package circuits

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

func TestTernaryMembership(t *testing.T) {
	assert := test.NewAssert(t)
	p := ringq.DefaultParams()
	circuit := NewTernaryCircuit(p)

	witness, err := NewTernaryAssignment(p, []int64{0, 1, -1, 1})
	assert.NoError(err)
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))

	// Any other field element is rejected: 2 is adjacent to the set, Q-2 is
	// the folded -2.
	for _, v := range []uint64{2, p.Q - 2, p.B} {
		bad := &TernaryCircuit{
			Coeffs: []frontend.Variable{0, 1, v, 1},
			Params: p,
		}
		assert.Error(test.IsSolved(circuit, bad, ecc.BN254.ScalarField()))
	}
}

func TestTernaryAssignmentPrechecks(t *testing.T) {
	p := ringq.DefaultParams()

	if _, err := NewTernaryAssignment(p, []int64{0, 1, 2, 0}); err == nil {
		t.Fatal("expected the pre-check to reject a non-ternary coefficient")
	}
	if _, err := NewTernaryAssignment(p, []int64{0, 1}); err == nil {
		t.Fatal("expected a shape error for a short sequence")
	}
}
