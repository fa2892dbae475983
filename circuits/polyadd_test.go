package circuits

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

func TestPolyAdd(t *testing.T) {
	assert := test.NewAssert(t)
	p := ringq.DefaultParams()
	circuit := NewPolyAddCircuit(p)

	witness, err := NewPolyAddAssignment(p, []int64{1, 2, 3, 4}, []int64{5, 6, 7, 8})
	assert.NoError(err)
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))

	want := []int64{6, 8, 10, 12}
	for i, v := range witness.Sum {
		if v.(*big.Int).Cmp(big.NewInt(want[i])) != 0 {
			t.Fatalf("sum coefficient %d: expected %d, got %v", i, want[i], v)
		}
	}

	tampered, err := NewPolyAddAssignment(p, []int64{1, 2, 3, 4}, []int64{5, 6, 7, 8})
	assert.NoError(err)
	tampered.Sum[0] = 7
	assert.Error(test.IsSolved(circuit, tampered, ecc.BN254.ScalarField()))
}

func TestPolyAddNegativeCoefficients(t *testing.T) {
	assert := test.NewAssert(t)
	p := ringq.DefaultParams()
	circuit := NewPolyAddCircuit(p)

	// -1 folds to Q-1; the sum is over the native field, so 1 + (-1) folded
	// is Q, not zero. The reference oracle and the circuit must agree on
	// that folding.
	witness, err := NewPolyAddAssignment(p, []int64{1, 0, 0, 0}, []int64{-1, 0, 0, 0})
	assert.NoError(err)
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))

	if witness.Sum[0].(*big.Int).Cmp(big.NewInt(int64(p.Q))) != 0 {
		t.Fatalf("expected folded sum %d, got %v", p.Q, witness.Sum[0])
	}
}

func TestPolyAddShapeErrors(t *testing.T) {
	p := ringq.DefaultParams()
	if _, err := NewPolyAddAssignment(p, []int64{1, 2}, []int64{1, 2, 3, 4}); err == nil {
		t.Fatal("expected a shape error for operand a")
	}
}
