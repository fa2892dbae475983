package circuits

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

func TestPolyScalarMul(t *testing.T) {
	assert := test.NewAssert(t)
	p := ringq.DefaultParams()
	circuit := NewPolyScalarMulCircuit(p)

	witness, err := NewPolyScalarMulAssignment(p, []int64{1, 2, 3, 4}, 5)
	assert.NoError(err)
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))

	// Every coefficient is scaled, including the leading one.
	want := []int64{5, 10, 15, 20}
	if len(witness.Prod) != p.N+1 {
		t.Fatalf("expected %d scaled coefficients, got %d", p.N+1, len(witness.Prod))
	}
	for i, v := range witness.Prod {
		if v.(*big.Int).Cmp(big.NewInt(want[i])) != 0 {
			t.Fatalf("scaled coefficient %d: expected %d, got %v", i, want[i], v)
		}
	}

	tampered, err := NewPolyScalarMulAssignment(p, []int64{1, 2, 3, 4}, 5)
	assert.NoError(err)
	tampered.Prod[3] = 21
	assert.Error(test.IsSolved(circuit, tampered, ecc.BN254.ScalarField()))
}

func TestPolyScalarMulByZero(t *testing.T) {
	assert := test.NewAssert(t)
	p := ringq.DefaultParams()
	circuit := NewPolyScalarMulCircuit(p)

	witness, err := NewPolyScalarMulAssignment(p, []int64{1, 2, 3, 4}, 0)
	assert.NoError(err)
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}
