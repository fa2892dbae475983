package circuits

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

func divideParams(t *testing.T) ringq.Params {
	t.Helper()
	p, err := ringq.NewParams(257, 30, 4, 2, 11, 16)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPolyDivide(t *testing.T) {
	assert := test.NewAssert(t)
	p := divideParams(t)
	circuit := NewPolyDivideCircuit(p)

	// (x^4 + 1) = (x^2 - 1)(x^2 + 1) + 2
	witness, err := NewPolyDivideAssignment(p, []int64{1, 0, 0, 0, 1}, []int64{1, 0, 1})
	assert.NoError(err)

	wantQuot := []int64{1, 0, -1}
	for i, v := range witness.Quotient {
		if v.(int64) != wantQuot[i] {
			t.Fatalf("quotient %d: expected %d, got %v", i, wantQuot[i], v)
		}
	}
	wantRem := []int64{0, 0, 0, 0, 2}
	for i, v := range witness.Rem {
		if v.(int64) != wantRem[i] {
			t.Fatalf("remainder %d: expected %d, got %v", i, wantRem[i], v)
		}
	}

	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))

	tampered, err := NewPolyDivideAssignment(p, []int64{1, 0, 0, 0, 1}, []int64{1, 0, 1})
	assert.NoError(err)
	tampered.Rem[p.N] = 3
	assert.Error(test.IsSolved(circuit, tampered, ecc.BN254.ScalarField()))
}

func TestPolyDivideProver(t *testing.T) {
	assert := test.NewAssert(t)
	p := divideParams(t)
	circuit := NewPolyDivideCircuit(p)

	witness, err := NewPolyDivideAssignment(p, []int64{2, 3, -1, 4, 7}, []int64{1, 0, 1})
	assert.NoError(err)
	assert.ProverSucceeded(circuit, witness, test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16), test.NoSerializationChecks())
}

func TestPolyDivideExact(t *testing.T) {
	assert := test.NewAssert(t)
	p := divideParams(t)
	circuit := NewPolyDivideCircuit(p)

	// (x^2 + 2)(x^2 + 1) divides exactly; the remainder is all zeros.
	witness, err := NewPolyDivideAssignment(p, []int64{1, 0, 3, 0, 2}, []int64{1, 0, 1})
	assert.NoError(err)
	for i, v := range witness.Rem {
		if v.(int64) != 0 {
			t.Fatalf("remainder %d: expected 0, got %v", i, v)
		}
	}
	assert.NoError(test.IsSolved(circuit, witness, ecc.BN254.ScalarField()))
}

func TestPolyDivideRejectsBadInput(t *testing.T) {
	p := divideParams(t)

	if _, err := NewPolyDivideAssignment(p, []int64{1, 0, 0, 1}, []int64{1, 0, 1}); err == nil {
		t.Fatal("expected a shape error for a short dividend")
	}
	if _, err := NewPolyDivideAssignment(p, []int64{1, 0, 0, 0, 1}, []int64{1, 1}); err == nil {
		t.Fatal("expected a shape error for a short divisor")
	}
	if _, err := NewPolyDivideAssignment(p, []int64{1, 0, 0, 0, 1}, []int64{0, 0, 0}); err == nil {
		t.Fatal("expected an error for the zero divisor")
	}
}
