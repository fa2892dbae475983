package circuits

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

func noiseWitness(p ringq.Params, v uint64) *NoiseBoundCircuit {
	coeffs := make([]frontend.Variable, p.N+1)
	for i := range coeffs {
		coeffs[i] = v
	}
	return &NoiseBoundCircuit{Coeffs: coeffs, Params: p}
}

func TestNoiseBoundCompile(t *testing.T) {
	// The real builders are Committers, so without the env override the chip
	// selects the commit range checker and its deferred flush. The default
	// parameters collect a handful of 16 bit checks, for which the optimal
	// basewidth settles well below 16; compilation must still succeed.
	t.Setenv("USE_BIT_DECOMPOSITION_RANGE_CHECK", "")
	p := ringq.DefaultParams()

	if _, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, NewNoiseBoundCircuit(p)); err != nil {
		t.Fatalf("compile with the commit range checker: %v", err)
	}
}

func TestNoiseBoundBoundaries(t *testing.T) {
	assert := test.NewAssert(t)
	t.Setenv("USE_BIT_DECOMPOSITION_RANGE_CHECK", "true")
	p := ringq.DefaultParams()
	circuit := NewNoiseBoundCircuit(p)

	// Lower range: B is a member, B+1 is not.
	assert.NoError(test.IsSolved(circuit, noiseWitness(p, 0), ecc.BN254.ScalarField()))
	assert.NoError(test.IsSolved(circuit, noiseWitness(p, p.B), ecc.BN254.ScalarField()))
	assert.Error(test.IsSolved(circuit, noiseWitness(p, p.B+1), ecc.BN254.ScalarField()))

	// Upper range: Q-B is a member, Q-B-1 is not.
	assert.Error(test.IsSolved(circuit, noiseWitness(p, p.Q-p.B-1), ecc.BN254.ScalarField()))
	assert.NoError(test.IsSolved(circuit, noiseWitness(p, p.Q-p.B), ecc.BN254.ScalarField()))
	assert.NoError(test.IsSolved(circuit, noiseWitness(p, p.Q-1), ecc.BN254.ScalarField()))
}

func TestNoiseBoundProver(t *testing.T) {
	assert := test.NewAssert(t)
	t.Setenv("USE_BIT_DECOMPOSITION_RANGE_CHECK", "true")
	p := ringq.DefaultParams()
	circuit := NewNoiseBoundCircuit(p)

	witness, err := NewNoiseBoundAssignment(p, []int64{-30, -1, 0, 30})
	assert.NoError(err)
	assert.ProverSucceeded(circuit, witness, test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16), test.NoSerializationChecks())

	assert.ProverFailed(circuit, noiseWitness(p, p.B+1), test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16), test.NoSerializationChecks())
}

func TestNoiseBoundAssignmentPrechecks(t *testing.T) {
	p := ringq.DefaultParams()

	if _, err := NewNoiseBoundAssignment(p, []int64{0, 0, 0, 31}); err == nil {
		t.Fatal("expected the pre-check to reject a coefficient above the bound")
	}
	if _, err := NewNoiseBoundAssignment(p, []int64{0, 0, 0, -31}); err == nil {
		t.Fatal("expected the pre-check to reject a coefficient below the bound")
	}
	if _, err := NewNoiseBoundAssignment(p, []int64{0, 0, 0}); err == nil {
		t.Fatal("expected a shape error for a short sequence")
	}
}
