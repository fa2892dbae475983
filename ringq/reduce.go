package ringq

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

// Registers the hint functions with the solver.
func init() {
	solver.RegisterHint(DivModHint)
}

// ModReduce reduces a coefficient modulo the chip's scalar modulus T.
// It witnesses a quotient and remainder such that
//
//	v = quotient * T + remainder
//
// then constrains that identity, checks remainder < T, and range checks the
// quotient to the declared bit width. Bounding the quotient bounds v to
// roughly T * 2^MaxBits, far below the native field, so the identity cannot
// wrap around; the assignment layer additionally rejects inputs wider than
// MaxBits before proving.
func (c *Chip) ModReduce(v frontend.Variable) frontend.Variable {
	result, err := c.api.Compiler().NewHint(DivModHint, 2, v, c.params.T)
	if err != nil {
		panic(err)
	}

	quotient := result[0]
	c.rangeCheckerCheck(quotient, c.params.MaxBits)

	remainder := result[1]
	c.api.AssertIsLessOrEqual(remainder, c.params.T-1)

	c.api.AssertIsEqual(v, c.api.Add(c.api.Mul(quotient, c.params.T), remainder))

	return remainder
}

// ModReduceAll reduces every coefficient independently and returns the
// remainder sequence.
func (c *Chip) ModReduceAll(coeffs []frontend.Variable) []frontend.Variable {
	out := make([]frontend.Variable, len(coeffs))
	for i, v := range coeffs {
		out[i] = c.ModReduce(v)
	}
	return out
}

// The hint used to compute ModReduce: it witnesses the quotient and the
// remainder of inputs[0] divided by inputs[1].
func DivModHint(_ *big.Int, inputs []*big.Int, results []*big.Int) error {
	if len(inputs) != 2 {
		panic("DivModHint expects 2 input operands")
	}

	value := inputs[0]
	modulus := inputs[1]
	if modulus.Sign() == 0 {
		panic("DivModHint modulus must be non-zero")
	}

	results[0] = new(big.Int).Div(value, modulus)
	results[1] = new(big.Int).Rem(value, modulus)

	return nil
}
