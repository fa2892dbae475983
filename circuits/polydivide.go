package circuits

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
)

// PolyDivideCircuit proves that dividing a secret degree-N polynomial by the
// fixed cyclotomic divisor x^M + 1 yields the revealed remainder. The
// quotient and remainder are witnessed out of circuit by the DivEuclid
// oracle; neither is trusted: the circuit asserts the division identity
//
//	quotient * divisor + remainder = dividend
//
// coefficient-wise, which pins both to the unique exact-division result.
//
// All sequences are big endian (leading coefficient first, constant term
// last). The quotient is front-padded to N-M+1 coefficients and the
// remainder to N+1, preserving the identity under the fixed lengths.
type PolyDivideCircuit struct {
	Rem []frontend.Variable `gnark:",public"`

	Dividend []frontend.Variable
	Divisor  []frontend.Variable
	Quotient []frontend.Variable

	Params ringq.Params `gnark:"-"`
}

func (c *PolyDivideCircuit) Define(api frontend.API) error {
	if len(c.Dividend) != c.Params.N+1 {
		return fmt.Errorf("expected %d dividend coefficients, got %d", c.Params.N+1, len(c.Dividend))
	}
	if len(c.Divisor) != c.Params.M+1 {
		return fmt.Errorf("expected %d divisor coefficients, got %d", c.Params.M+1, len(c.Divisor))
	}
	if len(c.Quotient) != c.Params.N-c.Params.M+1 {
		return fmt.Errorf("expected %d quotient coefficients, got %d", c.Params.N-c.Params.M+1, len(c.Quotient))
	}
	if len(c.Rem) != c.Params.N+1 {
		return fmt.Errorf("expected %d remainder coefficients, got %d", c.Params.N+1, len(c.Rem))
	}

	chip := ringq.New(api, c.Params)
	chip.AssertDivisionIdentity(c.Dividend, c.Divisor, c.Quotient, c.Rem)

	return nil
}

func NewPolyDivideCircuit(p ringq.Params) *PolyDivideCircuit {
	return &PolyDivideCircuit{
		Rem:      make([]frontend.Variable, p.N+1),
		Dividend: make([]frontend.Variable, p.N+1),
		Divisor:  make([]frontend.Variable, p.M+1),
		Quotient: make([]frontend.Variable, p.N-p.M+1),
		Params:   p,
	}
}

// NewPolyDivideAssignment runs the long-division oracle, pads its outputs to
// the circuit's fixed shapes, and pre-checks the division identity over the
// integers before building the witness. Signed coefficients are assigned
// directly; the native field handles the folding.
func NewPolyDivideAssignment(p ringq.Params, dividend, divisor []int64) (*PolyDivideCircuit, error) {
	if len(dividend) != p.N+1 {
		return nil, fmt.Errorf("expected %d dividend coefficients, got %d", p.N+1, len(dividend))
	}
	if len(divisor) != p.M+1 {
		return nil, fmt.Errorf("expected %d divisor coefficients, got %d", p.M+1, len(divisor))
	}

	quotient, remainder, err := ringq.DivEuclid(dividend, divisor)
	if err != nil {
		return nil, err
	}
	quotient, err = ringq.PadFront(quotient, p.N-p.M+1)
	if err != nil {
		return nil, fmt.Errorf("quotient: %w", err)
	}
	remainder, err = ringq.PadFront(remainder, p.N+1)
	if err != nil {
		return nil, fmt.Errorf("remainder: %w", err)
	}

	if err := checkDivisionIdentity(dividend, divisor, quotient, remainder); err != nil {
		return nil, err
	}

	return &PolyDivideCircuit{
		Rem:      toVariables(remainder),
		Dividend: toVariables(dividend),
		Divisor:  toVariables(divisor),
		Quotient: toVariables(quotient),
		Params:   p,
	}, nil
}

// checkDivisionIdentity mirrors the in-circuit constraint over the plain
// integers, so a bad oracle result fails before key or proof generation.
func checkDivisionIdentity(dividend, divisor, quotient, remainder []int64) error {
	product := make([]*big.Int, len(dividend))
	for i := range product {
		product[i] = new(big.Int)
	}
	for i, q := range quotient {
		for j, d := range divisor {
			term := new(big.Int).Mul(big.NewInt(q), big.NewInt(d))
			product[i+j].Add(product[i+j], term)
		}
	}
	for i := range dividend {
		sum := new(big.Int).Add(product[i], big.NewInt(remainder[i]))
		if sum.Cmp(big.NewInt(dividend[i])) != 0 {
			return fmt.Errorf("division identity fails at coefficient %d: %s != %d",
				i, sum.String(), dividend[i])
		}
	}
	return nil
}

func toVariables(coeffs []int64) []frontend.Variable {
	out := make([]frontend.Variable, len(coeffs))
	for i, v := range coeffs {
		out[i] = v
	}
	return out
}
