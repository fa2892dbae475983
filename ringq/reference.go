package ringq

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Reference-oracle cross-check. The arithmetic circuits are double-checked
// at assignment-construction time by recomputing the expected result twice,
// through two independent code paths:
//
//   - over the native scalar field with gnark-crypto's fr arithmetic, which
//     matches the in-circuit gate semantics exactly;
//   - over the plain integers with big.Int, sharing the convolution window
//     with the gadget.
//
// A disagreement signals a gadget construction bug (typically a windowing
// off-by-one) and is fatal: it is reported before any proving work starts
// and never reaches the constraint system. The agreed-upon result becomes
// the circuit's public output assignment, so the reference value and the
// in-circuit value derive from the same source data in one pass.

// ReferenceMul computes the schoolbook product of two folded coefficient
// sequences over the native scalar field.
func ReferenceMul(a, b []uint64) []*big.Int {
	n1 := len(a) - 1
	n2 := len(b) - 1
	out := make([]*big.Int, n1+n2+1)
	for i := range out {
		var acc fr.Element
		lo, hi := convolutionWindow(i, n1, n2)
		for j := lo; j <= hi; j++ {
			var x, y fr.Element
			x.SetUint64(a[j])
			y.SetUint64(b[i-j])
			x.Mul(&x, &y)
			acc.Add(&acc, &x)
		}
		out[i] = acc.BigInt(new(big.Int))
	}
	return out
}

// ReferenceAdd computes the coefficient-wise sum of two folded sequences of
// equal length over the native scalar field.
func ReferenceAdd(a, b []uint64) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		var x, y fr.Element
		x.SetUint64(a[i])
		y.SetUint64(b[i])
		x.Add(&x, &y)
		out[i] = x.BigInt(new(big.Int))
	}
	return out
}

// ReferenceScalarMul computes the product of every coefficient with the
// scalar k over the native scalar field.
func ReferenceScalarMul(a []uint64, k uint64) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		var x, s fr.Element
		x.SetUint64(a[i])
		s.SetUint64(k)
		x.Mul(&x, &s)
		out[i] = x.BigInt(new(big.Int))
	}
	return out
}

func integerMul(a, b []uint64) []*big.Int {
	n1 := len(a) - 1
	n2 := len(b) - 1
	out := make([]*big.Int, n1+n2+1)
	for i := range out {
		acc := new(big.Int)
		lo, hi := convolutionWindow(i, n1, n2)
		for j := lo; j <= hi; j++ {
			term := new(big.Int).Mul(
				new(big.Int).SetUint64(a[j]),
				new(big.Int).SetUint64(b[i-j]),
			)
			acc.Add(acc, term)
		}
		out[i] = acc
	}
	return out
}

func integerAdd(a, b []uint64) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Add(
			new(big.Int).SetUint64(a[i]),
			new(big.Int).SetUint64(b[i]),
		)
	}
	return out
}

func integerScalarMul(a []uint64, k uint64) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Mul(
			new(big.Int).SetUint64(a[i]),
			new(big.Int).SetUint64(k),
		)
	}
	return out
}

// CrossCheckMul computes the expected product twice and returns it when both
// computations agree.
func CrossCheckMul(a, b []uint64) ([]*big.Int, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("multiplication operands must not be empty")
	}
	expected := ReferenceMul(a, b)
	if err := compareReference(expected, integerMul(a, b)); err != nil {
		return nil, fmt.Errorf("polynomial multiplication cross-check: %w", err)
	}
	return expected, nil
}

// CrossCheckAdd computes the expected sum twice and returns it when both
// computations agree.
func CrossCheckAdd(a, b []uint64) ([]*big.Int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("added sequences must have equal length, got %d and %d", len(a), len(b))
	}
	expected := ReferenceAdd(a, b)
	if err := compareReference(expected, integerAdd(a, b)); err != nil {
		return nil, fmt.Errorf("polynomial addition cross-check: %w", err)
	}
	return expected, nil
}

// CrossCheckScalarMul computes the expected scalar multiple twice and
// returns it when both computations agree.
func CrossCheckScalarMul(a []uint64, k uint64) ([]*big.Int, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("scalar multiplication operand must not be empty")
	}
	expected := ReferenceScalarMul(a, k)
	if err := compareReference(expected, integerScalarMul(a, k)); err != nil {
		return nil, fmt.Errorf("polynomial scalar multiplication cross-check: %w", err)
	}
	return expected, nil
}

func compareReference(field, integer []*big.Int) error {
	if len(field) != len(integer) {
		return fmt.Errorf("result lengths disagree: %d vs %d", len(field), len(integer))
	}
	modulus := fr.Modulus()
	for i := range field {
		reduced := new(big.Int).Mod(integer[i], modulus)
		if field[i].Cmp(reduced) != 0 {
			return fmt.Errorf("coefficient %d disagrees: field arithmetic says %s, integer arithmetic says %s",
				i, field[i].String(), reduced.String())
		}
	}
	return nil
}
