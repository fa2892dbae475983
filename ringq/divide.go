package ringq

import (
	"errors"
	"fmt"
)

// Out-of-circuit polynomial long division. This runs over the plain
// integers, not the ring: its results are untrusted witness material that
// the caller assigns to the circuit and pins down with
// AssertDivisionIdentity.

// ErrZeroDivisor is returned when the divisor polynomial is empty or has no
// non-zero coefficient.
var ErrZeroDivisor = errors.New("cannot divide by a zero polynomial")

// DivEuclid divides dividend by divisor over the integers and returns the
// quotient and remainder with leading zeros trimmed. Coefficients are
// big-endian (leading coefficient first, constant term last). The divisor is
// expected to be monic, as the cyclotomic moduli x^M + 1 are; the quotient
// step takes the integer ratio of the leading coefficients.
func DivEuclid(dividend, divisor []int64) (quotient, remainder []int64, err error) {
	if isZeroPoly(divisor) {
		return nil, nil, ErrZeroDivisor
	}

	rest := make([]int64, len(dividend))
	copy(rest, dividend)
	divisorDegree := len(divisor) - 1

	for len(rest) > divisorDegree {
		ratio := rest[0] / divisor[0]
		quotient = append(quotient, ratio)

		// Subtract ratio * divisor from the head of the running dividend and
		// drop the now-zero leading term.
		for i, coeff := range divisor {
			rest[i] -= ratio * coeff
		}
		rest = rest[1:]
	}

	quotient = trimLeadingZeros(quotient)
	remainder = trimLeadingZeros(rest)

	return quotient, remainder, nil
}

// PadFront left-pads a big-endian coefficient sequence with zeros up to the
// given length, so a trimmed oracle output fits the fixed shape the circuit
// expects. It fails if the sequence is already longer than length.
func PadFront(coeffs []int64, length int) ([]int64, error) {
	if len(coeffs) > length {
		return nil, fmt.Errorf("coefficient sequence of length %d does not fit in %d slots", len(coeffs), length)
	}
	padded := make([]int64, length)
	copy(padded[length-len(coeffs):], coeffs)
	return padded, nil
}

func isZeroPoly(coeffs []int64) bool {
	for _, c := range coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

func trimLeadingZeros(coeffs []int64) []int64 {
	for len(coeffs) > 0 && coeffs[0] == 0 {
		coeffs = coeffs[1:]
	}
	return coeffs
}
