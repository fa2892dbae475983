package ringq

import (
	"errors"
	"testing"
)

func assertCoeffsEqual(t *testing.T, got, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDivEuclid(t *testing.T) {
	// (x^4 + 1) / (x^2 + 1) = x^2 - 1 with remainder 2.
	quotient, remainder, err := DivEuclid([]int64{1, 0, 0, 0, 1}, []int64{1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	assertCoeffsEqual(t, quotient, []int64{1, 0, -1})
	assertCoeffsEqual(t, remainder, []int64{2})
}

func TestDivEuclidIdempotent(t *testing.T) {
	// Re-dividing a remainder yields quotient zero and the remainder
	// unchanged.
	_, remainder, err := DivEuclid([]int64{1, 0, 0, 0, 1}, []int64{1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}

	quotient, again, err := DivEuclid(remainder, []int64{1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	assertCoeffsEqual(t, quotient, nil)
	assertCoeffsEqual(t, again, remainder)
}

func TestDivEuclidExact(t *testing.T) {
	// (x^2 + 2x + 1) / (x + 1) = x + 1, no remainder.
	quotient, remainder, err := DivEuclid([]int64{1, 2, 1}, []int64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	assertCoeffsEqual(t, quotient, []int64{1, 1})
	assertCoeffsEqual(t, remainder, nil)
}

func TestDivEuclidZeroDivisor(t *testing.T) {
	if _, _, err := DivEuclid([]int64{1, 2, 3}, nil); !errors.Is(err, ErrZeroDivisor) {
		t.Fatalf("expected ErrZeroDivisor for an empty divisor, got %v", err)
	}
	if _, _, err := DivEuclid([]int64{1, 2, 3}, []int64{0, 0}); !errors.Is(err, ErrZeroDivisor) {
		t.Fatalf("expected ErrZeroDivisor for an all-zero divisor, got %v", err)
	}
}

func TestPadFront(t *testing.T) {
	padded, err := PadFront([]int64{2}, 5)
	if err != nil {
		t.Fatal(err)
	}
	assertCoeffsEqual(t, padded, []int64{0, 0, 0, 0, 2})

	if _, err := PadFront([]int64{1, 2, 3}, 2); err == nil {
		t.Fatal("expected an error when the sequence does not fit")
	}
}
