package circuits

import (
	"reflect"
	"testing"

	"github.com/zklattice/rlwe-gadgets/ringq"
	"github.com/zklattice/rlwe-gadgets/types"
)

func TestNames(t *testing.T) {
	want := []string{
		"noise-bound",
		"poly-add",
		"poly-divide",
		"poly-mul",
		"poly-reduce",
		"poly-scalar-mul",
		"ternary",
	}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegistryBuildsEveryStatement(t *testing.T) {
	p := ringq.DefaultParams()
	input := types.CircuitInputRaw{
		A:        []int64{1, 2, 3, 4},
		B:        []int64{5, 6, 7, 8},
		K:        5,
		Poly:     []int64{17, 22, 10, 0},
		Dividend: []int64{1, 0, 0, 1},
		Divisor:  []int64{1, 0, 1},
	}
	ternary := input
	ternary.A = []int64{0, 1, -1, 0}
	noise := input
	noise.A = []int64{0, 30, -30, 1}

	for _, name := range Names() {
		in := input
		switch name {
		case "ternary":
			in = ternary
		case "noise-bound":
			in = noise
		}

		circuit, err := NewCircuit(name, p)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if circuit == nil {
			t.Fatalf("%s: nil circuit", name)
		}
		if _, err := NewAssignment(name, p, in); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestRegistryRejectsUnknownStatement(t *testing.T) {
	p := ringq.DefaultParams()
	if _, err := NewCircuit("no-such-statement", p); err == nil {
		t.Fatal("expected an error for an unknown statement")
	}
	if _, err := NewAssignment("no-such-statement", p, types.CircuitInputRaw{}); err == nil {
		t.Fatal("expected an error for an unknown statement")
	}
}
