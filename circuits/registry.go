package circuits

import (
	"fmt"
	"sort"

	"github.com/consensys/gnark/frontend"
	"github.com/zklattice/rlwe-gadgets/ringq"
	"github.com/zklattice/rlwe-gadgets/types"
)

// The statement registry maps the circuit names used by the CLI and the web
// API to shape and assignment constructors. The same entry serves key
// generation, proving and testing.
type statement struct {
	shape  func(p ringq.Params) frontend.Circuit
	assign func(p ringq.Params, input types.CircuitInputRaw) (frontend.Circuit, error)
}

var statements = map[string]statement{
	"noise-bound": {
		shape: func(p ringq.Params) frontend.Circuit { return NewNoiseBoundCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewNoiseBoundAssignment(p, in.A)
		},
	},
	"ternary": {
		shape: func(p ringq.Params) frontend.Circuit { return NewTernaryCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewTernaryAssignment(p, in.A)
		},
	},
	"poly-mul": {
		shape: func(p ringq.Params) frontend.Circuit { return NewPolyMulCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewPolyMulAssignment(p, in.A, in.B)
		},
	},
	"poly-add": {
		shape: func(p ringq.Params) frontend.Circuit { return NewPolyAddCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewPolyAddAssignment(p, in.A, in.B)
		},
	},
	"poly-scalar-mul": {
		shape: func(p ringq.Params) frontend.Circuit { return NewPolyScalarMulCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewPolyScalarMulAssignment(p, in.A, in.K)
		},
	},
	"poly-reduce": {
		shape: func(p ringq.Params) frontend.Circuit { return NewPolyReduceCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewPolyReduceAssignment(p, in.Poly)
		},
	},
	"poly-divide": {
		shape: func(p ringq.Params) frontend.Circuit { return NewPolyDivideCircuit(p) },
		assign: func(p ringq.Params, in types.CircuitInputRaw) (frontend.Circuit, error) {
			return NewPolyDivideAssignment(p, in.Dividend, in.Divisor)
		},
	},
}

// Names lists the registered statement circuits, sorted.
func Names() []string {
	names := make([]string, 0, len(statements))
	for name := range statements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCircuit returns the blank shape of the named statement.
func NewCircuit(name string, p ringq.Params) (frontend.Circuit, error) {
	s, ok := statements[name]
	if !ok {
		return nil, fmt.Errorf("unknown statement %q, expected one of %v", name, Names())
	}
	return s.shape(p), nil
}

// NewAssignment builds the witness of the named statement from raw input.
func NewAssignment(name string, p ringq.Params, input types.CircuitInputRaw) (frontend.Circuit, error) {
	s, ok := statements[name]
	if !ok {
		return nil, fmt.Errorf("unknown statement %q, expected one of %v", name, Names())
	}
	return s.assign(p, input)
}
