package ringq

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Outputs accumulates the values a circuit flags for public revelation.
// Flagging is append-only and order-preserving: the first value flagged is
// the first one bound to the circuit's declared public inputs, regardless of
// which gadget flagged it.
type Outputs struct {
	flagged []frontend.Variable
}

// MakePublic flags values for revelation, in the order given.
func (o *Outputs) MakePublic(values ...frontend.Variable) {
	o.flagged = append(o.flagged, values...)
}

// Len returns the number of flagged values.
func (o *Outputs) Len() int {
	return len(o.flagged)
}

// Bind constrains the flagged values, in flag order, to equal the circuit's
// declared public variables. The counts must match exactly: a circuit that
// declares more or fewer public slots than it flags is malformed.
func (o *Outputs) Bind(api frontend.API, public []frontend.Variable) error {
	if len(public) != len(o.flagged) {
		return fmt.Errorf("circuit declares %d public values but flagged %d", len(public), len(o.flagged))
	}
	for i, v := range o.flagged {
		api.AssertIsEqual(v, public[i])
	}
	return nil
}
