package types

import (
	"encoding/json"
	"io"
	"os"
)

// CircuitInputRaw is the on-disk (and over-the-wire) encoding of a statement
// circuit's raw integer inputs. Each statement uses a subset of the fields;
// coefficient sequences are fixed-length per the declared polynomial degree
// and the endianness is the one the target circuit documents.
type CircuitInputRaw struct {
	// A and B are polynomial coefficients, little endian (first element is
	// the constant term), used by the mul, add, scalar-mul and distribution
	// circuits.
	A []int64 `json:"a,omitempty"`
	B []int64 `json:"b,omitempty"`

	// K is the scalar for the scalar multiplication circuit.
	K int64 `json:"k,omitempty"`

	// Poly holds the coefficients reduced by the reduction circuit.
	Poly []int64 `json:"poly,omitempty"`

	// Dividend and Divisor are big endian (leading coefficient first, last
	// element is the constant term), consumed by the division circuit.
	Dividend []int64 `json:"dividend,omitempty"`
	Divisor  []int64 `json:"divisor,omitempty"`
}

func ReadCircuitInput(path string) CircuitInputRaw {
	jsonFile, err := os.Open(path)
	if err != nil {
		panic(err)
	}

	defer jsonFile.Close()
	rawBytes, _ := io.ReadAll(jsonFile)

	var raw CircuitInputRaw
	err = json.Unmarshal(rawBytes, &raw)
	if err != nil {
		panic(err)
	}

	return raw
}

func ReadCircuitInputFromRequest(data []byte) (CircuitInputRaw, error) {
	var raw CircuitInputRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return CircuitInputRaw{}, err
	}
	return raw, nil
}
