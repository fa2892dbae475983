// Package ringq implements constraint gadgets over the coefficient ring
// Z_q used by RLWE-style encryption schemes, within gnark. The ring modulus
// q is a small public constant, far below the native field modulus, so ring
// values are plain native field elements: no emulated arithmetic is needed,
// only range and membership constraints that pin every value to [0, q-1]
// and to the algebraic relation being proven.
package ringq

import (
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/cmp"
	"github.com/consensys/gnark/std/rangecheck"
)

type RangeCheckerType int

const (
	NATIVE_RANGE_CHECKER RangeCheckerType = iota
	COMMIT_RANGE_CHECKER
	BIT_DECOMP_RANGE_CHECKER
)

// The chip used to emit ring constraints against one build context. A chip
// is exclusively owned by the circuit build that created it; independent
// builds get independent chips.
type Chip struct {
	api    frontend.API
	params Params

	// comparator produces boolean less-than signals for values that have
	// been range checked to params.MaxBits bits.
	comparator *cmp.BoundedComparator

	rangeChecker     frontend.Rangechecker
	rangeCheckerType RangeCheckerType

	// These fields are used if rangeCheckerType == COMMIT_RANGE_CHECKER.
	rangeCheckCollected []checkedVariable
	collectedMutex      sync.Mutex
}

var (
	ringChips = make(map[frontend.API]*Chip)
	mutex     sync.Mutex
)

// New creates the ring chip for the given build context, or returns the one
// already bound to it. A build context carries exactly one parameter set;
// asking for a second one is a configuration bug.
func New(api frontend.API, params Params) *Chip {
	mutex.Lock()
	defer mutex.Unlock()

	if chip, ok := ringChips[api]; ok {
		if chip.params != params {
			panic("ring chip already bound to this build context with different parameters")
		}
		return chip
	}

	c := &Chip{api: api, params: params}

	// The comparator performs one binary decomposition of MaxBits+1 bits per
	// comparison. It is only sound for operands whose absolute difference
	// fits, which the chip guarantees by range checking every compared value
	// to MaxBits bits first.
	absDiffUpp := new(big.Int).Lsh(big.NewInt(1), uint(params.MaxBits))
	c.comparator = cmp.NewBoundedComparator(api, absDiffUpp, false)

	// Mirror gnark's range checker selection (see rangechecker.go), with an
	// env escape hatch forcing plain bit decomposition. The pre-0.9.2 commit
	// range checker mis-handles bit widths that are not a multiple of its
	// optimal basewidth, so collected checks are verified for alignment
	// before being flushed.
	rangeCheckerType := gnarkRangeCheckerSelector(api)
	if os.Getenv("USE_BIT_DECOMPOSITION_RANGE_CHECK") == "true" {
		fmt.Println("The USE_BIT_DECOMPOSITION_RANGE_CHECK env var is set to true.  Using the bit decomposition range checker.")
		rangeCheckerType = BIT_DECOMP_RANGE_CHECKER
	}
	c.rangeCheckerType = rangeCheckerType

	if c.rangeCheckerType == BIT_DECOMP_RANGE_CHECKER {
		c.rangeChecker = bitDecompChecker{api: api}
	} else {
		if c.rangeCheckerType == COMMIT_RANGE_CHECKER {
			api.Compiler().Defer(c.checkCollected)
		}
		c.rangeChecker = rangecheck.New(api)
	}

	ringChips[api] = c

	return c
}

// Params returns the parameter set this chip was built with.
func (c *Chip) Params() Params {
	return c.params
}

// RangeCheckBits asserts that x fits in nbBits bits.
func (c *Chip) RangeCheckBits(x frontend.Variable, nbBits int) {
	c.rangeCheckerCheck(x, nbBits)
}

func (c *Chip) rangeCheckerCheck(x frontend.Variable, nbBits int) {
	switch c.rangeCheckerType {
	case NATIVE_RANGE_CHECKER, BIT_DECOMP_RANGE_CHECKER:
		c.rangeChecker.Check(x, nbBits)
	case COMMIT_RANGE_CHECKER:
		c.collectedMutex.Lock()
		defer c.collectedMutex.Unlock()
		c.rangeCheckCollected = append(c.rangeCheckCollected, checkedVariable{v: x, bits: nbBits})
	}
}

func (c *Chip) checkCollected(api frontend.API) error {
	if c.rangeCheckerType != COMMIT_RANGE_CHECKER {
		panic("checkCollected should only be called when using the commit range checker")
	}

	// Circuits built from pure field arithmetic (set membership, the
	// convolution identities) never collect a range check.
	if len(c.rangeCheckCollected) == 0 {
		return nil
	}

	// The pre-0.9.2 commit range checker mis-handles widths that are not a
	// multiple of the basewidth it settles on. Mirror its choice here and
	// reject misaligned widths before they reach it.
	nbBits := getOptimalBasewidth(c.api, c.rangeCheckCollected)
	for _, v := range c.rangeCheckCollected {
		if v.bits%nbBits != 0 {
			panic(fmt.Sprintf("collected range check width %d is not aligned to the %d bit basewidth", v.bits, nbBits))
		}
		c.rangeChecker.Check(v.v, v.bits)
	}

	return nil
}
