package transcript

import (
	"fmt"

	"Sha512Circuit/modules/fields"

	"github.com/consensys/gnark/frontend"
)

// FieldHasher describes the field hasher the transcript absorbs into.
// The implementation should be considered immutable, the sponge state is
// managed by a FieldHasherTranscript instance.
type FieldHasher interface {
	// StateCapacity returns how many base field elements can be used in a state
	// dumped by the HashToState method.
	StateCapacity() uint

	// HashToState hashes a bunch of base field elements to a "hash state",
	// namely a slice of base field elements, can be used up to StateCapacity.
	HashToState(fs ...frontend.Variable) []frontend.Variable
}

// FieldHasherTranscript accumulates field elements and squeezes a single
// field element out of them.
type FieldHasherTranscript struct {
	*fields.ArithmeticEngine

	// The hash function
	hasher FieldHasher

	// The values to feed the hash function
	dataPool []frontend.Variable

	// The hashState
	hashState []frontend.Variable
}

// NewTranscript is the enter point to construct a new instance of transcript,
// that is decided by the field element tied to the engine
func NewTranscript(engine *fields.ArithmeticEngine) (*FieldHasherTranscript, error) {
	var hasher FieldHasher

	switch engine.ECCFieldEnum {
	case fields.ECCBN254:
		mimcHasher, err := NewMiMCFieldHasher(engine)
		if err != nil {
			return nil, err
		}
		hasher = mimcHasher
	default:
		return nil, fmt.Errorf("%w: no transcript hasher over %s", fields.ErrCapability, engine.ECCFieldEnum)
	}

	return &FieldHasherTranscript{
		ArithmeticEngine: engine,
		hasher:           hasher,
		dataPool:         make([]frontend.Variable, 0),
		hashState:        nil,
	}, nil
}

func (t *FieldHasherTranscript) AppendF(f frontend.Variable) {
	t.dataPool = append(t.dataPool, f)
}

// CircuitF hashes everything absorbed so far, chained after the previous
// state, and returns the first state element.
func (t *FieldHasherTranscript) CircuitF() frontend.Variable {
	t.hashState = t.hasher.HashToState(append(t.hashState, t.dataPool...)...)
	t.dataPool = nil
	return t.hashState[0]
}
