// Package sha512 arithmetizes SHA-512 padding and compression as gnark
// gadgets, so a circuit can prove knowledge of a message hashing to a public
// digest.
package sha512

import (
	"errors"
	"fmt"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
)

// ErrConfiguration is returned when the gadget shape cannot be derived from
// the message length.
var ErrConfiguration = errors.New("sha512 configuration error")

// Targets are the wire handles produced by one construction.
type Targets struct {
	// Message holds the L message bit wires, bound by the caller.
	Message []frontend.Variable
	// Digest holds the 512 output bit wires.
	Digest []frontend.Variable
	// State is the final hash state the digest is read from.
	State State
}

// MakeCircuit builds the gadget for a message of msgLenBits bits held by the
// given wires. Every message wire is constrained to be boolean.
func MakeCircuit(
	engine *fields.ArithmeticEngine,
	msgLenBits uint64,
	message []frontend.Variable,
) (*Targets, error) {
	layout, err := NewPaddingLayout(msgLenBits)
	if err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().
		Uint64("msgLenBits", msgLenBits).
		Uint64("blocks", layout.BlockCount).
		Int("rounds", Rounds).
		Msg("building sha512 gadget")

	for _, b := range message {
		engine.AssertIsBoolean(b)
	}

	padded, err := layout.Pad(engine, message)
	if err != nil {
		return nil, err
	}

	state := Compress(engine, padded)

	return &Targets{
		Message: message,
		Digest:  Digest(engine, state),
		State:   state,
	}, nil
}

// Hash is MakeCircuit with the message length taken from the wires.
func Hash(engine *fields.ArithmeticEngine, message []frontend.Variable) (*Targets, error) {
	return MakeCircuit(engine, uint64(len(message)), message)
}

// Circuit proves knowledge of a secret message whose digest equals the
// public Digest bits.
type Circuit struct {
	FieldEnum fields.ECCFieldEnum

	Message []frontend.Variable
	Digest  [DigestBits]frontend.Variable `gnark:",public"`
}

// NewCircuit returns a placeholder circuit for messages of msgLenBits bits.
func NewCircuit(fieldEnum fields.ECCFieldEnum, msgLenBits uint64) (*Circuit, error) {
	if _, err := NewPaddingLayout(msgLenBits); err != nil {
		return nil, err
	}
	return &Circuit{
		FieldEnum: fieldEnum,
		Message:   make([]frontend.Variable, msgLenBits),
	}, nil
}

// Define declares the circuit constraints
func (c *Circuit) Define(api frontend.API) error {
	engine, err := fields.NewArithmeticEngine(c.FieldEnum, api)
	if err != nil {
		return err
	}

	targets, err := Hash(engine, c.Message)
	if err != nil {
		return fmt.Errorf("define sha512 circuit: %w", err)
	}

	engine.AssertEq(targets.Digest, c.Digest[:])
	return nil
}

// StateCircuit exposes the final hash state words instead of digest bits,
// used to compare the compression against a native model.
type StateCircuit struct {
	FieldEnum fields.ECCFieldEnum

	Message []frontend.Variable
	State   [8]word.Word64 `gnark:",public"`
}

func (c *StateCircuit) Define(api frontend.API) error {
	engine, err := fields.NewArithmeticEngine(c.FieldEnum, api)
	if err != nil {
		return err
	}

	targets, err := Hash(engine, c.Message)
	if err != nil {
		return fmt.Errorf("define sha512 state circuit: %w", err)
	}

	for i := range targets.State {
		word.AssertIsEqual(api, targets.State[i], c.State[i])
	}
	return nil
}
