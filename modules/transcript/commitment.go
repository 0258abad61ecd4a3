package transcript

import (
	"fmt"
	"math/big"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/sha512"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	nativeMiMC "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
)

// CommitState absorbs the 8 final hash words, each packed as
// hi * 2^32 + lo, and returns their MiMC commitment.
func CommitState(engine *fields.ArithmeticEngine, state sha512.State) (frontend.Variable, error) {
	t, err := NewTranscript(engine)
	if err != nil {
		return nil, err
	}

	for _, w := range state {
		t.AppendF(engine.Add(engine.Mul(w.Hi, uint64(1)<<word.LimbBits), w.Lo))
	}

	return t.CircuitF(), nil
}

// NativeCommitState computes CommitState outside of a circuit over BN254.
func NativeCommitState(state [8]uint64) *big.Int {
	h := nativeMiMC.NewMiMC()
	for _, w := range state {
		var e fr.Element
		e.SetUint64(w)
		b := e.Bytes()
		h.Write(b[:])
	}

	var res fr.Element
	res.SetBytes(h.Sum(nil))
	return res.BigInt(new(big.Int))
}

// CommitmentCircuit proves knowledge of a secret message whose hash state
// commits to the public Commitment. A single public field element replaces
// the 512 public digest bits of sha512.Circuit.
type CommitmentCircuit struct {
	FieldEnum fields.ECCFieldEnum

	Message    []frontend.Variable
	Commitment frontend.Variable `gnark:",public"`
}

// NewCommitmentCircuit returns a placeholder for messages of msgLenBits bits.
func NewCommitmentCircuit(fieldEnum fields.ECCFieldEnum, msgLenBits uint64) (*CommitmentCircuit, error) {
	if _, err := sha512.NewPaddingLayout(msgLenBits); err != nil {
		return nil, err
	}
	return &CommitmentCircuit{
		FieldEnum: fieldEnum,
		Message:   make([]frontend.Variable, msgLenBits),
	}, nil
}

func (c *CommitmentCircuit) Define(api frontend.API) error {
	engine, err := fields.NewArithmeticEngine(c.FieldEnum, api)
	if err != nil {
		return err
	}

	targets, err := sha512.Hash(engine, c.Message)
	if err != nil {
		return fmt.Errorf("define commitment circuit: %w", err)
	}

	commitment, err := CommitState(engine, targets.State)
	if err != nil {
		return err
	}

	api.AssertIsEqual(commitment, c.Commitment)
	return nil
}
