package transcript

import (
	"testing"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/reference"
	"Sha512Circuit/modules/sha512"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

type StateCommitmentTestingCircuit struct {
	State  [8]word.Word64
	Output frontend.Variable
}

func (c *StateCommitmentTestingCircuit) Define(api frontend.API) error {
	engine, err := fields.NewArithmeticEngine(fields.ECCBN254, api)
	if err != nil {
		return err
	}

	var state sha512.State
	copy(state[:], c.State[:])
	commitment, err := CommitState(engine, state)
	if err != nil {
		return err
	}
	api.AssertIsEqual(commitment, c.Output)
	return nil
}

func assignState(state [8]uint64) (res [8]word.Word64) {
	for i, w := range state {
		hi, lo := word.Split(w)
		res[i] = word.Word64{Hi: hi, Lo: lo}
	}
	return
}

func TestCommitStateMatchesNative(t *testing.T) {
	circuit := StateCommitmentTestingCircuit{}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err, "ggs compile circuit error")

	state := reference.InitialHash()
	assignment := StateCommitmentTestingCircuit{
		State:  assignState(state),
		Output: NativeCommitState(state),
	}
	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, err, "ggs solving witness error")
	require.NoError(t, ccs.IsSolved(witness))

	state[0]++
	assignment.State = assignState(state)
	witness, err = frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	require.Error(t, ccs.IsSolved(witness), "stale commitment should not be marked as solved")
}

func TestCommitmentCircuit(t *testing.T) {
	msg := []byte("abc")
	circuit, err := NewCommitmentCircuit(fields.ECCBN254, uint64(8*len(msg)))
	require.NoError(t, err)

	assignment := CommitmentCircuit{
		FieldEnum:  fields.ECCBN254,
		Message:    make([]frontend.Variable, 8*len(msg)),
		Commitment: NativeCommitState(reference.StateTruncated(msg)),
	}
	for i := range assignment.Message {
		assignment.Message[i] = uint(msg[i/8]>>(7-i%8)) & 1
	}

	require.NoError(t, test.IsSolved(circuit, &assignment, ecc.BN254.ScalarField()))

	assignment.Commitment = NativeCommitState(reference.State512(msg))
	require.Error(t, test.IsSolved(circuit, &assignment, ecc.BN254.ScalarField()))
}

func TestTranscriptNeedsBN254(t *testing.T) {
	_, err := NewTranscript(&fields.ArithmeticEngine{ECCFieldEnum: fields.ECCM31})
	require.ErrorIs(t, err, fields.ErrCapability)
}
