package witness

import (
	"fmt"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/reference"
	"Sha512Circuit/modules/sha512"
	"Sha512Circuit/modules/transcript"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark/frontend"
)

// BytesToBits expands bytes MSB first: bits[8*i+j] = (msg[i] >> (7-j)) & 1
func BytesToBits(msg []byte) []uint {
	res := make([]uint, 0, 8*len(msg))
	for _, b := range msg {
		for j := 0; j < 8; j++ {
			res = append(res, uint(b>>(7-j))&1)
		}
	}
	return res
}

// ToVariables lifts native bits into circuit assignments.
func ToVariables(bits []uint) []frontend.Variable {
	res := make([]frontend.Variable, len(bits))
	for i, b := range bits {
		res[i] = b
	}
	return res
}

// StateToWords turns a native hash state into limb pair assignments.
func StateToWords(state [8]uint64) (res [8]word.Word64) {
	for i, w := range state {
		hi, lo := word.Split(w)
		res[i] = word.Word64{Hi: hi, Lo: lo}
	}
	return
}

// NewAssignment fills a sha512.Circuit with a secret message and the public
// digest it is expected to hash to.
func NewAssignment(
	fieldEnum fields.ECCFieldEnum,
	msg []byte,
	digest [reference.Size]byte,
) *sha512.Circuit {
	assignment := &sha512.Circuit{
		FieldEnum: fieldEnum,
		Message:   ToVariables(BytesToBits(msg)),
	}

	for i, b := range BytesToBits(digest[:]) {
		assignment.Digest[i] = b
	}

	return assignment
}

// NewHonestAssignment computes the digest the gadget produces for msg with
// the native model and assigns it.
func NewHonestAssignment(fieldEnum fields.ECCFieldEnum, msg []byte) *sha512.Circuit {
	return NewAssignment(fieldEnum, msg, reference.SumTruncated(msg))
}

// NewStateAssignment fills a sha512.StateCircuit for msg.
func NewStateAssignment(
	fieldEnum fields.ECCFieldEnum,
	msg []byte,
	state [8]uint64,
) *sha512.StateCircuit {
	return &sha512.StateCircuit{
		FieldEnum: fieldEnum,
		Message:   ToVariables(BytesToBits(msg)),
		State:     StateToWords(state),
	}
}

// NewCommitmentAssignment fills a transcript.CommitmentCircuit for msg with
// the MiMC commitment of the state the gadget produces.
func NewCommitmentAssignment(fieldEnum fields.ECCFieldEnum, msg []byte) *transcript.CommitmentCircuit {
	return &transcript.CommitmentCircuit{
		FieldEnum:  fieldEnum,
		Message:    ToVariables(BytesToBits(msg)),
		Commitment: transcript.NativeCommitState(reference.StateTruncated(msg)),
	}
}

// ParseDigest reads 512 assigned digest bits back into bytes, mostly for
// logging what a circuit was fed.
func ParseDigest(bits [sha512.DigestBits]frontend.Variable) (digest [reference.Size]byte, err error) {
	for i, v := range bits {
		b, ok := v.(uint)
		if !ok || b > 1 {
			return digest, fmt.Errorf("digest bit %d is not a native bit: %v", i, v)
		}
		digest[i/8] |= byte(b) << (7 - i%8)
	}
	return digest, nil
}
