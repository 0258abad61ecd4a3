package sha512

import (
	"fmt"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/reference"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark/frontend"
)

// Rounds is the number of compression rounds applied per block.
//
// NOTE: standard SHA-512 runs 80 rounds over a 80 word message schedule.
// The gadget stops after the 16 words read straight from the block, and its
// T1/T2 carry no Ch/Maj terms, so its digest is not the FIPS 180-4 digest.
// This matches reference.CompressTruncated.
const Rounds = reference.TruncatedRounds

// State is the 8 word SHA-512 hash state.
type State [8]word.Word64

// InitialState returns the constant initial hash value H(0).
func InitialState() (s State) {
	for i, h := range reference.InitialHash() {
		s[i] = word.Constant(h)
	}
	return
}

func roundConstants() (k [Rounds]word.Word64) {
	all := reference.RoundConstants()
	for i := range k {
		k[i] = word.Constant(all[i])
	}
	return
}

// CompressBlock applies one block transition to the hash state. block holds
// the 1024 bits of the current block.
func CompressBlock(
	engine *fields.ArithmeticEngine,
	state State,
	block []frontend.Variable,
) State {
	if len(block) != reference.BlockBits {
		panic(fmt.Sprintf("sha512 block should be %d bits, got %d", reference.BlockBits, len(block)))
	}

	k := roundConstants()
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < Rounds; i++ {
		w := word.FromBitSlice(engine, block[i*word.Bits:(i+1)*word.Bits])

		t1 := word.Add(engine, h, BigSigma1(engine, e), k[i], w)
		t2 := BigSigma0(engine, a)

		h = g
		g = f
		f = e
		e = word.Add(engine, d, t1)
		d = c
		c = b
		b = a
		a = word.Add(engine, t1, t2)
	}
	// TODO(sha512): message schedule W[16..80) and rounds 16..80 with Ch/Maj

	working := State{a, b, c, d, e, f, g, h}
	for i := range state {
		state[i] = word.Add(engine, state[i], working[i])
	}

	return state
}

// Compress runs the block transitions over a padded message.
func Compress(engine *fields.ArithmeticEngine, padded []frontend.Variable) State {
	if len(padded) == 0 || len(padded)%reference.BlockBits != 0 {
		panic(fmt.Sprintf("padded message should be a positive multiple of %d bits, got %d",
			reference.BlockBits, len(padded)))
	}

	state := InitialState()
	for blk := 0; blk < len(padded); blk += reference.BlockBits {
		state = CompressBlock(engine, state, padded[blk:blk+reference.BlockBits])
	}

	return state
}
