package sha512

import (
	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark/frontend"
)

// DigestBits is the number of output bits.
const DigestBits = 8 * word.Bits

// Digest serializes the hash state into 512 bits, big-endian within each
// word and words in state order.
func Digest(engine *fields.ArithmeticEngine, state State) []frontend.Variable {
	digest := make([]frontend.Variable, 0, DigestBits)
	for i := range state {
		b := word.ToBits(engine, state[i])
		digest = append(digest, b[:]...)
	}
	return digest
}
