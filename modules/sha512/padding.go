package sha512

import (
	"fmt"
	"math"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/reference"

	"github.com/consensys/gnark/frontend"
)

// PaddingLayout is the shape of a padded message of a known bit length.
//
// padded_msg_len = block_count x 1024 bits
// Size: msg_len_in_bits (L) |  p bits   | 128 bits
// Bits:      msg            | 100...000 |    L
type PaddingLayout struct {
	MsgLenBits uint64
	BlockCount uint64
	// PadBits is p, the run of the 1 bit followed by p-1 zero bits.
	PadBits uint64
}

// NewPaddingLayout computes the layout for a message of msgLenBits bits.
func NewPaddingLayout(msgLenBits uint64) (PaddingLayout, error) {
	if msgLenBits > math.MaxUint64-(reference.LengthBits+1+reference.BlockBits) {
		return PaddingLayout{}, fmt.Errorf(
			"%w: message length %d bits overflows the padded length",
			ErrConfiguration, msgLenBits,
		)
	}

	blockCount := (msgLenBits + reference.LengthBits + 1 + reference.BlockBits - 1) / reference.BlockBits
	return newPaddingLayout(msgLenBits, blockCount)
}

func newPaddingLayout(msgLenBits, blockCount uint64) (PaddingLayout, error) {
	paddedLen := blockCount * reference.BlockBits
	if paddedLen < msgLenBits+reference.LengthBits {
		return PaddingLayout{}, fmt.Errorf(
			"%w: %d blocks cannot hold %d message bits and the length field",
			ErrConfiguration, blockCount, msgLenBits,
		)
	}

	p := paddedLen - reference.LengthBits - msgLenBits
	if p <= 1 {
		return PaddingLayout{}, fmt.Errorf(
			"%w: padding of %d bits for a %d bit message, need more than 1",
			ErrConfiguration, p, msgLenBits,
		)
	}

	return PaddingLayout{
		MsgLenBits: msgLenBits,
		BlockCount: blockCount,
		PadBits:    p,
	}, nil
}

// PaddedLen is the total number of bits after padding.
func (l PaddingLayout) PaddedLen() uint64 {
	return l.BlockCount * reference.BlockBits
}

// Pad lays the message wires out followed by the constant padding bits and
// the 128-bit big-endian message length. Only the message part depends on
// the witness.
func (l PaddingLayout) Pad(
	engine *fields.ArithmeticEngine,
	message []frontend.Variable,
) ([]frontend.Variable, error) {
	if uint64(len(message)) != l.MsgLenBits {
		return nil, fmt.Errorf(
			"%w: layout is for %d message bits, got %d wires",
			ErrConfiguration, l.MsgLenBits, len(message),
		)
	}

	padded := make([]frontend.Variable, 0, l.PaddedLen())
	padded = append(padded, message...)

	padded = append(padded, engine.ConstantBool(true))
	for i := uint64(0); i < l.PadBits-1; i++ {
		padded = append(padded, engine.ConstantBool(false))
	}

	for i := 0; i < reference.LengthBits; i++ {
		shift := reference.LengthBits - 1 - i
		// NOTE: L is a uint64, so the upper half of the length field is zero
		padded = append(padded, engine.ConstantBool(shift < 64 && (l.MsgLenBits>>shift)&1 == 1))
	}

	return padded, nil
}
