// Package word represents 64-bit unsigned integers inside a circuit as a pair
// of 32-bit limbs and provides the bit conversion and modular addition the
// SHA-512 gadgets are built from.
package word

import (
	"fmt"
	"math/big"
	mathbits "math/bits"

	"Sha512Circuit/modules/fields"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

const (
	// Bits is the logical width of a word.
	Bits = 64
	// LimbBits is the width of each of the two limbs.
	LimbBits = fields.LimbBits
)

func init() {
	solver.RegisterHint(SplitLimbHint)
}

// Word64 is a 64-bit value held as two limbs, each in [0, 2^32).
type Word64 struct {
	Hi frontend.Variable
	Lo frontend.Variable
}

// Constant builds a Word64 made of constant limbs.
func Constant(v uint64) Word64 {
	hi, lo := Split(v)
	return Word64{Hi: hi, Lo: lo}
}

// Split cuts a native value into its high and low limb.
func Split(v uint64) (hi, lo uint32) {
	return uint32(v >> LimbBits), uint32(v)
}

// Join is the inverse of Split.
func Join(hi, lo uint32) uint64 {
	return uint64(hi)<<LimbBits | uint64(lo)
}

// Uint64ToBits returns the big-endian bits of v.
func Uint64ToBits(v uint64) (res [Bits]uint) {
	for i := range res {
		res[i] = uint(v>>(Bits-1-i)) & 1
	}
	return
}

// BitsToUint64 packs big-endian bits back into a value.
func BitsToUint64(b [Bits]uint) uint64 {
	var v uint64
	for i := range b {
		v |= uint64(b[i]&1) << (Bits - 1 - i)
	}
	return v
}

// ToBits decomposes w into 64 constrained boolean wires, most significant
// bit of the high limb first and least significant bit of the low limb last.
func ToBits(engine *fields.ArithmeticEngine, w Word64) (res [Bits]frontend.Variable) {
	limbToBits(engine, w.Hi, res[:LimbBits])
	limbToBits(engine, w.Lo, res[LimbBits:])
	return
}

func limbToBits(api frontend.API, limb frontend.Variable, msbFirst []frontend.Variable) {
	lsbFirst := bits.ToBinary(api, limb, bits.WithNbDigits(LimbBits))
	for i := range msbFirst {
		msbFirst[i] = lsbFirst[LimbBits-1-i]
	}
}

// FromBits packs 64 big-endian bits into a word. The bits are assumed to be
// boolean already, every caller builds them from boolean wires.
func FromBits(engine *fields.ArithmeticEngine, b [Bits]frontend.Variable) Word64 {
	return Word64{
		Hi: bitsToLimb(engine, b[:LimbBits]),
		Lo: bitsToLimb(engine, b[LimbBits:]),
	}
}

func bitsToLimb(api frontend.API, msbFirst []frontend.Variable) frontend.Variable {
	lsbFirst := make([]frontend.Variable, LimbBits)
	for i := range lsbFirst {
		lsbFirst[i] = msbFirst[LimbBits-1-i]
	}
	return bits.FromBinary(api, lsbFirst, bits.WithUnconstrainedInputs())
}

// FromBitSlice is FromBits over a 64 wire window of a longer bit string.
func FromBitSlice(engine *fields.ArithmeticEngine, b []frontend.Variable) Word64 {
	if len(b) != Bits {
		panic(fmt.Sprintf("word needs %d bits, got %d", Bits, len(b)))
	}
	var arr [Bits]frontend.Variable
	copy(arr[:], b)
	return FromBits(engine, arr)
}

// Add returns the sum of the operands modulo 2^64. The carry out of the low
// limb is moved into the high limb, the carry out of the high limb is
// dropped, and both result limbs are range checked to 32 bits.
func Add(engine *fields.ArithmeticEngine, a, b Word64, ws ...Word64) Word64 {
	// a carry never exceeds the operand count minus one
	carryBits := mathbits.Len(uint(len(ws) + 1))

	his := make([]frontend.Variable, len(ws))
	los := make([]frontend.Variable, len(ws))
	for i := range ws {
		his[i], los[i] = ws[i].Hi, ws[i].Lo
	}

	loSum := engine.Add(a.Lo, b.Lo, los...)
	lo, carry := splitLimb(engine, loSum, carryBits)

	hiSum := engine.Add(a.Hi, b.Hi, append(his, carry)...)
	hi, _ := splitLimb(engine, hiSum, carryBits)

	return Word64{Hi: hi, Lo: lo}
}

// splitLimb writes v = limb + carry * 2^32 with limb on 32 bits and carry on
// carryBits bits.
func splitLimb(
	engine *fields.ArithmeticEngine,
	v frontend.Variable,
	carryBits int,
) (limb, carry frontend.Variable) {

	if c, ok := engine.Compiler().ConstantValue(v); ok {
		limb = new(big.Int).And(c, big.NewInt(1<<LimbBits-1))
		carry = new(big.Int).Rsh(c, LimbBits)
		return
	}

	res, err := engine.Compiler().NewHint(SplitLimbHint, 2, v)
	if err != nil {
		panic(err.Error())
	}
	limb, carry = res[0], res[1]

	engine.RangeCheck(limb, LimbBits)
	engine.RangeCheck(carry, carryBits)
	engine.AssertIsEqual(v, engine.Add(limb, engine.Mul(carry, 1<<LimbBits)))

	return
}

// SplitLimbHint outputs the low 32 bits and the remaining high bits of its
// single input.
func SplitLimbHint(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 2 {
		return fmt.Errorf("split limb hint expects 1 input and 2 outputs, got %d and %d",
			len(inputs), len(outputs))
	}
	outputs[0].And(inputs[0], big.NewInt(1<<LimbBits-1))
	outputs[1].Rsh(inputs[0], LimbBits)
	return nil
}

// AssertIsEqual constrains two words to be equal limb by limb.
func AssertIsEqual(api frontend.API, a, b Word64) {
	api.AssertIsEqual(a.Hi, b.Hi)
	api.AssertIsEqual(a.Lo, b.Lo)
}
