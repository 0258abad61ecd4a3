package sha512

import (
	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/word"

	"github.com/consensys/gnark/frontend"
)

// Xor3 computes a ^ b ^ c over boolean wires with field arithmetic only.
//
//	a ^ b ^ c = a+b+c - 2*a*b - 2*a*c - 2*b*c + 4*a*b*c
//	          = a*( 1 - 2*b - 2*c + 4*b*c ) + b + c - 2*b*c
//	          = a*( 1 - 2*b - 2*c + 4*m ) + b + c - 2*m
//
// where m = b*c, so two multiplications per output bit.
func Xor3(api frontend.API, a, b, c frontend.Variable) frontend.Variable {
	m := api.Mul(b, c)
	twoB := api.Add(b, b)
	twoC := api.Add(c, c)
	twoM := api.Add(m, m)
	fourM := api.Add(twoM, twoM)

	factor := api.Add(api.Sub(1, twoB, twoC), fourM)
	res := api.Mul(a, factor)

	return api.Sub(api.Add(res, b, c), twoM)
}

// Ch selects y where x is set and z elsewhere.
//
//	ch = x&y ^ (!x)&z
//	   = x*(y-z) + z
func Ch(api frontend.API, x, y, z frontend.Variable) frontend.Variable {
	return api.Add(api.Mul(x, api.Sub(y, z)), z)
}

// Maj is the bitwise majority of x, y and z.
//
//	maj = x&y ^ x&z ^ y&z
//	    = x*( y + z - 2*y*z ) + y*z
//	    = x*( y + z - 2*m ) + m
func Maj(api frontend.API, x, y, z frontend.Variable) frontend.Variable {
	m := api.Mul(y, z)
	return api.Add(api.Mul(x, api.Sub(api.Add(y, z), api.Add(m, m))), m)
}

// rotateRightIndex lists, for every output position of ROTR(x, y) counted
// from the most significant bit, the input position it reads from.
//
// ROTATE(x, y) = ((x) >> (y)) | ((x) << (64 - (y)))
func rotateRightIndex(y int) (res [word.Bits]int) {
	for i := range res {
		res[i] = (i + word.Bits - y) % word.Bits
	}
	return
}

// RotateRight re-indexes 64 big-endian bit wires into their right rotation
// by y positions. No constraint is added.
func RotateRight(b [word.Bits]frontend.Variable, y int) (res [word.Bits]frontend.Variable) {
	idx := rotateRightIndex(((y % word.Bits) + word.Bits) % word.Bits)
	for i := range res {
		res[i] = b[idx[i]]
	}
	return
}

// xor3Rotations computes ROTR(x, r0) ^ ROTR(x, r1) ^ ROTR(x, r2) bitwise
// and repacks it into a word.
func xor3Rotations(engine *fields.ArithmeticEngine, x word.Word64, r0, r1, r2 int) word.Word64 {
	xBits := word.ToBits(engine, x)
	rot0 := RotateRight(xBits, r0)
	rot1 := RotateRight(xBits, r1)
	rot2 := RotateRight(xBits, r2)

	var resBits [word.Bits]frontend.Variable
	for i := range resBits {
		resBits[i] = Xor3(engine, rot0[i], rot1[i], rot2[i])
	}

	return word.FromBits(engine, resBits)
}

// BigSigma0 is Sigma0(x) = ROTATE(x, 28) ^ ROTATE(x, 34) ^ ROTATE(x, 39)
func BigSigma0(engine *fields.ArithmeticEngine, x word.Word64) word.Word64 {
	return xor3Rotations(engine, x, 28, 34, 39)
}

// BigSigma1 is Sigma1(x) = ROTATE(x, 14) ^ ROTATE(x, 18) ^ ROTATE(x, 41)
func BigSigma1(engine *fields.ArithmeticEngine, x word.Word64) word.Word64 {
	return xor3Rotations(engine, x, 14, 18, 41)
}
