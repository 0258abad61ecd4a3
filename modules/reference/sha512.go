// Package reference is a native model of SHA-512 used as an oracle for the
// circuit gadgets. It computes both the standard FIPS 180-4 digest and the
// truncated compression the circuit performs: the first 16 rounds only, no
// message schedule expansion, and no Ch/Maj terms in T1/T2.
package reference

import (
	"encoding/binary"
	"math/bits"
)

func rotr(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

func BigSigma0(x uint64) uint64 {
	return rotr(x, 28) ^ rotr(x, 34) ^ rotr(x, 39)
}

func BigSigma1(x uint64) uint64 {
	return rotr(x, 14) ^ rotr(x, 18) ^ rotr(x, 41)
}

func smallSigma0(x uint64) uint64 {
	return rotr(x, 1) ^ rotr(x, 8) ^ (x >> 7)
}

func smallSigma1(x uint64) uint64 {
	return rotr(x, 19) ^ rotr(x, 61) ^ (x >> 6)
}

func Ch(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func Maj(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// Pad appends the SHA-512 padding to msg: a single 1 bit, zero bits up to
// 128 bits short of a block boundary, then the 128-bit big-endian bit length.
func Pad(msg []byte) []byte {
	zeroPadLen := (BlockBytes - LengthBits/8 - 1 - len(msg)%BlockBytes)
	if zeroPadLen < 0 {
		zeroPadLen += BlockBytes
	}

	padded := make([]byte, 0, len(msg)+1+zeroPadLen+LengthBits/8)
	padded = append(padded, msg...)
	padded = append(padded, 0x80)
	padded = append(padded, make([]byte, zeroPadLen)...)

	var lenbuf [LengthBits / 8]byte
	// the high 64 bits of the length stay zero for any byte slice
	binary.BigEndian.PutUint64(lenbuf[8:], uint64(len(msg))*8)
	return append(padded, lenbuf[:]...)
}

func loadBlock(block []byte) (w [16]uint64) {
	if len(block) != BlockBytes {
		panic("sha512 block should be 128 bytes")
	}
	for i := range w {
		w[i] = binary.BigEndian.Uint64(block[8*i:])
	}
	return
}

// Compress runs the standard 80-round SHA-512 compression of one block.
func Compress(state [8]uint64, block []byte) [8]uint64 {
	var w [FullRounds]uint64
	head := loadBlock(block)
	copy(w[:], head[:])
	for i := 16; i < FullRounds; i++ {
		w[i] = smallSigma1(w[i-2]) + w[i-7] + smallSigma0(w[i-15]) + w[i-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < FullRounds; i++ {
		t1 := h + BigSigma1(e) + Ch(e, f, g) + roundConstants[i] + w[i]
		t2 := BigSigma0(a) + Maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return addState(state, [8]uint64{a, b, c, d, e, f, g, h})
}

// CompressTruncated mirrors the circuit's compression of one block: 16
// rounds over the message words taken directly from the block, with
// T1 = h + Sigma1(e) + K[i] + W[i] and T2 = Sigma0(a).
func CompressTruncated(state [8]uint64, block []byte) [8]uint64 {
	w := loadBlock(block)

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < TruncatedRounds; i++ {
		t1 := h + BigSigma1(e) + roundConstants[i] + w[i]
		t2 := BigSigma0(a)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return addState(state, [8]uint64{a, b, c, d, e, f, g, h})
}

func addState(state, working [8]uint64) [8]uint64 {
	for i := range state {
		state[i] += working[i]
	}
	return state
}

func sum(msg []byte, compress func([8]uint64, []byte) [8]uint64) [8]uint64 {
	state := initialHash
	padded := Pad(msg)
	for i := 0; i < len(padded); i += BlockBytes {
		state = compress(state, padded[i:i+BlockBytes])
	}
	return state
}

// State512 returns the final standard SHA-512 hash state of msg.
func State512(msg []byte) [8]uint64 {
	return sum(msg, Compress)
}

// StateTruncated returns the final hash state the circuit computes for msg.
func StateTruncated(msg []byte) [8]uint64 {
	return sum(msg, CompressTruncated)
}

// Digest serializes a hash state big-endian, word 0 first.
func Digest(state [8]uint64) (digest [Size]byte) {
	for i, w := range state {
		binary.BigEndian.PutUint64(digest[8*i:], w)
	}
	return
}

// Sum512 is the standard SHA-512 digest of msg.
func Sum512(msg []byte) [Size]byte {
	return Digest(State512(msg))
}

// SumTruncated is the digest the circuit gadget produces for msg.
func SumTruncated(msg []byte) [Size]byte {
	return Digest(StateTruncated(msg))
}
