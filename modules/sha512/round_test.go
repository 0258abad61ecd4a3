package sha512

import (
	"fmt"
	mathbits "math/bits"
	"testing"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/reference"
	"Sha512Circuit/modules/word"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	ecgoTest "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/test"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

type BitFunctionTestingCircuit struct {
	A, B, C frontend.Variable

	Xor, Ch, Maj frontend.Variable
}

func (c *BitFunctionTestingCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(Xor3(api, c.A, c.B, c.C), c.Xor)
	api.AssertIsEqual(Ch(api, c.A, c.B, c.C), c.Ch)
	api.AssertIsEqual(Maj(api, c.A, c.B, c.C), c.Maj)
	return nil
}

func TestBitFunctionsTruthTable(t *testing.T) {
	for v := uint(0); v < 8; v++ {
		a, b, c := v>>2&1, v>>1&1, v&1

		ch := c
		if a == 1 {
			ch = b
		}
		maj := uint(0)
		if a+b+c >= 2 {
			maj = 1
		}

		t.Run(fmt.Sprintf("a=%d b=%d c=%d", a, b, c), func(t *testing.T) {
			assignment := BitFunctionTestingCircuit{
				A: a, B: b, C: c,
				Xor: a ^ b ^ c,
				Ch:  ch,
				Maj: maj,
			}
			err := test.IsSolved(&BitFunctionTestingCircuit{}, &assignment, ecc.BN254.ScalarField())
			require.NoError(t, err)

			assignment.Xor = 1 - assignment.Xor.(uint)
			err = test.IsSolved(&BitFunctionTestingCircuit{}, &assignment, ecc.BN254.ScalarField())
			require.Error(t, err, "flipped xor output should not be accepted")
		})
	}
}

func nativeBits(x uint64) (res [word.Bits]frontend.Variable) {
	for i, b := range word.Uint64ToBits(x) {
		res[i] = b
	}
	return
}

func fromNativeBits(b [word.Bits]frontend.Variable) uint64 {
	var res [word.Bits]uint
	for i := range b {
		res[i] = b[i].(uint)
	}
	return word.BitsToUint64(res)
}

func TestRotateRight(t *testing.T) {
	x := uint64(0x0123456789abcdef)
	for y := 0; y < word.Bits; y++ {
		rotated := RotateRight(nativeBits(x), y)
		require.Equal(t, mathbits.RotateLeft64(x, -y), fromNativeBits(rotated), "rotation by %d", y)

		back := RotateRight(rotated, word.Bits-y)
		require.Equal(t, x, fromNativeBits(back), "rotation by %d then %d", y, word.Bits-y)
	}
}

type SigmaTestingCircuit struct {
	X              word.Word64
	Sigma0, Sigma1 word.Word64
}

func (c *SigmaTestingCircuit) Define(api frontend.API) error {
	engine, err := fields.NewArithmeticEngine(fields.ECCBN254, api)
	if err != nil {
		return err
	}
	word.AssertIsEqual(api, BigSigma0(engine, c.X), c.Sigma0)
	word.AssertIsEqual(api, BigSigma1(engine, c.X), c.Sigma1)
	return nil
}

func assignWord(v uint64) word.Word64 {
	hi, lo := word.Split(v)
	return word.Word64{Hi: hi, Lo: lo}
}

func TestBigSigma(t *testing.T) {
	for _, x := range []uint64{0, 0xffffffffffffffff, 0x510e527fade682d1, 0x6a09e667f3bcc908} {
		assignment := SigmaTestingCircuit{
			X:      assignWord(x),
			Sigma0: assignWord(reference.BigSigma0(x)),
			Sigma1: assignWord(reference.BigSigma1(x)),
		}
		err := test.IsSolved(&SigmaTestingCircuit{}, &assignment, ecc.BN254.ScalarField())
		require.NoError(t, err, "x = %#x", x)
	}
}

type Xor3LayeredTestingCircuit struct {
	A, B, C  frontend.Variable
	Expected frontend.Variable
}

func (c *Xor3LayeredTestingCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(Xor3(api, c.A, c.B, c.C), c.Expected)
	return nil
}

func TestXor3LayeredCircuit(t *testing.T) {
	circuitCompileResult, err := ecgo.Compile(
		fields.ECCBN254.FieldModulus(),
		&Xor3LayeredTestingCircuit{},
	)
	require.NoError(t, err, "ggs compile circuit error")
	layeredCircuit := circuitCompileResult.GetLayeredCircuit()
	inputSolver := circuitCompileResult.GetInputSolver()

	assignment := Xor3LayeredTestingCircuit{A: 1, B: 1, C: 0, Expected: 0}
	witness, err := inputSolver.SolveInput(&assignment, 0)
	require.NoError(t, err, "ggs solving witness error")

	require.True(
		t,
		ecgoTest.CheckCircuit(layeredCircuit, witness),
		"ggs check circuit error",
	)
}
