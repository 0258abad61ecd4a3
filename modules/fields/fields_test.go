package fields

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

func TestLimbCapacity(t *testing.T) {
	require.NoError(t, ECCBN254.CheckLimbCapacity())
	require.ErrorIs(t, ECCM31.CheckLimbCapacity(), ErrCapability)
	require.ErrorIs(t, ECCGF2.CheckLimbCapacity(), ErrCapability)
	require.ErrorIs(t, ECCFieldEnum(42).CheckLimbCapacity(), ErrCapability)
}

func TestParseFieldEnum(t *testing.T) {
	f, err := ParseFieldEnum("bn254")
	require.NoError(t, err)
	require.Equal(t, ECCBN254, f)

	_, err = ParseFieldEnum("goldilocks")
	require.ErrorIs(t, err, ErrCapability)
}

type RangeCheckTestingCircuit struct {
	Binary bool

	Value frontend.Variable
}

func (c *RangeCheckTestingCircuit) Define(api frontend.API) error {
	engine, err := NewArithmeticEngine(ECCBN254, api)
	if err != nil {
		return err
	}
	if c.Binary {
		NewBinaryRangeChecker(api).Check(c.Value, LimbBits)
	} else {
		engine.RangeCheck(c.Value, LimbBits)
	}
	return nil
}

func TestRangeCheck(t *testing.T) {
	for _, binary := range []bool{false, true} {
		err := test.IsSolved(
			&RangeCheckTestingCircuit{Binary: binary},
			&RangeCheckTestingCircuit{Binary: binary, Value: uint64(0xffffffff)},
			ecc.BN254.ScalarField(),
		)
		require.NoError(t, err, "32-bit value should pass the range check")

		err = test.IsSolved(
			&RangeCheckTestingCircuit{Binary: binary},
			&RangeCheckTestingCircuit{Binary: binary, Value: uint64(1) << 32},
			ecc.BN254.ScalarField(),
		)
		require.Error(t, err, "33-bit value should fail the range check")
	}
}

type AssertEqTestingCircuit struct {
	LHS []frontend.Variable
	RHS []frontend.Variable
}

func (c *AssertEqTestingCircuit) Define(api frontend.API) error {
	engine, err := NewArithmeticEngine(ECCBN254, api)
	if err != nil {
		return err
	}
	engine.AssertEq(c.LHS, c.RHS)
	return nil
}

func TestAssertEq(t *testing.T) {
	circuit := AssertEqTestingCircuit{
		LHS: make([]frontend.Variable, 3),
		RHS: make([]frontend.Variable, 3),
	}

	good := AssertEqTestingCircuit{
		LHS: []frontend.Variable{1, 0, 1},
		RHS: []frontend.Variable{1, 0, 1},
	}
	require.NoError(t, test.IsSolved(&circuit, &good, ecc.BN254.ScalarField()))

	bad := AssertEqTestingCircuit{
		LHS: []frontend.Variable{1, 0, 1},
		RHS: []frontend.Variable{1, 1, 1},
	}
	require.Error(t, test.IsSolved(&circuit, &bad, ecc.BN254.ScalarField()))
}
