package fields

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	eccFields "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/field"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/std/rangecheck"
)

// ErrCapability is returned when the field behind a circuit cannot host the
// limb arithmetic the gadgets rely on.
var ErrCapability = errors.New("field capability error")

// LimbBits is the width of a single limb of a 64-bit word.
const LimbBits = 32

// MaxLimbSumBits bounds the bit length of any limb sum built by the gadgets,
// five 32-bit operands plus a carry.
const MaxLimbSumBits = LimbBits + 3

// ECCFieldEnum is the enum value indicating the field the circuit is built over
type ECCFieldEnum uint64

// The enum assignment is aligning with the ones on ECGO side.
const (
	// ECCBN254 is the ECCFieldEnum for BN254 field
	ECCBN254 ECCFieldEnum = 2
	// ECCM31 is the ECCFieldEnum for Mersenne31 field
	ECCM31 ECCFieldEnum = 1
	// ECCGF2 is the ECCFieldEnum for Galois2 field
	ECCGF2 ECCFieldEnum = 3
)

func (f ECCFieldEnum) String() string {
	switch f {
	case ECCBN254:
		return "bn254"
	case ECCM31:
		return "m31"
	case ECCGF2:
		return "gf2"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(f))
	}
}

// ParseFieldEnum maps a field name back to its enum value.
func ParseFieldEnum(name string) (ECCFieldEnum, error) {
	for _, f := range []ECCFieldEnum{ECCBN254, ECCM31, ECCGF2} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf(`%w: unknown field "%s"`, ErrCapability, name)
}

func (f ECCFieldEnum) GetFieldEngine() eccFields.Field {
	return eccFields.GetFieldById(uint64(f))
}

// FieldModulus finds the modulus for the base field tied to the ECC field enum
func (f ECCFieldEnum) FieldModulus() *big.Int {
	fieldEngine := f.GetFieldEngine()
	return fieldEngine.Field()
}

// CheckLimbCapacity fails when a sum of 32-bit limbs could wrap around the
// field modulus, which would make the limb decomposition ambiguous.
func (f ECCFieldEnum) CheckLimbCapacity() error {
	switch f {
	case ECCBN254, ECCM31, ECCGF2:
	default:
		return fmt.Errorf("%w: unknown field enum %d", ErrCapability, uint64(f))
	}

	if bitLen := f.FieldModulus().BitLen(); bitLen <= MaxLimbSumBits {
		return fmt.Errorf(
			"%w: %s modulus has %d bits, limb sums need more than %d",
			ErrCapability, f, bitLen, MaxLimbSumBits,
		)
	}
	return nil
}

// ArithmeticEngine extends from frontend.API with the few capabilities the
// hash gadgets need on top of plain field arithmetic: range checks on limbs
// and constant boolean wires.
type ArithmeticEngine struct {
	ECCFieldEnum
	frontend.API

	rangeChecker frontend.Rangechecker
}

// NewArithmeticEngine checks that the field can carry 32-bit limbs and picks
// a range checker suited to the builder behind api.
func NewArithmeticEngine(
	fieldEnum ECCFieldEnum, api frontend.API) (*ArithmeticEngine, error) {

	if err := fieldEnum.CheckLimbCapacity(); err != nil {
		return nil, err
	}

	engine := &ArithmeticEngine{ECCFieldEnum: fieldEnum, API: api}

	// NOTE: layered circuits have no commitment support, decompose instead
	if _, ok := api.(ecgo.API); ok {
		engine.rangeChecker = NewBinaryRangeChecker(api)
	} else {
		engine.rangeChecker = rangecheck.New(api)
	}

	return engine, nil
}

// RangeCheck asserts that v fits into nbBits bits.
func (engine *ArithmeticEngine) RangeCheck(v frontend.Variable, nbBits int) {
	engine.rangeChecker.Check(v, nbBits)
}

// ConstantBool returns the constant wire 1 or 0.
func (engine *ArithmeticEngine) ConstantBool(b bool) frontend.Variable {
	if b {
		return 1
	}
	return 0
}

// AssertEq checks that two wire slices are equal position by position.
func (engine *ArithmeticEngine) AssertEq(
	lhs []frontend.Variable, rhs []frontend.Variable) {

	if len(lhs) != len(rhs) {
		panic("wire slices should be of same length")
	}

	for i := range lhs {
		engine.API.AssertIsEqual(lhs[i], rhs[i])
	}
}

// BinaryRangeChecker range checks by a full boolean decomposition. It costs
// one constraint per bit but only needs the base frontend.API.
type BinaryRangeChecker struct {
	api frontend.API
}

func NewBinaryRangeChecker(api frontend.API) *BinaryRangeChecker {
	return &BinaryRangeChecker{api: api}
}

func (c *BinaryRangeChecker) Check(v frontend.Variable, nbBits int) {
	bits.ToBinary(c.api, v, bits.WithNbDigits(nbBits))
}
