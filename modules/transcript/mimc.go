package transcript

import (
	"Sha512Circuit/modules/fields"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// MiMCFieldHasher is a wrapper around MiMC5 gnark hasher, that implements the
// FieldHasher interface.
type MiMCFieldHasher struct {
	mimc.MiMC
}

func NewMiMCFieldHasher(engine *fields.ArithmeticEngine) (*MiMCFieldHasher, error) {
	h, err := mimc.NewMiMC(engine.API)
	if err != nil {
		return nil, err
	}

	return &MiMCFieldHasher{MiMC: h}, nil
}

func (m *MiMCFieldHasher) StateCapacity() uint {
	return 1
}

func (m *MiMCFieldHasher) HashToState(fs ...frontend.Variable) []frontend.Variable {
	m.MiMC.Reset()
	m.MiMC.Write(fs...)

	return []frontend.Variable{m.MiMC.Sum()}
}
