package main

import (
	"errors"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	ecgoTest "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/test"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(expanderCmd)
}

var expanderCmd = &cobra.Command{
	Use:   "expander",
	Short: "Compile the SHA-512 circuit to an Expander layered circuit and check the witness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ExpanderImpl()
	},
}

func ExpanderImpl() error {
	log := logger.Logger()

	inputs, err := loadCircuitInputs()
	if err != nil {
		return err
	}

	compilation, err := ecgo.Compile(inputs.fieldEnum.FieldModulus(), inputs.circuit)
	if err != nil {
		return err
	}

	log.Info().Msg("solving witness")
	inputSolver := compilation.GetInputSolver()
	witness, err := inputSolver.SolveInput(inputs.assignment, 0)
	if err != nil {
		return err
	}

	log.Info().Msg("checking satisfiability")
	layeredCircuit := compilation.GetLayeredCircuit()
	if !ecgoTest.CheckCircuit(layeredCircuit, witness) {
		return errors.New("layered circuit not satisfied by witness")
	}
	log.Info().Msg("layered circuit satisfied")
	return nil
}
