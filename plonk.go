package main

import (
	"fmt"

	"Sha512Circuit/modules/fields"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(plonkCmd)
}

var plonkCmd = &cobra.Command{
	Use:   "plonk",
	Short: "Prove and verify the SHA-512 preimage circuit with PLONK over BN254",
	Long: `
Prove and verify the SHA-512 preimage circuit with PLONK over BN254,
in memory, with a KZG SRS generated from a known toxic waste.
For testing only, the proof is not sound against whoever ran the setup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return PlonkImpl()
	},
}

func PlonkImpl() error {
	log := logger.Logger()

	inputs, err := loadCircuitInputs()
	if err != nil {
		return err
	}
	if inputs.fieldEnum != fields.ECCBN254 {
		return fmt.Errorf("%w: plonk runs over bn254, got %s", fields.ErrCapability, inputs.fieldEnum)
	}

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, inputs.circuit)
	if err != nil {
		return err
	}
	log.Info().Int("constraints", ccs.GetNbConstraints()).Msg("plonkish compiled")

	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return err
	}
	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return err
	}

	fullWitness, err := frontend.NewWitness(inputs.assignment, ecc.BN254.ScalarField())
	if err != nil {
		return err
	}
	proof, err := plonk.Prove(ccs, pk, fullWitness)
	if err != nil {
		return fmt.Errorf("plonk prove: %w", err)
	}

	publicWitness, err := fullWitness.Public()
	if err != nil {
		return err
	}
	if err = plonk.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("plonk verify: %w", err)
	}
	log.Info().Msg("plonk proof verified")
	return nil
}
