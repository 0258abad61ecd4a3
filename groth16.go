package main

import (
	"fmt"
	"io"
	"os"

	"Sha512Circuit/modules/fields"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

var (
	groth16PKFile    string
	groth16VKFile    string
	groth16ProofFile string
	groth16Mode      string
)

var groth16Cmd = &cobra.Command{
	Use:   "groth16",
	Short: "Setup, prove or verify the SHA-512 preimage circuit with Groth16 over BN254",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Groth16Impl()
	},
}

func init() {
	rootCmd.AddCommand(groth16Cmd)
	groth16Cmd.PersistentFlags().StringVar(&groth16PKFile, "groth16-pk", "sha512.pk", "The Groth16 proving key file.")
	groth16Cmd.PersistentFlags().StringVar(&groth16VKFile, "groth16-vk", "sha512.vk", "The Groth16 verifying key file.")
	groth16Cmd.PersistentFlags().StringVar(&groth16ProofFile, "groth16-proof", "sha512.proof", "The Groth16 proof file.")
	groth16Cmd.PersistentFlags().StringVar(&groth16Mode, "groth16-mode", "", "The Groth16 work mode - one of prove/verify/setup.")

	groth16Cmd.MarkPersistentFlagRequired("groth16-mode")
}

func Groth16Impl() error {
	log := logger.Logger()

	inputs, err := loadCircuitInputs()
	if err != nil {
		return err
	}
	if inputs.fieldEnum != fields.ECCBN254 {
		return fmt.Errorf("%w: groth16 runs over bn254, got %s", fields.ErrCapability, inputs.fieldEnum)
	}

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, inputs.circuit)
	if err != nil {
		return err
	}
	log.Info().Int("constraints", ccs.GetNbConstraints()).Msg("r1cs compiled")

	fullWitness, err := frontend.NewWitness(inputs.assignment, ecc.BN254.ScalarField())
	if err != nil {
		return err
	}
	if err = ccs.IsSolved(fullWitness); err != nil {
		return fmt.Errorf("r1cs not satisfied: %w", err)
	}
	log.Info().Msg("r1cs satisfied")

	switch groth16Mode {
	case "setup":
		log.Info().Msg("groth16 generating setup from scratch")
		pk, vk, err := groth16.Setup(ccs)
		if err != nil {
			return err
		}
		if err = writeTo(groth16PKFile, pk); err != nil {
			return err
		}
		return writeTo(groth16VKFile, vk)
	case "prove":
		log.Info().Msg("groth16 reading proving key from file")
		pk := groth16.NewProvingKey(ecc.BN254)
		if err = readFrom(groth16PKFile, pk); err != nil {
			return err
		}

		proof, err := groth16.Prove(ccs, pk, fullWitness)
		if err != nil {
			return fmt.Errorf("groth16 prove: %w", err)
		}
		return writeTo(groth16ProofFile, proof)
	case "verify":
		log.Info().Msg("groth16 reading verifying key and proof from file")
		vk := groth16.NewVerifyingKey(ecc.BN254)
		if err = readFrom(groth16VKFile, vk); err != nil {
			return err
		}
		proof := groth16.NewProof(ecc.BN254)
		if err = readFrom(groth16ProofFile, proof); err != nil {
			return err
		}

		publicWitness, err := fullWitness.Public()
		if err != nil {
			return err
		}
		if err = groth16.Verify(proof, vk, publicWitness); err != nil {
			return fmt.Errorf("groth16 verify: %w", err)
		}
		log.Info().Msg("groth16 proof verified")
		return nil
	default:
		return fmt.Errorf(`unknown groth16 mode "%s"`, groth16Mode)
	}
}

type writerTo interface {
	WriteTo(w io.Writer) (int64, error)
}

type readerFrom interface {
	ReadFrom(r io.Reader) (int64, error)
}

func writeTo(path string, obj writerTo) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = obj.WriteTo(f)
	return err
}

func readFrom(path string, obj readerFrom) error {
	f, err := os.OpenFile(path, os.O_RDONLY, 0444)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = obj.ReadFrom(f)
	return err
}
