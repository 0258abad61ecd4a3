package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/sha512"
	"Sha512Circuit/modules/transcript"
	"Sha512Circuit/modules/witness"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

var (
	messageHex string
	fieldName  string
	commitMode bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&messageHex, "message", "000102030405060708090a0b0c0d0e0f", "The hex encoded secret message to hash in circuit.")
	rootCmd.PersistentFlags().StringVar(&fieldName, "field", fields.ECCBN254.String(), "The field the circuit is built over.")
	rootCmd.PersistentFlags().BoolVar(&commitMode, "commit", false, "Expose a MiMC commitment of the hash state instead of the 512 digest bits.")

	rootCmd.AddCommand(statsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "sha512-circuit",
	Short: "Prove knowledge of a SHA-512 preimage with gnark",
	Long: `
Prove knowledge of a message hashing to a public digest.

NOTE: the gadget runs the first 16 SHA-512 rounds only, the digest it
proves is the truncated one and not the FIPS 180-4 digest.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print constraint counts of the SHA-512 circuit for both arithmetizations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return StatsImpl()
	},
}

// circuitInputs is the placeholder circuit and the assignment for the
// message given on the command line.
type circuitInputs struct {
	fieldEnum  fields.ECCFieldEnum
	message    []byte
	circuit    frontend.Circuit
	assignment frontend.Circuit
}

func loadCircuitInputs() (*circuitInputs, error) {
	log := logger.Logger()

	message, err := hex.DecodeString(messageHex)
	if err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}

	fieldEnum, err := fields.ParseFieldEnum(fieldName)
	if err != nil {
		return nil, err
	}

	msgLenBits := uint64(8 * len(message))
	inputs := &circuitInputs{fieldEnum: fieldEnum, message: message}
	var publicKey, publicValue string
	if commitMode {
		if inputs.circuit, err = transcript.NewCommitmentCircuit(fieldEnum, msgLenBits); err != nil {
			return nil, err
		}
		assignment := witness.NewCommitmentAssignment(fieldEnum, message)
		inputs.assignment = assignment
		publicKey, publicValue = "commitment", fmt.Sprint(assignment.Commitment)
	} else {
		if inputs.circuit, err = sha512.NewCircuit(fieldEnum, msgLenBits); err != nil {
			return nil, err
		}
		assignment := witness.NewHonestAssignment(fieldEnum, message)
		inputs.assignment = assignment

		digest, err := witness.ParseDigest(assignment.Digest)
		if err != nil {
			return nil, err
		}
		publicKey, publicValue = "digest", hex.EncodeToString(digest[:])
	}

	log.Info().
		Int("messageBytes", len(message)).
		Str("field", fieldEnum.String()).
		Bool("commit", commitMode).
		Str(publicKey, publicValue).
		Msg("circuit inputs loaded")

	return inputs, nil
}

func StatsImpl() error {
	log := logger.Logger()

	inputs, err := loadCircuitInputs()
	if err != nil {
		return err
	}
	modulus := inputs.fieldEnum.FieldModulus()

	r1csCS, err := frontend.Compile(modulus, r1cs.NewBuilder, inputs.circuit)
	if err != nil {
		return err
	}
	log.Info().
		Int("constraints", r1csCS.GetNbConstraints()).
		Int("internal", r1csCS.GetNbInternalVariables()).
		Int("secret", r1csCS.GetNbSecretVariables()).
		Int("public", r1csCS.GetNbPublicVariables()).
		Msg("r1cs")

	scsCS, err := frontend.Compile(modulus, scs.NewBuilder, inputs.circuit)
	if err != nil {
		return err
	}
	log.Info().
		Int("constraints", scsCS.GetNbConstraints()).
		Int("internal", scsCS.GetNbInternalVariables()).
		Int("secret", scsCS.GetNbSecretVariables()).
		Int("public", scsCS.GetNbPublicVariables()).
		Msg("plonkish")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
