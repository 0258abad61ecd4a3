package main

import (
	"path/filepath"
	"testing"

	"Sha512Circuit/modules/fields"
	"Sha512Circuit/modules/reference"
	"Sha512Circuit/modules/sha512"
	"Sha512Circuit/modules/transcript"
	"Sha512Circuit/modules/witness"

	"github.com/stretchr/testify/require"
)

func withFlags(t *testing.T, msg, field string, commit bool) {
	oldMsg, oldField, oldCommit := messageHex, fieldName, commitMode
	t.Cleanup(func() {
		messageHex, fieldName, commitMode = oldMsg, oldField, oldCommit
	})
	messageHex, fieldName, commitMode = msg, field, commit
}

func TestLoadCircuitInputs(t *testing.T) {
	withFlags(t, "616263", "bn254", false)
	inputs, err := loadCircuitInputs()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), inputs.message)
	require.IsType(t, &sha512.Circuit{}, inputs.circuit)

	digest, err := witness.ParseDigest(inputs.assignment.(*sha512.Circuit).Digest)
	require.NoError(t, err)
	require.Equal(t, reference.SumTruncated([]byte("abc")), digest)

	withFlags(t, "616263", "bn254", true)
	inputs, err = loadCircuitInputs()
	require.NoError(t, err)
	require.IsType(t, &transcript.CommitmentCircuit{}, inputs.circuit)
}

func TestLoadCircuitInputsErrors(t *testing.T) {
	withFlags(t, "zz", "bn254", false)
	_, err := loadCircuitInputs()
	require.Error(t, err)

	withFlags(t, "00", "goldilocks", false)
	_, err = loadCircuitInputs()
	require.Error(t, err)
}

func TestNonNativeBackendsRejectM31(t *testing.T) {
	withFlags(t, "00", "m31", false)
	require.ErrorIs(t, Groth16Impl(), fields.ErrCapability)
	require.ErrorIs(t, PlonkImpl(), fields.ErrCapability)
}

func TestStats(t *testing.T) {
	withFlags(t, "000102030405060708090a0b0c0d0e0f", "bn254", true)
	require.NoError(t, StatsImpl())
}

func TestPlonkProveVerify(t *testing.T) {
	withFlags(t, "000102030405060708090a0b0c0d0e0f", "bn254", false)
	require.NoError(t, PlonkImpl())
}

func TestGroth16SetupProveVerify(t *testing.T) {
	withFlags(t, "000102030405060708090a0b0c0d0e0f", "bn254", false)

	oldPK, oldVK, oldProof, oldMode := groth16PKFile, groth16VKFile, groth16ProofFile, groth16Mode
	t.Cleanup(func() {
		groth16PKFile, groth16VKFile, groth16ProofFile, groth16Mode = oldPK, oldVK, oldProof, oldMode
	})
	dir := t.TempDir()
	groth16PKFile = filepath.Join(dir, "sha512.pk")
	groth16VKFile = filepath.Join(dir, "sha512.vk")
	groth16ProofFile = filepath.Join(dir, "sha512.proof")

	for _, mode := range []string{"setup", "prove", "verify"} {
		groth16Mode = mode
		require.NoError(t, Groth16Impl(), "groth16 %s", mode)
	}

	// same length, other message: the proof does not match its public digest
	withFlags(t, "ff0102030405060708090a0b0c0d0e0f", "bn254", false)
	require.Error(t, Groth16Impl())

	groth16Mode = "unknown"
	require.Error(t, Groth16Impl())
}
