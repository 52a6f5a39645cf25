package operations

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeErrorHandling(t *testing.T) {
	t.Run("nonexistent_genesis_file", func(t *testing.T) {
		_, err := EncodeFile(EncodeOptions{
			GenesisFile:    "/nonexistent/genesis.bin",
			OutputFile:     filepath.Join(t.TempDir(), "proof.bin"),
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
			KeyInput:       "passphrase",
		})
		if err == nil {
			t.Fatal("expected error for nonexistent genesis file")
		}
		if !strings.Contains(err.Error(), "failed to read genesis file") {
			t.Errorf("expected 'failed to read genesis file' error, got: %v", err)
		}
	})

	t.Run("wrong_size_genesis_file", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", []byte("too short"))

		_, err := EncodeFile(EncodeOptions{
			GenesisFile:    genesisFile,
			OutputFile:     filepath.Join(t.TempDir(), "proof.bin"),
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
			KeyInput:       "passphrase",
		})
		if err == nil {
			t.Fatal("expected error for a genesis file of the wrong size")
		}
		if !strings.Contains(err.Error(), "4096 bytes") {
			t.Errorf("expected a size mismatch error, got: %v", err)
		}
	})

	t.Run("missing_key_and_key_hash", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)

		_, err := EncodeFile(EncodeOptions{
			GenesisFile:    genesisFile,
			OutputFile:     filepath.Join(t.TempDir(), "proof.bin"),
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
		})
		if err == nil {
			t.Fatal("expected error when neither --key nor --key-hash is supplied")
		}
		if !strings.Contains(err.Error(), "--key or --key-hash is required") {
			t.Errorf("expected a key-required error, got: %v", err)
		}
	})

	t.Run("invalid_key_file", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)

		_, err := EncodeFile(EncodeOptions{
			GenesisFile:    genesisFile,
			OutputFile:     filepath.Join(t.TempDir(), "proof.bin"),
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
			KeyInput:       "@file:/nonexistent/keyfile.txt",
		})
		if err == nil {
			t.Fatal("expected error for nonexistent key file")
		}
		if !strings.Contains(err.Error(), "failed to parse key input") {
			t.Errorf("expected 'failed to parse key input' error, got: %v", err)
		}
	})

	t.Run("malformed_key_hash_hex", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)

		_, err := EncodeFile(EncodeOptions{
			GenesisFile:    genesisFile,
			OutputFile:     filepath.Join(t.TempDir(), "proof.bin"),
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
			KeyHashHex:     "not-valid-hex",
		})
		if err == nil {
			t.Fatal("expected error for malformed key hash hex")
		}
	})

	t.Run("wrong_length_key_hash", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)

		_, err := EncodeFile(EncodeOptions{
			GenesisFile:    genesisFile,
			OutputFile:     filepath.Join(t.TempDir(), "proof.bin"),
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
			KeyHashHex:     "aabb", // 2 bytes, not 32
		})
		if err == nil {
			t.Fatal("expected error for a key hash of the wrong length")
		}
	})
}

func TestVerifyErrorHandling(t *testing.T) {
	t.Run("nonexistent_proof_file", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)

		_, err := VerifyFile(VerifyOptions{ProofFile: "/nonexistent/proof.bin", GenesisFile: genesisFile})
		if err == nil {
			t.Fatal("expected error for nonexistent proof file")
		}
		if !strings.Contains(err.Error(), "failed to read proof") {
			t.Errorf("expected 'failed to read proof' error, got: %v", err)
		}
	})

	t.Run("nonexistent_genesis_file", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)
		proofFile := filepath.Join(t.TempDir(), "proof.bin")

		if _, err := EncodeFile(EncodeOptions{
			GenesisFile:    genesisFile,
			OutputFile:     proofFile,
			PrimeSizeBytes: 32,
			Rounds:         testRounds,
			KeyInput:       "passphrase",
		}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		_, err := VerifyFile(VerifyOptions{ProofFile: proofFile, GenesisFile: "/nonexistent/genesis.bin"})
		if err == nil {
			t.Fatal("expected error for nonexistent genesis file")
		}
	})

	t.Run("corrupted_proof_file", func(t *testing.T) {
		genesisFile := createTempFile(t, "genesis.bin", testFixtures(t)[0].Data)
		corruptedFile := createTempFile(t, "corrupted.proof", []byte("not a valid proof file"))

		_, err := VerifyFile(VerifyOptions{ProofFile: corruptedFile, GenesisFile: genesisFile})
		if err == nil {
			t.Fatal("expected error for a corrupted proof file")
		}
	})
}

func TestSealUnsealErrorHandling(t *testing.T) {
	t.Run("wrong_passphrase", func(t *testing.T) {
		inputFile := createTempFile(t, "secret.txt", []byte("secret data"))
		sealedFile := filepath.Join(t.TempDir(), "secret.sealed")

		if _, err := SealFile(SealOptions{InputFile: inputFile, OutputFile: sealedFile, KeyInput: "correct passphrase"}); err != nil {
			t.Fatalf("SealFile failed: %v", err)
		}

		_, err := UnsealFile(UnsealOptions{
			InputFile:  sealedFile,
			OutputFile: filepath.Join(t.TempDir(), "secret.txt"),
			KeyInput:   "wrong passphrase",
		})
		if err == nil {
			t.Fatal("expected error for wrong passphrase")
		}
	})

	t.Run("missing_passphrase", func(t *testing.T) {
		inputFile := createTempFile(t, "secret.txt", []byte("secret data"))

		_, err := SealFile(SealOptions{InputFile: inputFile, OutputFile: filepath.Join(t.TempDir(), "secret.sealed")})
		if err == nil {
			t.Fatal("expected error when --key is missing")
		}
	})
}
