package operations

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeRandomGenesis(t *testing.T, dir string) string {
	t.Helper()
	genesis := make([]byte, 4096)
	if _, err := rand.Read(genesis); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	path := filepath.Join(dir, "genesis.bin")
	if err := os.WriteFile(path, genesis, 0644); err != nil {
		t.Fatalf("failed to write genesis file: %v", err)
	}
	return path
}

func TestEncodeVerifyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	genesisFile := writeRandomGenesis(t, dir)
	proofFile := filepath.Join(dir, "proof.bin")

	encRes, err := EncodeFile(EncodeOptions{
		GenesisFile:    genesisFile,
		OutputFile:     proofFile,
		PrimeSizeBytes: 32,
		Rounds:         2,
		KeyInput:       "a test passphrase",
	})
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if encRes.EncodingSize != 4096 {
		t.Fatalf("unexpected encoding size: %d", encRes.EncodingSize)
	}

	verRes, err := VerifyFile(VerifyOptions{ProofFile: proofFile, GenesisFile: genesisFile})
	if err != nil {
		t.Fatalf("VerifyFile failed: %v", err)
	}
	if !verRes.Valid {
		t.Fatalf("expected a freshly encoded proof to verify")
	}

	verResParallel, err := VerifyFile(VerifyOptions{ProofFile: proofFile, GenesisFile: genesisFile, Parallel: true})
	if err != nil {
		t.Fatalf("VerifyFile (parallel) failed: %v", err)
	}
	if !verResParallel.Valid {
		t.Fatalf("expected parallel verification to agree with sequential")
	}
}

func TestVerifyRejectsWrongGenesis(t *testing.T) {
	dir := t.TempDir()
	genesisFile := writeRandomGenesis(t, dir)
	otherGenesisFile := writeRandomGenesis(t, t.TempDir())
	proofFile := filepath.Join(dir, "proof.bin")

	if _, err := EncodeFile(EncodeOptions{
		GenesisFile:    genesisFile,
		OutputFile:     proofFile,
		PrimeSizeBytes: 32,
		Rounds:         1,
		KeyInput:       "passphrase",
	}); err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	verRes, err := VerifyFile(VerifyOptions{ProofFile: proofFile, GenesisFile: otherGenesisFile})
	if err != nil {
		t.Fatalf("VerifyFile failed: %v", err)
	}
	if verRes.Valid {
		t.Fatalf("expected verification against the wrong genesis piece to fail")
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	genesisFile := writeRandomGenesis(t, dir)
	proofFile := filepath.Join(dir, "proof.bin")

	if _, err := EncodeFile(EncodeOptions{
		GenesisFile:    genesisFile,
		OutputFile:     proofFile,
		PrimeSizeBytes: 32,
		Rounds:         5,
		KeyInput:       "passphrase",
	}); err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	res, err := CheckFile(CheckOptions{InputFile: proofFile})
	if err != nil {
		t.Fatalf("CheckFile failed: %v", err)
	}
	if res.Rounds != 5 {
		t.Fatalf("Rounds = %d, want 5", res.Rounds)
	}
	if res.PrimeSizeBytes != 32 {
		t.Fatalf("PrimeSizeBytes = %d, want 32", res.PrimeSizeBytes)
	}
	if res.KeyHashHex == "" {
		t.Fatalf("expected a non-empty key hash hex")
	}
}

func TestSealUnsealRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "secret.txt")
	sealedFile := filepath.Join(dir, "secret.sealed")
	recoveredFile := filepath.Join(dir, "secret.recovered")

	plaintext := []byte("a cached genesis piece or local credential")
	if err := os.WriteFile(inputFile, plaintext, 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	if _, err := SealFile(SealOptions{InputFile: inputFile, OutputFile: sealedFile, KeyInput: "correct horse"}); err != nil {
		t.Fatalf("SealFile failed: %v", err)
	}

	if _, err := UnsealFile(UnsealOptions{InputFile: sealedFile, OutputFile: recoveredFile, KeyInput: "correct horse"}); err != nil {
		t.Fatalf("UnsealFile failed: %v", err)
	}

	recovered, err := os.ReadFile(recoveredFile)
	if err != nil {
		t.Fatalf("failed to read recovered file: %v", err)
	}
	if string(recovered) != string(plaintext) {
		t.Fatalf("recovered plaintext mismatch: got %q, want %q", recovered, plaintext)
	}

	if _, err := UnsealFile(UnsealOptions{InputFile: sealedFile, OutputFile: recoveredFile, KeyInput: "wrong passphrase"}); err == nil {
		t.Fatalf("expected UnsealFile to fail with the wrong passphrase")
	}
}

func TestRunBenchmarkSanity(t *testing.T) {
	res, err := RunBenchmark(BenchmarkOptions{
		Duration:       20 * time.Millisecond,
		Samples:        1,
		PrimeSizeBytes: 32,
	})
	if err != nil {
		t.Fatalf("RunBenchmark failed: %v", err)
	}
	if res.TotalOps == 0 {
		t.Fatalf("expected at least one permutation to have run")
	}
	if len(res.TimeEstimates) == 0 {
		t.Fatalf("expected time estimates")
	}
}
