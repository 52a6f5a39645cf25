package operations

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"sloth-encode/src/types"
	"sloth-encode/src/utils"
)

// testRounds is a small round count used across tests that only care about
// the encode/verify/seal pipeline, not timing.
const testRounds = 4

// sampleKeyHashHex is a fixed 32-byte hex key hash reused across tests that
// don't care about a specific value.
const sampleKeyHashHex = "0011223344556677889900112233445566778899001122334455667788990011"

// testFixture is a named genesis-piece byte pattern, always exactly
// types.PieceSizeBytes long.
type testFixture struct {
	Name string
	Data []byte
}

// testFixtures returns a handful of genesis piece patterns exercising
// different byte distributions: the permutation primitive's branch taken
// (Jacobi residue vs non-residue) and its occasional DataBiggerThanPrime
// rejection both depend on the actual byte values, not just their length.
func testFixtures(t *testing.T) []testFixture {
	t.Helper()
	return []testFixture{
		{Name: "all_zeros", Data: make([]byte, types.PieceSizeBytes)},
		{Name: "all_ones", Data: bytes.Repeat([]byte{0xFF}, types.PieceSizeBytes)},
		{Name: "repeating_text", Data: repeatToSize([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), types.PieceSizeBytes)},
		{Name: "unicode_text", Data: repeatToSize([]byte("Hello world! Testing unicode: αβγδε ñáéíóú "), types.PieceSizeBytes)},
		{Name: "random_binary", Data: randomBytes(t, types.PieceSizeBytes)},
		{Name: "ascending_bytes", Data: ascendingBytes(types.PieceSizeBytes)},
	}
}

func repeatToSize(pattern []byte, size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}

func ascendingBytes(size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(i % 256)
	}
	return out
}

func randomBytes(t *testing.T, size int) []byte {
	t.Helper()
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	return data
}

func createTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := utils.WriteFile(path, content); err != nil {
		t.Fatalf("failed to create temp file %s: %v", path, err)
	}
	return path
}

func createTempKeyFile(t *testing.T, key string) string {
	return createTempFile(t, "keyfile.txt", []byte(key))
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("expected file %s to exist, but it doesn't", path)
	}
}

func assertBytesEqual(t *testing.T, expected, actual []byte, context string) {
	t.Helper()
	if !bytes.Equal(expected, actual) {
		t.Fatalf("%s: data mismatch (%d bytes vs %d bytes)", context, len(expected), len(actual))
	}
}

// readProofEncoding reads a proof file and returns just its Encoding bytes.
func readProofEncoding(t *testing.T, path string) ([]byte, error) {
	t.Helper()
	proof, err := utils.ReadProof(path)
	if err != nil {
		return nil, err
	}
	return proof.Encoding[:], nil
}
