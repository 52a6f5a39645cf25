package utils

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"sloth-encode/src/types"
)

// ReadFile reads the entire contents of a file
func ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile writes data to a file, creating it if necessary
func WriteFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0644)
}

// WriteProof writes a types.Proof to disk in binary format: a fixed header,
// a length-prefixed key hash (its length varies with PrimeSizeBytes), then
// the fixed-size encoding.
func WriteProof(filename string, p *types.Proof) error {
	var buf bytes.Buffer

	header := types.Header{
		Version:        p.Version,
		PrimeSizeBytes: p.PrimeSizeBytes,
		Rounds:         p.Rounds,
		Nonce:          p.Nonce,
	}
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return err
	}

	keyHashLen := uint32(len(p.KeyHash))
	if err := binary.Write(&buf, binary.LittleEndian, keyHashLen); err != nil {
		return err
	}
	if _, err := buf.Write(p.KeyHash); err != nil {
		return err
	}

	if err := binary.Write(&buf, binary.LittleEndian, p.Encoding); err != nil {
		return err
	}

	return WriteFile(filename, buf.Bytes())
}

// ReadProof reads a types.Proof previously written by WriteProof.
func ReadProof(filename string) (*types.Proof, error) {
	data, err := ReadFile(filename)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(data)
	p := &types.Proof{}

	var header types.Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading proof header: %w", err)
	}
	p.Version = header.Version
	p.PrimeSizeBytes = header.PrimeSizeBytes
	p.Rounds = header.Rounds
	p.Nonce = header.Nonce

	var keyHashLen uint32
	if err := binary.Read(r, binary.LittleEndian, &keyHashLen); err != nil {
		return nil, fmt.Errorf("reading key hash length: %w", err)
	}
	if keyHashLen > types.MaxPrimeSizeBytes {
		return nil, fmt.Errorf("key hash length %d exceeds maximum %d", keyHashLen, types.MaxPrimeSizeBytes)
	}
	p.KeyHash = make([]byte, keyHashLen)
	if _, err := io.ReadFull(r, p.KeyHash); err != nil {
		return nil, fmt.Errorf("reading key hash: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &p.Encoding); err != nil {
		return nil, fmt.Errorf("reading encoding: %w", err)
	}

	return p, nil
}

// keyFilePrefix marks a --key argument that names a file holding the
// passphrase instead of carrying it inline.
const keyFilePrefix = "@file:"

// ParseKeyInput resolves a --key argument: empty yields nil, a
// "@file:path" argument reads the named file, anything else is the
// passphrase bytes themselves.
func ParseKeyInput(keyInput string) ([]byte, error) {
	if keyInput == "" {
		return nil, nil
	}
	if path, ok := strings.CutPrefix(keyInput, keyFilePrefix); ok {
		return ReadFile(path)
	}
	return []byte(keyInput), nil
}

// ParseKeyHashHex decodes a hex-encoded key hash of exactly primeSizeBytes
// bytes, as accepted by --key-hash.
func ParseKeyHashHex(s string, primeSizeBytes int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --key-hash hex: %w", err)
	}
	if len(b) != primeSizeBytes {
		return nil, fmt.Errorf("--key-hash must be exactly %d bytes (%d hex chars), got %d bytes", primeSizeBytes, primeSizeBytes*2, len(b))
	}
	return b, nil
}
