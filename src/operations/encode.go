package operations

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"sloth-encode/src/spartan"
	"sloth-encode/src/types"
	"sloth-encode/src/utils"
)

// EncodeOptions contains all the parameters needed to produce a proof.
type EncodeOptions struct {
	GenesisFile    string
	OutputFile     string
	PrimeSizeBytes int
	Rounds         uint64
	Nonce          uint64
	HaveNonce      bool
	KeyInput       string
	KeyHashHex     string

	// OnLayer, if non-nil, is invoked after each completed SLOTH layer
	// during the encode, for CLI progress reporting on runs that take
	// seconds to hours.
	OnLayer func(completedLayers int)
}

// EncodeResult contains the results of the encode operation.
type EncodeResult struct {
	GenesisFile    string
	OutputFile     string
	PrimeSizeBytes int
	Rounds         uint64
	Nonce          uint64
	EncodingSize   int
}

// EncodeFile runs the SLOTH/Spartan permutation over a genesis piece and
// writes the resulting proof to disk.
func EncodeFile(opts EncodeOptions) (*EncodeResult, error) {
	genesis, err := utils.ReadFile(opts.GenesisFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis file: %v", err)
	}
	if len(genesis) != types.PieceSizeBytes {
		return nil, fmt.Errorf("genesis file must be exactly %d bytes, got %d", types.PieceSizeBytes, len(genesis))
	}

	keyHash, err := resolveKeyHash(opts.KeyInput, opts.KeyHashHex, opts.PrimeSizeBytes)
	if err != nil {
		return nil, err
	}

	nonce := opts.Nonce
	if !opts.HaveNonce {
		var nonceBytes [8]byte
		if _, err := rand.Read(nonceBytes[:]); err != nil {
			return nil, fmt.Errorf("failed to generate random nonce: %v", err)
		}
		nonce = binary.LittleEndian.Uint64(nonceBytes[:])
	}

	s := spartan.New(genesis, opts.PrimeSizeBytes, types.PieceSizeBytes)

	encoding, err := s.EncodeWithProgress(keyHash, nonce, int(opts.Rounds), opts.OnLayer)
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}

	proof := &types.Proof{
		Version:        types.CurrentVersion,
		PrimeSizeBytes: uint32(opts.PrimeSizeBytes),
		Rounds:         opts.Rounds,
		KeyHash:        keyHash,
		Nonce:          nonce,
	}
	copy(proof.Encoding[:], encoding)

	if err := utils.WriteProof(opts.OutputFile, proof); err != nil {
		return nil, fmt.Errorf("failed to write proof: %v", err)
	}

	return &EncodeResult{
		GenesisFile:    opts.GenesisFile,
		OutputFile:     opts.OutputFile,
		PrimeSizeBytes: opts.PrimeSizeBytes,
		Rounds:         opts.Rounds,
		Nonce:          nonce,
		EncodingSize:   len(encoding),
	}, nil
}

// resolveKeyHash derives a key_hash either directly from hex input or from a
// passphrase/keyfile via Argon2id with a zero salt, for callers that don't
// need a persisted, randomly-salted derivation (see the seal/unseal
// operations for that case).
func resolveKeyHash(keyInput, keyHashHex string, primeSizeBytes int) ([]byte, error) {
	if keyHashHex != "" {
		return utils.ParseKeyHashHex(keyHashHex, primeSizeBytes)
	}

	raw, err := utils.ParseKeyInput(keyInput)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key input: %v", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("either --key or --key-hash is required")
	}

	return derivePassphraseKeyHash(raw, primeSizeBytes), nil
}
