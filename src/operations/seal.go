package operations

import (
	"crypto/rand"
	"fmt"

	"sloth-encode/src/utils"
	"sloth-encode/src/vault"
)

const saltSize = 16

// SealOptions contains all the parameters needed to seal a local file
// (a cached genesis piece, a key material file) under a passphrase.
type SealOptions struct {
	InputFile  string
	OutputFile string
	KeyInput   string
}

// SealResult contains the results of the seal operation.
type SealResult struct {
	InputFile  string
	OutputFile string
	SealedSize int
}

// SealFile encrypts a local file at rest with a passphrase-derived key,
// using a freshly generated salt that is stored alongside the ciphertext.
func SealFile(opts SealOptions) (*SealResult, error) {
	plaintext, err := utils.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}

	passphrase, err := utils.ParseKeyInput(opts.KeyInput)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key input: %v", err)
	}
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("--key is required")
	}

	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %v", err)
	}

	keyBytes := vault.DeriveKeyHash(passphrase, salt, vault.DefaultKDFParams, 32)
	var key [32]byte
	copy(key[:], keyBytes)

	sealed, err := vault.Seal(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to seal: %v", err)
	}

	out := make([]byte, 0, len(salt)+len(sealed))
	out = append(out, salt[:]...)
	out = append(out, sealed...)

	if err := utils.WriteFile(opts.OutputFile, out); err != nil {
		return nil, fmt.Errorf("failed to write sealed file: %v", err)
	}

	return &SealResult{
		InputFile:  opts.InputFile,
		OutputFile: opts.OutputFile,
		SealedSize: len(out),
	}, nil
}
