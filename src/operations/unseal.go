package operations

import (
	"fmt"

	"sloth-encode/src/utils"
	"sloth-encode/src/vault"
)

// UnsealOptions contains all the parameters needed to unseal a file
// previously sealed by SealFile.
type UnsealOptions struct {
	InputFile  string
	OutputFile string
	KeyInput   string
}

// UnsealResult contains the results of the unseal operation.
type UnsealResult struct {
	InputFile     string
	OutputFile    string
	PlaintextSize int
}

// UnsealFile reverses SealFile: it recovers the salt stored at the front of
// the file, re-derives the key from the passphrase, and opens the
// ChaCha20-Poly1305 blob that follows.
func UnsealFile(opts UnsealOptions) (*UnsealResult, error) {
	blob, err := utils.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read sealed file: %v", err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("sealed file too short to contain a salt")
	}

	var salt [saltSize]byte
	copy(salt[:], blob[:saltSize])
	sealed := blob[saltSize:]

	passphrase, err := utils.ParseKeyInput(opts.KeyInput)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key input: %v", err)
	}
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("--key is required")
	}

	keyBytes := vault.DeriveKeyHash(passphrase, salt, vault.DefaultKDFParams, 32)
	var key [32]byte
	copy(key[:], keyBytes)

	plaintext, err := vault.Open(key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal (wrong passphrase?): %v", err)
	}

	if err := utils.WriteFile(opts.OutputFile, plaintext); err != nil {
		return nil, fmt.Errorf("failed to write unsealed file: %v", err)
	}

	return &UnsealResult{
		InputFile:     opts.InputFile,
		OutputFile:    opts.OutputFile,
		PlaintextSize: len(plaintext),
	}, nil
}
