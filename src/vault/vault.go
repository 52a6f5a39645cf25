// Package vault provides the local, out-of-core-contract conveniences the
// Sloth/Spartan core itself deliberately does not offer: turning a human
// passphrase into a key_hash via Argon2id, and sealing/opening a locally
// cached genesis piece or proof-attempt log with ChaCha20-Poly1305. Key
// derivation and data confidentiality are both outside the core
// permutation's contract; this package is the CLI-side convenience layer.
package vault

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// KDFParams holds the Argon2id cost parameters used by DeriveKeyHash.
type KDFParams struct {
	Memory      uint32 // KiB
	Time        uint32 // iterations
	Parallelism uint8
}

// DefaultKDFParams are conservative interactive-use defaults.
var DefaultKDFParams = KDFParams{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 1,
}

const saltBytes = 16

// NewSalt returns a fresh random 16-byte salt for DeriveKeyHash.
func NewSalt() ([saltBytes]byte, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return salt, err
	}
	return salt, nil
}

// DeriveKeyHash derives a keyLen-byte key_hash from a passphrase and salt
// using Argon2id. keyLen is normally the Sloth prime size B, since the
// Spartan wrapper expects a B-byte key_hash.
func DeriveKeyHash(passphrase []byte, salt [saltBytes]byte, params KDFParams, keyLen int) []byte {
	return argon2.IDKey(passphrase, salt[:], params.Time, params.Memory, params.Parallelism, uint32(keyLen))
}

// ErrSealedBlobTooShort is returned by Open when the input is shorter than
// a nonce, meaning it cannot possibly be a value Seal produced.
var ErrSealedBlobTooShort = errors.New("vault: sealed blob shorter than a nonce")

// Seal encrypts plaintext under a 32-byte key with ChaCha20-Poly1305,
// returning nonce||ciphertext||tag. Used to protect a locally cached
// genesis piece or proof-attempt log at rest; it has no bearing on the
// core's encode/decode contract.
func Seal(key [32]byte, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal, verifying the authentication tag before returning
// the plaintext.
func Open(key [32]byte, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}

	if len(sealed) < aead.NonceSize() {
		return nil, ErrSealedBlobTooShort
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}
