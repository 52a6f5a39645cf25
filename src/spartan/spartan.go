// Package spartan implements the Spartan wrapper around a SLOTH engine: it
// owns a fixed genesis piece, expands a (key_hash, nonce) pair into an IV,
// and drives Encode/IsValid(Parallel) against that genesis piece.
package spartan

import (
	"bytes"
	"fmt"

	"sloth-encode/src/sloth"
)

const nonceBytes = 8

// Spartan owns one SLOTH engine and one genesis piece for its lifetime.
// It is immutable after construction and safe for concurrent use.
type Spartan struct {
	engine  *sloth.Engine
	genesis []byte // length PieceSizeBytes
}

// New constructs a Spartan instance for the given prime size, holding
// genesis immutably for the lifetime of the returned value. genesis must be
// exactly pieceSizeBytes long.
func New(genesis []byte, primeSizeBytes, pieceSizeBytes int) *Spartan {
	if len(genesis) != pieceSizeBytes {
		panic(fmt.Sprintf("spartan: genesis piece has %d bytes, want %d", len(genesis), pieceSizeBytes))
	}
	return &Spartan{
		engine:  sloth.NewEngine(primeSizeBytes, pieceSizeBytes),
		genesis: append([]byte(nil), genesis...),
	}
}

// expandIV derives the B-byte feedback seed from a B-byte key hash by
// XORing the 64-bit little-endian nonce, most-significant nonce byte
// first, into the trailing min(8,B) bytes of the key hash.
func expandIV(keyHash []byte, nonce uint64) []byte {
	iv := append([]byte(nil), keyHash...)
	b := len(iv)

	n := b
	if n > nonceBytes {
		n = nonceBytes
	}

	var nonceLE [nonceBytes]byte
	for i := 0; i < nonceBytes; i++ {
		nonceLE[i] = byte(nonce >> (8 * i))
	}

	for i := 0; i < n; i++ {
		iv[b-1-i] ^= nonceLE[nonceBytes-1-i]
	}
	return iv
}

// Encode derives the IV from (keyHash, nonce), copies the genesis piece
// into a fresh buffer, and runs the SLOTH engine's Encode over it for
// rounds layers.
func (s *Spartan) Encode(keyHash []byte, nonce uint64, rounds int) ([]byte, error) {
	return s.EncodeWithProgress(keyHash, nonce, rounds, nil)
}

// EncodeWithProgress is Encode, reporting completed layers via onLayer as
// the engine's sequential chain progresses. See sloth.Engine.EncodeWithProgress.
func (s *Spartan) EncodeWithProgress(keyHash []byte, nonce uint64, rounds int, onLayer func(completedLayers int)) ([]byte, error) {
	iv := expandIV(keyHash, nonce)
	encoding := append([]byte(nil), s.genesis...)
	if err := s.engine.EncodeWithProgress(encoding, iv, rounds, onLayer); err != nil {
		return nil, err
	}
	return encoding, nil
}

// IsValid derives the IV identically to Encode, decodes a copy of encoding
// sequentially, and reports whether the result matches the genesis piece
// byte-for-byte.
func (s *Spartan) IsValid(encoding, keyHash []byte, nonce uint64, rounds int) bool {
	iv := expandIV(keyHash, nonce)
	decoded := append([]byte(nil), encoding...)
	s.engine.Decode(decoded, iv, rounds)
	return bytes.Equal(decoded, s.genesis)
}

// IsValidParallel is IsValid but using the engine's parallel decoder. It
// must produce the identical boolean result as IsValid for any input.
func (s *Spartan) IsValidParallel(encoding, keyHash []byte, nonce uint64, rounds int) bool {
	iv := expandIV(keyHash, nonce)
	decoded := append([]byte(nil), encoding...)
	s.engine.DecodeParallel(decoded, iv, rounds)
	return bytes.Equal(decoded, s.genesis)
}
