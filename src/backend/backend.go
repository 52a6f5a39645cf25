// Package backend defines the pluggable Sloth implementation contract for
// the canonical 256-bit-prime, 4096-byte-piece configuration: an x86-64
// assembly-optimized backend must match the pure big.Int engine's
// Encode/Decode semantics exactly. Two implementations exist today:
// SoftwareBackend (always available) and OptimizedBackend, a stub that
// reports itself unavailable until real assembly lands.
package backend

import (
	"errors"

	"sloth-encode/src/sloth"
)

// PrimeSizeBytes and PieceSizeBytes fix the canonical configuration the
// backend contract is specified for (256-bit prime, 4096-byte piece).
const (
	PrimeSizeBytes = 32
	PieceSizeBytes = 4096
)

// ErrBackendUnavailable is returned by OptimizedBackend: no assembly
// implementation has been written for this build.
var ErrBackendUnavailable = errors.New("backend: optimized backend not available in this build")

// Backend is the contract every Sloth implementation for the canonical
// configuration must satisfy. Available reports whether Decode/Encode can
// actually be called; OptimizedBackend reports false until a real
// implementation exists.
type Backend interface {
	Available() bool
	Encode(piece *[PieceSizeBytes]byte, expandedIV [PrimeSizeBytes]byte, layers int) error
	Decode(piece *[PieceSizeBytes]byte, expandedIV [PrimeSizeBytes]byte, layers int) error
}

// SoftwareBackend implements Backend with the pure big.Int sloth.Engine.
type SoftwareBackend struct {
	engine *sloth.Engine
}

// NewSoftwareBackend constructs the default, always-available backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{engine: sloth.NewEngine(PrimeSizeBytes, PieceSizeBytes)}
}

func (b *SoftwareBackend) Available() bool { return true }

func (b *SoftwareBackend) Encode(piece *[PieceSizeBytes]byte, expandedIV [PrimeSizeBytes]byte, layers int) error {
	return b.engine.Encode(piece[:], expandedIV[:], layers)
}

func (b *SoftwareBackend) Decode(piece *[PieceSizeBytes]byte, expandedIV [PrimeSizeBytes]byte, layers int) error {
	b.engine.Decode(piece[:], expandedIV[:], layers)
	return nil
}

// OptimizedBackend is the placeholder for the x86-64 assembly-optimized
// implementation. It satisfies Backend so callers can select it
// interchangeably with SoftwareBackend, but every method fails with
// ErrBackendUnavailable until a real implementation is wired in.
type OptimizedBackend struct{}

// NewOptimizedBackend constructs the stub optimized backend.
func NewOptimizedBackend() *OptimizedBackend {
	return &OptimizedBackend{}
}

func (b *OptimizedBackend) Available() bool { return false }

func (b *OptimizedBackend) Encode(_ *[PieceSizeBytes]byte, _ [PrimeSizeBytes]byte, _ int) error {
	return ErrBackendUnavailable
}

func (b *OptimizedBackend) Decode(_ *[PieceSizeBytes]byte, _ [PrimeSizeBytes]byte, _ int) error {
	return ErrBackendUnavailable
}

var (
	_ Backend = (*SoftwareBackend)(nil)
	_ Backend = (*OptimizedBackend)(nil)
)
