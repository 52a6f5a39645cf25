// Package types defines the on-disk binary format for a stored SLOTH/Spartan
// proof-of-replication encoding: a fixed header followed by variable-length
// fields, so a Proof bundles the parameters needed to reproduce and verify
// one Spartan encoding.
package types

// MaxPrimeSizeBytes is the largest supported prime size (B=512, the
// 4096-bit configuration); key hashes and IVs never exceed this length.
const MaxPrimeSizeBytes = 512

// PieceSizeBytes is the fixed genesis/encoding piece length.
const PieceSizeBytes = 4096

// CurrentVersion is the current proof file format version.
const CurrentVersion = 1

// Proof is the binary structure written by `sloth encode` and read by
// `sloth verify`/`sloth check`. It carries everything needed to reproduce
// the IV and re-run Decode against a genesis piece, plus the encoding
// itself.
type Proof struct {
	Version        uint32
	PrimeSizeBytes uint32 // B
	Rounds         uint64 // L, number of SLOTH layers applied
	KeyHash        []byte // B bytes
	Nonce          uint64
	Encoding       [PieceSizeBytes]byte
}

// Header is the fixed-size portion of Proof preceding KeyHash/Encoding;
// KeyHash's length depends on PrimeSizeBytes so it is framed with an
// explicit length prefix rather than folded into a fixed struct (see
// utils.WriteProof).
type Header struct {
	Version        uint32
	PrimeSizeBytes uint32
	Rounds         uint64
	Nonce          uint64
}

// HeaderSize is the size in bytes of the fixed Header fields as written to
// disk (version + prime size + rounds + nonce).
const HeaderSize = 4 + 4 + 8 + 8
