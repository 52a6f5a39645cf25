// Package sloth implements the CBC-chained cascade of modular square-root
// permutations that make up the SLOTH time-asymmetric permutation: Encode
// chains π_p sequentially over every block of every layer, Decode (and its
// parallel variant) reverse the chain using the cheap inverse π_p⁻¹.
package sloth

import (
	"fmt"
	"math/big"
	"sync"

	"sloth-encode/src/primefield"
)

// Engine holds the immutable parameters for a single (prime size, piece
// size) configuration. Once constructed it may be shared freely across
// goroutines: Encode/Decode/DecodeParallel only read the Prime/Exponent and
// operate on caller-owned buffers.
type Engine struct {
	PrimeSizeBytes int
	PieceSizeBytes int
	Blocks         int // PieceSizeBytes / PrimeSizeBytes

	Prime    *big.Int
	Exponent *big.Int
}

// NewEngine constructs an Engine for the given (B, P) configuration. P must
// be an exact multiple of B; this is a programming-error contract, not a
// runtime error kind, so it panics rather than returning an error.
func NewEngine(primeSizeBytes, pieceSizeBytes int) *Engine {
	if primeSizeBytes <= 0 || pieceSizeBytes <= 0 {
		panic("sloth: prime and piece sizes must be positive")
	}
	if pieceSizeBytes%primeSizeBytes != 0 {
		panic(fmt.Sprintf("sloth: piece size %d is not a multiple of prime size %d", pieceSizeBytes, primeSizeBytes))
	}

	p := primefield.LargestPrime(primeSizeBytes)
	return &Engine{
		PrimeSizeBytes: primeSizeBytes,
		PieceSizeBytes: pieceSizeBytes,
		Blocks:         pieceSizeBytes / primeSizeBytes,
		Prime:          p,
		Exponent:       primefield.Exponent(p),
	}
}

// blockToInt parses a little-endian B-byte chunk into an unbounded integer
// (it may legally exceed the prime; that is checked by Permute).
func blockToInt(chunk []byte) *big.Int {
	return new(big.Int).SetBytes(reverse(chunk))
}

// writeBlock serializes x as exactly primeSizeBytes little-endian bytes,
// zero-padded, into dst.
func writeBlock(dst []byte, x *big.Int, primeSizeBytes int) {
	be := x.FillBytes(make([]byte, primeSizeBytes))
	for i, b := range be {
		dst[primeSizeBytes-1-i] = b
	}
}

// reverse returns a reversed copy of b (big.Int.SetBytes/FillBytes are
// big-endian; SLOTH's block encoding is little-endian).
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// parseBlocks splits piece into Blocks little-endian field-element integers.
func (e *Engine) parseBlocks(piece []byte) []*big.Int {
	blocks := make([]*big.Int, e.Blocks)
	for i := 0; i < e.Blocks; i++ {
		start := i * e.PrimeSizeBytes
		blocks[i] = blockToInt(piece[start : start+e.PrimeSizeBytes])
	}
	return blocks
}

// serializeBlocks writes blocks back into piece, each as PrimeSizeBytes
// little-endian bytes.
func (e *Engine) serializeBlocks(piece []byte, blocks []*big.Int) {
	for i, x := range blocks {
		start := i * e.PrimeSizeBytes
		writeBlock(piece[start:start+e.PrimeSizeBytes], x, e.PrimeSizeBytes)
	}
}

// Encode chains π_p across layers*Blocks field elements, feeding each
// block's output forward as the feedback for the next (CBC mode). iv seeds
// the feedback register for the very first block of layer 0.
//
// Encode is strictly sequential: the chain is a genuine data
// dependency and wall-clock time grows linearly in layers*Blocks
// irrespective of available cores.
//
// On ErrDataBiggerThanPrime the piece buffer is left exactly as it was
// passed in; callers must not rely on any partial progress.
func (e *Engine) Encode(piece []byte, iv []byte, layers int) error {
	return e.EncodeWithProgress(piece, iv, layers, nil)
}

// EncodeWithProgress is Encode with an optional onLayer callback invoked
// after each completed layer (onLayer(1) after the first, ...,
// onLayer(layers) after the last). Encode is a thin wrapper over this with
// onLayer set to nil; onLayer being nil costs one extra nil check per layer,
// no extra allocation. Intended for CLI progress reporting on the
// multi-second-to-hours encodes this design calls for; onLayer
// must not retain or mutate piece.
func (e *Engine) EncodeWithProgress(piece []byte, iv []byte, layers int, onLayer func(completedLayers int)) error {
	e.checkSizes(piece, iv)

	original := append([]byte(nil), piece...)
	blocks := e.parseBlocks(piece)
	feedback := blockToInt(iv)

	for l := 0; l < layers; l++ {
		for i := 0; i < e.Blocks; i++ {
			blocks[i].Xor(blocks[i], feedback)

			y, err := primefield.Permute(blocks[i], e.Prime, e.Exponent)
			if err != nil {
				copy(piece, original)
				return err
			}
			blocks[i] = y
			feedback = blocks[i]
		}
		if onLayer != nil {
			onLayer(l + 1)
		}
	}

	e.serializeBlocks(piece, blocks)
	return nil
}

// Decode reverses Encode sequentially. Within a layer the chain runs
// right-to-left: block i (i>0) uses the layer's own (still-untouched)
// ciphertext block i-1 as feedback; block 0 uses this same layer's last
// block, which the right-to-left pass has already decoded by the time
// block 0 is reached (or, for the final layer, nothing: the IV is XORed
// in once after all layers finish instead).
func (e *Engine) Decode(piece []byte, iv []byte, layers int) {
	e.checkSizes(piece, iv)

	blocks := e.parseBlocks(piece)

	for l := 0; l < layers; l++ {
		for i := e.Blocks - 1; i >= 1; i-- {
			x := primefield.InversePermute(blocks[i], e.Prime)
			x.Xor(x, blocks[i-1])
			blocks[i] = x
		}

		x0 := primefield.InversePermute(blocks[0], e.Prime)
		if l != layers-1 {
			x0.Xor(x0, blocks[e.Blocks-1])
		}
		blocks[0] = x0
	}

	ivInt := blockToInt(iv)
	blocks[0].Xor(blocks[0], ivInt)

	e.serializeBlocks(piece, blocks)
}

// DecodeParallel is equivalent byte-for-byte to Decode but evaluates blocks
// 1..Blocks-1 of each layer concurrently. Per layer it takes a read-only
// snapshot of the ciphertext before mutating anything, so that every
// worker reads blocks[i-1] from the snapshot rather than from a blocks
// slice another goroutine might be writing. Block 0 is always
// handled after the others for that layer, and layers remain sequential
// with respect to one another.
func (e *Engine) DecodeParallel(piece []byte, iv []byte, layers int) {
	e.checkSizes(piece, iv)

	blocks := e.parseBlocks(piece)

	for l := 0; l < layers; l++ {
		snapshot := make([]*big.Int, e.Blocks)
		copy(snapshot, blocks)

		var wg sync.WaitGroup
		for i := e.Blocks - 1; i >= 1; i-- {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				x := primefield.InversePermute(snapshot[i], e.Prime)
				x.Xor(x, snapshot[i-1])
				blocks[i] = x
			}(i)
		}
		wg.Wait()

		x0 := primefield.InversePermute(snapshot[0], e.Prime)
		if l != layers-1 {
			x0.Xor(x0, blocks[e.Blocks-1])
		}
		blocks[0] = x0
	}

	ivInt := blockToInt(iv)
	blocks[0].Xor(blocks[0], ivInt)

	e.serializeBlocks(piece, blocks)
}

func (e *Engine) checkSizes(piece, iv []byte) {
	if len(piece) != e.PieceSizeBytes {
		panic(fmt.Sprintf("sloth: piece has %d bytes, want %d", len(piece), e.PieceSizeBytes))
	}
	if len(iv) != e.PrimeSizeBytes {
		panic(fmt.Sprintf("sloth: iv has %d bytes, want %d", len(iv), e.PrimeSizeBytes))
	}
}
