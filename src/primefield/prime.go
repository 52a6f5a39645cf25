// Package primefield implements the prime selector and modular square-root
// permutation that underlie the SLOTH time-asymmetric permutation: a
// deterministic choice of field modulus p ≡ 3 (mod 4), and the pair of
// operations (π_p, π_p⁻¹) that are slow to compute forward and fast to
// invert.
package primefield

import (
	"math/big"
	"sync"
)

// millerRabinRounds is the number of Miller-Rabin rounds used by
// big.Int.ProbablyPrime when walking candidates down from 2^(8B)-1. The
// round count is part of the determinism contract: every deployment must
// agree on the same prime for a given size.
const millerRabinRounds = 25

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)

// canonical256BitPrime is the documented constant for B=32 (256-bit field),
// hardcoded so the canonical configuration never has to walk the prime
// search at construction time. Verified against LargestPrime(32) in
// prime_test.go.
const canonical256BitPrime = "115792089237316195423570985008687907853269984665640564039457584007913129639747"

var primeCache sync.Map // map[int]*big.Int, keyed by prime size in bytes

func init() {
	p, ok := new(big.Int).SetString(canonical256BitPrime, 10)
	if !ok {
		panic("primefield: failed to parse canonical 256-bit prime constant")
	}
	primeCache.Store(32, p)
}

// LargestPrime deterministically returns the largest integer p < 2^(8*primeSizeBytes)
// such that p is prime (with high probability, via Miller-Rabin) and p ≡ 3
// (mod 4). Results are cached per primeSizeBytes since the downward walk can
// take seconds for large B.
func LargestPrime(primeSizeBytes int) *big.Int {
	if cached, ok := primeCache.Load(primeSizeBytes); ok {
		return new(big.Int).Set(cached.(*big.Int))
	}

	bits := uint(primeSizeBytes * 8)
	c := new(big.Int).Lsh(bigOne, bits)
	c.Sub(c, bigOne)

	prevPrime(c)
	for new(big.Int).Mod(c, bigFour).Cmp(bigThree) != 0 {
		prevPrime(c)
	}

	primeCache.Store(primeSizeBytes, new(big.Int).Set(c))
	return c
}

// prevPrime walks c downward in place to the next smaller probable prime.
func prevPrime(c *big.Int) {
	if c.Bit(0) == 0 {
		c.Sub(c, bigOne)
	} else {
		c.Sub(c, bigTwo)
	}
	for !c.ProbablyPrime(millerRabinRounds) {
		c.Sub(c, bigTwo)
	}
}
