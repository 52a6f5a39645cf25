package primefield

import (
	"errors"
	"math/big"
)

// ErrDataBiggerThanPrime is returned by Permute when given an input that is
// not a legal field element, i.e. x >= p. This is the only error kind the
// permutation primitive raises; InversePermute never fails.
var ErrDataBiggerThanPrime = errors.New("primefield: data bigger than prime")

// Exponent returns e = (p+1)/4, the exponent used by the modular
// square-root permutation. Exact because p ≡ 3 (mod 4) implies p+1 is
// divisible by 4.
func Exponent(p *big.Int) *big.Int {
	e := new(big.Int).Add(p, bigOne)
	e.Rsh(e, 2)
	return e
}

// Permute computes π_p(x): the slow, modular square-root permutation.
//
// x must satisfy 0 <= x < p; ErrDataBiggerThanPrime is returned otherwise.
// The branch taken (quadratic residue vs non-residue) is canonicalized so
// that the residue branch always produces an even result and the
// non-residue branch always produces an odd one. This parity is the one-bit
// oracle InversePermute relies on; changing it silently breaks decoding.
func Permute(x, p, e *big.Int) (*big.Int, error) {
	if x.Cmp(p) >= 0 {
		return nil, ErrDataBiggerThanPrime
	}

	var y *big.Int
	if big.Jacobi(x, p) == 1 {
		y = new(big.Int).Exp(x, e, p)
		if y.Bit(0) == 1 {
			y.Sub(p, y)
		}
	} else {
		u := new(big.Int).Sub(p, x)
		y = new(big.Int).Exp(u, e, p)
		if y.Bit(0) == 0 {
			y.Sub(p, y)
		}
	}
	return y, nil
}

// InversePermute computes π_p⁻¹(y): the fast inverse, a single modular
// squaring disambiguated by the parity of y. Accepts any y and always
// succeeds; the result is in [0, p), except that an odd multiple of p
// (such as y = p) maps to p itself.
func InversePermute(y, p *big.Int) *big.Int {
	odd := y.Bit(0) == 1
	s := new(big.Int).Mul(y, y)
	s.Mod(s, p)
	if odd {
		s.Sub(p, s)
	}
	return s
}
