// Package sharing implements the additive three-party secret sharing the
// auction coordinator's tournament operates on: a value is split into
// three shares modulo a prime p whose sum reconstructs it, and any two
// shares alone are uniform and independent of the value.
//
// This is deliberately not a Shamir scheme with Lagrange interpolation: a
// sealed-bid tournament needs every server's share to reconstruct a value
// (3-of-3), not a t-of-n threshold, so there is no polynomial here — see
// DESIGN.md for why a polynomial secret-sharing scheme has no home in this
// module.
package sharing

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NumShares is the fixed number of servers the value is split across.
const NumShares = 3

// Shares is an additive share triple: (s1, s2, s3) with
// s1 + s2 + s3 ≡ value (mod p).
type Shares [NumShares]*big.Int

// Share splits v into NumShares additive shares modulo p. The first two
// shares are drawn uniformly from [0, p); the third is fixed so the triple
// reconstructs to v mod p. Any two shares alone reveal nothing about v.
func Share(v, p *big.Int) (Shares, error) {
	s1, err := rand.Int(rand.Reader, p)
	if err != nil {
		return Shares{}, fmt.Errorf("sharing: sampling share 1: [%v]", err)
	}
	s2, err := rand.Int(rand.Reader, p)
	if err != nil {
		return Shares{}, fmt.Errorf("sharing: sampling share 2: [%v]", err)
	}

	s3 := new(big.Int).Sub(v, s1)
	s3.Sub(s3, s2)
	s3.Mod(s3, p)
	if s3.Sign() < 0 {
		s3.Add(s3, p)
	}

	return Shares{s1, s2, s3}, nil
}

// Reconstruct sums the share triple modulo p, recovering the shared value.
func Reconstruct(shares Shares, p *big.Int) *big.Int {
	sum := big.NewInt(0)
	for _, s := range shares {
		sum.Add(sum, s)
	}
	return sum.Mod(sum, p)
}

// Sub computes the share-wise difference a - b (mod p), the building
// block the MPC tournament's comparison is defined over.
func Sub(a, b Shares, p *big.Int) Shares {
	var out Shares
	for i := range a {
		d := new(big.Int).Sub(a[i], b[i])
		d.Mod(d, p)
		if d.Sign() < 0 {
			d.Add(d, p)
		}
		out[i] = d
	}
	return out
}

// Valid reports whether every share lies in [0, p).
func (s Shares) Valid(p *big.Int) bool {
	for _, share := range s {
		if share == nil || share.Sign() < 0 || share.Cmp(p) >= 0 {
			return false
		}
	}
	return true
}
