// Package pedersen implements the commitment scheme the auction binds
// bidders to their bids with: C = v·G + r·H in a prime-order group where
// log_G(H) is unknown. The scheme is perfectly hiding in r and
// computationally binding under the discrete-log assumption relating G
// and H.
//
// See [Ped91b]: T. Pedersen, "Non-interactive and information-theoretic
// secure verifiable secret sharing", CRYPTO '91.
package pedersen

import (
	"math/big"

	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/curve"
)

// Commit computes C = v·G + r·H for the given context.
func Commit(ctx *curve.Context, v, r *big.Int) curve.Point {
	return ctx.Commit(v, r)
}

// Equal recomputes the commitment to (v, r) and checks it against C.
func Equal(ctx *curve.Context, c curve.Point, v, r *big.Int) bool {
	return c.Equal(Commit(ctx, v, r))
}

// Add exploits the additive homomorphism of the scheme:
// commit(v1,r1) + commit(v2,r2) = commit(v1+v2, r1+r2).
func Add(ctx *curve.Context, a, b curve.Point) curve.Point {
	return ctx.Add(a, b)
}

// Shift computes C - commit(offset, 0), recentering a commitment to v onto
// a commitment to (v - offset) with the same randomness. The range proof
// uses this to verify a bid against an interval that doesn't start at
// zero: commit(v, r) - commit(min_bid, 0) = commit(v - min_bid, r).
func Shift(ctx *curve.Context, c curve.Point, offset *big.Int) curve.Point {
	offsetCommitment := Commit(ctx, offset, big.NewInt(0))
	return ctx.Sub(c, offsetCommitment)
}
