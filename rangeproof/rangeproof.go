package rangeproof

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/curve"
	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/xhash"
)

// ErrStructureInvalid is returned when a proof does not carry exactly k
// bit commitments and k bit proofs for the claimed width k.
var ErrStructureInvalid = errors.New("rangeproof: structure invalid")

// ErrConsistencyInvalid is returned when the homomorphic consistency
// (Schnorr) proof over the bit decomposition fails.
var ErrConsistencyInvalid = errors.New("rangeproof: consistency proof invalid")

// Proof is a non-interactive proof that a Pedersen commitment opens to a
// value v with 0 <= v < 2^k: a bit commitment and OR-proof for each of the
// k bits, plus a Schnorr proof tying their weighted sum back to the
// original commitment.
type Proof struct {
	BitCommitments []curve.Point
	BitProofs      []*BitProof
	E, S           *big.Int
}

// Width returns k, the number of bits this proof claims the committed
// value fits in.
func (p *Proof) Width() int {
	return len(p.BitCommitments)
}

// Prove builds a range proof that v, committed as commitment =
// pedersen.Commit(v, randomness), satisfies 0 <= v < 2^width. The caller
// is responsible for pre-checking v against its declared bounds before
// calling Prove; Prove itself only rejects values that cannot be
// bit-decomposed into width bits at all.
func Prove(ctx *curve.Context, v, randomness *big.Int, width int) (*Proof, error) {
	if v.Sign() < 0 || v.BitLen() > width {
		return nil, fmt.Errorf("rangeproof: value does not fit in %d bits", width)
	}

	bitCommitments := make([]curve.Point, width)
	bitProofs := make([]*BitProof, width)
	rSum := big.NewInt(0)

	for i := 0; i < width; i++ {
		bit := int(v.Bit(i))

		ri, err := ctx.SampleScalar()
		if err != nil {
			return nil, fmt.Errorf("rangeproof: sampling bit randomness: [%v]", err)
		}

		ci := ctx.Commit(big.NewInt(int64(bit)), ri)
		bitCommitments[i] = ci

		proof, err := ProveBit(ctx, bit, ri, ci)
		if err != nil {
			return nil, fmt.Errorf("rangeproof: proving bit %d: [%v]", i, err)
		}
		bitProofs[i] = proof

		weight := new(big.Int).Lsh(big.NewInt(1), uint(i))
		rSum = ctx.ScalarAdd(rSum, ctx.ScalarMul(ri, weight))
	}

	deltaR := ctx.ScalarSub(randomness, rSum)

	cSum := weightedSum(ctx, bitCommitments)
	commitment := ctx.Commit(v, randomness)
	deltaC := ctx.Sub(commitment, cSum)

	k, err := ctx.SampleScalar()
	if err != nil {
		return nil, fmt.Errorf("rangeproof: sampling consistency nonce: [%v]", err)
	}
	r := ctx.ScalarMult(ctx.H(), k)
	e := consistencyChallenge(ctx, deltaC, r)
	s := ctx.ScalarAdd(k, ctx.ScalarMul(e, deltaR))

	return &Proof{BitCommitments: bitCommitments, BitProofs: bitProofs, E: e, S: s}, nil
}

// Verify checks a range proof against commitment, claiming a width-bit
// range. It returns the specific error kind on failure so callers can
// distinguish structural rejection from a failed bit proof or consistency
// check if they need to (the coordinator reports all three as a single
// rejected result).
func Verify(ctx *curve.Context, proof *Proof, commitment curve.Point, width int) error {
	if len(proof.BitCommitments) != width || len(proof.BitProofs) != width {
		return ErrStructureInvalid
	}

	for i, bc := range proof.BitCommitments {
		if !VerifyBit(ctx, bc, proof.BitProofs[i]) {
			return fmt.Errorf("%w: bit %d", ErrBitProofInvalid, i)
		}
	}

	cSum := weightedSum(ctx, proof.BitCommitments)
	deltaC := ctx.Sub(commitment, cSum)

	rPrime := ctx.Sub(ctx.ScalarMult(ctx.H(), proof.S), ctx.ScalarMult(deltaC, proof.E))
	if consistencyChallenge(ctx, deltaC, rPrime).Cmp(proof.E) != 0 {
		return ErrConsistencyInvalid
	}

	return nil
}

// weightedSum computes sum(2^i * C_i), the homomorphic recombination of
// the per-bit commitments.
func weightedSum(ctx *curve.Context, bitCommitments []curve.Point) curve.Point {
	sum := ctx.Identity()
	for i, ci := range bitCommitments {
		weight := new(big.Int).Lsh(big.NewInt(1), uint(i))
		sum = ctx.Add(sum, ctx.ScalarMult(ci, weight))
	}
	return sum
}

// consistencyChallenge computes e = hash_to_scalar(deltaC, R), tagged
// distinctly from the bit OR-proof's challenge so the two Sigma protocols'
// transcripts can never be confused for one another.
func consistencyChallenge(ctx *curve.Context, deltaC, r curve.Point) *big.Int {
	return xhash.ToScalar(
		xhash.TagConsistency,
		ctx.N(),
		xhash.Point(deltaC.X, deltaC.Y),
		xhash.Point(r.X, r.Y),
	)
}
