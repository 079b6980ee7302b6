// Package wire implements the canonical cross-implementation encoding:
// group elements as 33-byte compressed SEC1, scalars as 32-byte
// big-endian, lists length-prefixed with a 32-bit big-endian count. This
// generalizes a fixed-width point/scalar encoding helper from a single
// commitment-list shape to the two list types a registration package's
// proof carries (bit commitments, bit proofs), plus the fixed-arity share
// triple, which is encoded without a length prefix.
package wire

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/Comprehensive-Wall28/private-sealed-bid/errs"
	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/curve"
	"github.com/Comprehensive-Wall28/private-sealed-bid/rangeproof"
)

// ScalarSize is the fixed width of a canonically encoded scalar.
const ScalarSize = 32

// EncodeScalar serializes s to a 32-byte big-endian field. s must already
// be reduced into [0, n) by the caller (curve.Context.ReduceScalar).
func EncodeScalar(s *big.Int) []byte {
	b := make([]byte, ScalarSize)
	s.FillBytes(b)
	return b
}

// DecodeScalar parses a 32-byte big-endian field back into a scalar,
// rejecting anything not exactly ScalarSize bytes long.
func DecodeScalar(b []byte) (*big.Int, error) {
	if len(b) != ScalarSize {
		return nil, errs.ErrInvalidScalar
	}
	return new(big.Int).SetBytes(b), nil
}

// appendLengthPrefixedCount appends a 32-bit big-endian count to b.
func appendLengthPrefixedCount(b []byte, count int) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(count))
}

// EncodeProof serializes a range proof to its canonical wire form: a
// length-prefixed list of bit commitments, a length-prefixed list of bit
// proofs (each four scalars), then the fixed-size consistency pair.
func EncodeProof(ctx *curve.Context, proof *rangeproof.Proof) []byte {
	out := appendLengthPrefixedCount(nil, len(proof.BitCommitments))
	for _, bc := range proof.BitCommitments {
		out = append(out, ctx.EncodePoint(bc)...)
	}

	out = appendLengthPrefixedCount(out, len(proof.BitProofs))
	for _, bp := range proof.BitProofs {
		out = append(out, EncodeScalar(bp.C0)...)
		out = append(out, EncodeScalar(bp.C1)...)
		out = append(out, EncodeScalar(bp.Z0)...)
		out = append(out, EncodeScalar(bp.Z1)...)
	}

	out = append(out, EncodeScalar(proof.E)...)
	out = append(out, EncodeScalar(proof.S)...)
	return out
}

// DecodeProof parses a canonical-form range proof, enforcing exact arity:
// the bit-commitment count and bit-proof count must agree, matching
// StructureInvalid's role in the verifier.
func DecodeProof(ctx *curve.Context, b []byte) (*rangeproof.Proof, error) {
	const pointSize = 33
	const bitProofSize = 4 * ScalarSize

	if len(b) < 4 {
		return nil, rangeproof.ErrStructureInvalid
	}
	numCommitments := int(binary.BigEndian.Uint32(b[:4]))
	b = b[4:]

	bitCommitments := make([]curve.Point, numCommitments)
	for i := 0; i < numCommitments; i++ {
		if len(b) < pointSize {
			return nil, rangeproof.ErrStructureInvalid
		}
		p, err := ctx.DecodePoint(b[:pointSize])
		if err != nil {
			return nil, fmt.Errorf("wire: decoding bit commitment %d: [%w]", i, err)
		}
		bitCommitments[i] = p
		b = b[pointSize:]
	}

	if len(b) < 4 {
		return nil, rangeproof.ErrStructureInvalid
	}
	numProofs := int(binary.BigEndian.Uint32(b[:4]))
	b = b[4:]
	if numProofs != numCommitments {
		return nil, rangeproof.ErrStructureInvalid
	}

	bitProofs := make([]*rangeproof.BitProof, numProofs)
	for i := 0; i < numProofs; i++ {
		if len(b) < bitProofSize {
			return nil, rangeproof.ErrStructureInvalid
		}
		c0, _ := DecodeScalar(b[0*ScalarSize : 1*ScalarSize])
		c1, _ := DecodeScalar(b[1*ScalarSize : 2*ScalarSize])
		z0, _ := DecodeScalar(b[2*ScalarSize : 3*ScalarSize])
		z1, _ := DecodeScalar(b[3*ScalarSize : 4*ScalarSize])
		bitProofs[i] = &rangeproof.BitProof{C0: c0, C1: c1, Z0: z0, Z1: z1}
		b = b[bitProofSize:]
	}

	if len(b) != 2*ScalarSize {
		return nil, rangeproof.ErrStructureInvalid
	}
	e, err := DecodeScalar(b[:ScalarSize])
	if err != nil {
		return nil, err
	}
	s, err := DecodeScalar(b[ScalarSize:])
	if err != nil {
		return nil, err
	}

	return &rangeproof.Proof{BitCommitments: bitCommitments, BitProofs: bitProofs, E: e, S: s}, nil
}

// EncodeShares serializes a share triple as three consecutive 32-byte
// big-endian scalars (no length prefix: the arity is fixed at
// sharing.NumShares).
func EncodeShares(shares [3]*big.Int) []byte {
	out := make([]byte, 0, 3*ScalarSize)
	for _, s := range shares {
		out = append(out, EncodeScalar(s)...)
	}
	return out
}

// DecodeShares parses a fixed 3*32-byte share triple.
func DecodeShares(b []byte) ([3]*big.Int, error) {
	var out [3]*big.Int
	if len(b) != 3*ScalarSize {
		return out, errs.ErrInvalidScalar
	}
	for i := range out {
		s, err := DecodeScalar(b[i*ScalarSize : (i+1)*ScalarSize])
		if err != nil {
			return out, err
		}
		out[i] = s
	}
	return out, nil
}
