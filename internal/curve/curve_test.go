package curve

import (
	"math/big"
	"testing"

	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/testutils"
)

func TestGeneratorsIndependent(t *testing.T) {
	ctx := NewSecp256k1Context()

	testutils.AssertBoolsEqual(t, "G on curve", true, ctx.IsOnCurve(ctx.G()))
	testutils.AssertBoolsEqual(t, "H on curve", true, ctx.IsOnCurve(ctx.H()))

	if ctx.G().Equal(ctx.H()) {
		t.Fatal("G and H must not be equal")
	}
}

func TestDeriveHDeterministic(t *testing.T) {
	ctx1 := NewSecp256k1Context()
	ctx2 := NewSecp256k1Context()

	testutils.AssertBoolsEqual(t, "H reproducible across contexts", true, ctx1.H().Equal(ctx2.H()))
}

func TestAddSubInverse(t *testing.T) {
	ctx := NewSecp256k1Context()

	p := ctx.ScalarBaseMult(big.NewInt(12345))
	q := ctx.ScalarBaseMult(big.NewInt(6789))

	sum := ctx.Add(p, q)
	back := ctx.Sub(sum, q)

	testutils.AssertBoolsEqual(t, "p + q - q == p", true, back.Equal(p))
}

func TestScalarMultDistributesOverAdd(t *testing.T) {
	ctx := NewSecp256k1Context()

	a := big.NewInt(7)
	b := big.NewInt(11)
	p := ctx.ScalarBaseMult(big.NewInt(42))

	lhs := ctx.ScalarMult(p, ctx.ScalarAdd(a, b))
	rhs := ctx.Add(ctx.ScalarMult(p, a), ctx.ScalarMult(p, b))

	testutils.AssertBoolsEqual(t, "(a+b)*P == a*P + b*P", true, lhs.Equal(rhs))
}

func TestIdentityIsAdditiveUnit(t *testing.T) {
	ctx := NewSecp256k1Context()
	p := ctx.ScalarBaseMult(big.NewInt(99))

	testutils.AssertBoolsEqual(t, "p + identity == p", true, ctx.Add(p, ctx.Identity()).Equal(p))
}

func TestEncodeDecodePointRoundTrip(t *testing.T) {
	ctx := NewSecp256k1Context()

	for _, v := range []int64{1, 2, 3, 1000, 123456789} {
		p := ctx.ScalarBaseMult(big.NewInt(v))
		encoded := ctx.EncodePoint(p)

		testutils.AssertIntsEqual(t, "encoded point length", 33, len(encoded))

		decoded, err := ctx.DecodePoint(encoded)
		if err != nil {
			t.Fatalf("decoding point for v=%d: %v", v, err)
		}
		testutils.AssertBoolsEqual(t, "decoded point equals original", true, p.Equal(decoded))
	}
}

func TestDecodePointRejectsMalformed(t *testing.T) {
	ctx := NewSecp256k1Context()

	if _, err := ctx.DecodePoint([]byte{0x02, 0x00}); err != ErrInvalidPoint {
		t.Fatalf("expected ErrInvalidPoint for short input, got %v", err)
	}

	bad := make([]byte, 33)
	bad[0] = 0x04 // invalid prefix
	if _, err := ctx.DecodePoint(bad); err != ErrInvalidPoint {
		t.Fatalf("expected ErrInvalidPoint for bad prefix, got %v", err)
	}
}

func TestReduceScalarNormalizesNegative(t *testing.T) {
	ctx := NewSecp256k1Context()

	neg := new(big.Int).Neg(big.NewInt(5))
	reduced := ctx.ReduceScalar(neg)

	testutils.AssertBoolsEqual(t, "reduced scalar is non-negative", true, reduced.Sign() >= 0)

	want := new(big.Int).Sub(ctx.N(), big.NewInt(5))
	testutils.AssertBigIntsEqual(t, "reduced scalar", want, reduced)
}

func TestCommitHomomorphic(t *testing.T) {
	ctx := NewSecp256k1Context()

	v1, r1 := big.NewInt(10), big.NewInt(3)
	v2, r2 := big.NewInt(20), big.NewInt(4)

	c1 := ctx.Commit(v1, r1)
	c2 := ctx.Commit(v2, r2)
	sum := ctx.Add(c1, c2)

	want := ctx.Commit(ctx.ScalarAdd(v1, v2), ctx.ScalarAdd(r1, r2))
	testutils.AssertBoolsEqual(t, "commit(v1,r1)+commit(v2,r2) == commit(v1+v2,r1+r2)", true, sum.Equal(want))
}
