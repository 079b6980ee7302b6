// Package curve implements the prime-order elliptic-curve group arithmetic
// the auction core is built on: point addition, scalar multiplication, and
// the pair of independent generators (G, H) the Pedersen commitment and its
// range proof require.
//
// Curve parameters are packaged into a single Context value rather than
// resolved from process-wide globals, so tests can swap in an alternate
// curve and so there is no package-init ordering hazard between this
// package and the ones built on top of it (pedersen, rangeproof, sharing).
package curve

import (
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/hkdf"
)

// ErrInvalidPoint is returned when a decoded point does not lie on the
// curve. Internally produced points never need re-validation; this error
// is only reachable from DecodePoint.
var ErrInvalidPoint = errors.New("curve: invalid point")

// Point is an affine point on the group's curve. The identity element is
// represented as the pair of nil coordinates; callers should use
// Context.Identity() rather than constructing one directly.
type Point struct {
	X, Y *big.Int
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.X == nil || p.Y == nil
}

// Equal reports whether p and q represent the same point.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Context packages the process-wide group parameters: the curve itself,
// its order n, and the two independent generators G and H used by the
// Pedersen commitment scheme. log_G(H) is unknown by construction (see
// deriveH).
type Context struct {
	curve elliptic.Curve
	n     *big.Int
	g, h  Point
}

// hGeneratorSeed is the nothing-up-my-sleeve tag used to derive H. Any
// party can recompute H from this tag and confirm no one chose it knowing
// log_G(H); see deriveH.
var hGeneratorSeed = []byte("private-sealed-bid-auction/pedersen-H/v1")

// NewSecp256k1Context builds the Context used throughout this module: the
// secp256k1 curve from btcec, its standard base point as G, and a
// deterministically derived second generator as H.
func NewSecp256k1Context() *Context {
	c := btcec.S256()
	g := Point{X: c.Gx, Y: c.Gy}
	h := deriveH(c)
	return &Context{curve: c, n: new(big.Int).Set(c.N), g: g, h: h}
}

// deriveH computes a second generator whose discrete log relative to G is
// unknown to anyone, including the implementer: successive 32-byte blocks of
// an HKDF-SHA256 expansion of a fixed public tag are tried, in order, as
// candidate x-coordinates until one lies on the curve. This is a
// try-and-retry construction for a nothing-up-my-sleeve point.
func deriveH(c *btcec.KoblitzCurve) Point {
	kdf := hkdf.New(sha256.New, hGeneratorSeed, nil, []byte("generator-H"))

	candidate := make([]byte, 32)
	for counter := uint32(0); ; counter++ {
		if _, err := kdf.Read(candidate); err != nil {
			panic(fmt.Sprintf("curve: HKDF expansion exhausted deriving H: [%v]", err))
		}

		x := new(big.Int).SetBytes(candidate)
		x.Mod(x, c.P)

		if y := liftX(c, x); y != nil {
			return Point{X: x, Y: y}
		}
	}
}

// liftX returns a y-coordinate for the given x on c (one of the two square
// roots, of either parity), or nil if x is not a valid affine coordinate on
// the curve. Callers that need a specific parity must adjust it themselves.
func liftX(c *btcec.KoblitzCurve, x *big.Int) *big.Int {
	// y^2 = x^3 + 7 (mod p) for secp256k1 (A = 0, B = 7).
	ySquared := new(big.Int).Exp(x, big.NewInt(3), c.P)
	ySquared.Add(ySquared, big.NewInt(7))
	ySquared.Mod(ySquared, c.P)

	// p ≡ 3 (mod 4) for secp256k1, so modular sqrt is exponentiation by
	// (p+1)/4.
	exp := new(big.Int).Add(c.P, big.NewInt(1))
	exp.Div(exp, big.NewInt(4))
	y := new(big.Int).Exp(ySquared, exp, c.P)

	check := new(big.Int).Exp(y, big.NewInt(2), c.P)
	if check.Cmp(ySquared) != 0 {
		return nil
	}
	return y
}

// N returns the order of the group.
func (ctx *Context) N() *big.Int {
	return new(big.Int).Set(ctx.n)
}

// G returns the first generator.
func (ctx *Context) G() Point {
	return ctx.g
}

// H returns the second generator, independent of G.
func (ctx *Context) H() Point {
	return ctx.h
}

// Identity returns the point at infinity for this group.
func (ctx *Context) Identity() Point {
	return Point{}
}

// Add returns p + q.
func (ctx *Context) Add(p, q Point) Point {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	x, y := ctx.curve.Add(p.X, p.Y, q.X, q.Y)
	return Point{X: x, Y: y}
}

// Neg returns -p, the point whose Y coordinate is negated modulo the
// field prime.
func (ctx *Context) Neg(p Point) Point {
	if p.IsIdentity() {
		return p
	}
	fieldPrime := ctx.curve.Params().P
	negY := new(big.Int).Sub(fieldPrime, p.Y)
	negY.Mod(negY, fieldPrime)
	return Point{X: p.X, Y: negY}
}

// Sub returns p - q.
func (ctx *Context) Sub(p, q Point) Point {
	return ctx.Add(p, ctx.Neg(q))
}

// ScalarMult returns s·p using double-and-add (delegated to the curve
// implementation). s is reduced modulo the group order first; negative
// big.Int scalars are accepted and normalized via ReduceScalar.
func (ctx *Context) ScalarMult(p Point, s *big.Int) Point {
	if p.IsIdentity() {
		return p
	}
	sMod := ctx.ReduceScalar(s)
	if sMod.Sign() == 0 {
		return ctx.Identity()
	}
	x, y := ctx.curve.ScalarMult(p.X, p.Y, sMod.Bytes())
	return Point{X: x, Y: y}
}

// ScalarBaseMult returns s·G.
func (ctx *Context) ScalarBaseMult(s *big.Int) Point {
	sMod := ctx.ReduceScalar(s)
	if sMod.Sign() == 0 {
		return ctx.Identity()
	}
	x, y := ctx.curve.ScalarBaseMult(sMod.Bytes())
	return Point{X: x, Y: y}
}

// Commit computes v·G + r·H, the Pedersen commitment primitive every
// higher layer (pedersen, rangeproof) is built on.
func (ctx *Context) Commit(v, r *big.Int) Point {
	return ctx.Add(ctx.ScalarBaseMult(v), ctx.ScalarMult(ctx.h, r))
}

// ReduceScalar reduces s modulo the group order n, mapping negative values
// to their positive representative in [0, n) rather than leaving them
// signed. This is the single scalar-negation path the rest of the module
// uses; see the design notes on negative-scalar handling.
func (ctx *Context) ReduceScalar(s *big.Int) *big.Int {
	m := new(big.Int).Mod(s, ctx.n)
	if m.Sign() < 0 {
		m.Add(m, ctx.n)
	}
	return m
}

// ScalarNeg returns -s mod n.
func (ctx *Context) ScalarNeg(s *big.Int) *big.Int {
	return ctx.ReduceScalar(new(big.Int).Neg(s))
}

// ScalarAdd returns a + b mod n.
func (ctx *Context) ScalarAdd(a, b *big.Int) *big.Int {
	return ctx.ReduceScalar(new(big.Int).Add(a, b))
}

// ScalarSub returns a - b mod n.
func (ctx *Context) ScalarSub(a, b *big.Int) *big.Int {
	return ctx.ReduceScalar(new(big.Int).Sub(a, b))
}

// ScalarMul returns a * b mod n.
func (ctx *Context) ScalarMul(a, b *big.Int) *big.Int {
	return ctx.ReduceScalar(new(big.Int).Mul(a, b))
}

// SampleScalar draws a scalar uniformly from [0, n) using the OS CSPRNG.
func (ctx *Context) SampleScalar() (*big.Int, error) {
	return rand.Int(rand.Reader, ctx.n)
}

// IsOnCurve reports whether p is a valid affine point on the curve. The
// identity element is not considered on-curve by this check; callers that
// need to allow it should test IsIdentity first.
func (ctx *Context) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return false
	}
	return ctx.curve.IsOnCurve(p.X, p.Y)
}

// EncodePoint serializes p to 33-byte compressed SEC1, as required by the
// canonical wire encoding. The identity element has no SEC1 encoding and
// EncodePoint panics if given one; the protocol never needs to serialize
// the identity.
func (ctx *Context) EncodePoint(p Point) []byte {
	if p.IsIdentity() {
		panic("curve: cannot encode the identity point")
	}
	out := make([]byte, 33)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xBytes := p.X.Bytes()
	copy(out[1+32-len(xBytes):], xBytes)
	return out
}

// DecodePoint parses 33-byte compressed SEC1 back into a Point, recovering
// the Y coordinate from its parity bit and validating that the result lies
// on the curve. Returns ErrInvalidPoint if b is malformed or does not
// decode to a point on the curve.
func (ctx *Context) DecodePoint(b []byte) (Point, error) {
	if len(b) != 33 || (b[0] != 0x02 && b[0] != 0x03) {
		return Point{}, ErrInvalidPoint
	}
	kc, ok := ctx.curve.(*btcec.KoblitzCurve)
	if !ok {
		return Point{}, ErrInvalidPoint
	}
	x := new(big.Int).SetBytes(b[1:])
	y := liftX(kc, x)
	if y == nil {
		return Point{}, ErrInvalidPoint
	}
	wantOdd := b[0] == 0x03
	if y.Bit(0) == 1 != wantOdd {
		y = new(big.Int).Sub(kc.P, y)
	}
	p := Point{X: x, Y: y}
	if !ctx.IsOnCurve(p) {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}
