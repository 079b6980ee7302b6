package sharing

import (
	"math/big"
	"testing"

	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/testutils"
)

var testP = big.NewInt(0).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)) // 2^127 - 1

func TestShareReconstructRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 450, 1000} {
		shares, err := Share(big.NewInt(v), testP)
		if err != nil {
			t.Fatal(err)
		}

		testutils.AssertBoolsEqual(t, "shares valid", true, shares.Valid(testP))

		got := Reconstruct(shares, testP)
		testutils.AssertBigIntsEqual(t, "reconstructed value", big.NewInt(v), got)
	}
}

func TestShareHidesValueInAnySingleShare(t *testing.T) {
	// A single share must not deterministically reveal the value: the same
	// value shared twice should (with overwhelming probability) produce
	// different first shares.
	a, err := Share(big.NewInt(777), testP)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Share(big.NewInt(777), testP)
	if err != nil {
		t.Fatal(err)
	}

	if a[0].Cmp(b[0]) == 0 {
		t.Fatal("two independent sharings of the same value produced identical first shares")
	}
}

func TestSubIsLinear(t *testing.T) {
	a, err := Share(big.NewInt(500), testP)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Share(big.NewInt(300), testP)
	if err != nil {
		t.Fatal(err)
	}

	diff := Sub(a, b, testP)
	got := Reconstruct(diff, testP)
	testutils.AssertBigIntsEqual(t, "reconstructed difference", big.NewInt(200), got)
}

func TestSubWrapsNegativeResultIntoField(t *testing.T) {
	a, err := Share(big.NewInt(100), testP)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Share(big.NewInt(300), testP)
	if err != nil {
		t.Fatal(err)
	}

	diff := Sub(a, b, testP)
	got := Reconstruct(diff, testP)

	want := new(big.Int).Sub(testP, big.NewInt(200))
	testutils.AssertBigIntsEqual(t, "reconstructed wrapped difference", want, got)
}

func TestValidRejectsShareOutsideField(t *testing.T) {
	shares := Shares{big.NewInt(1), big.NewInt(2), new(big.Int).Set(testP)}
	testutils.AssertBoolsEqual(t, "share equal to p is invalid", false, shares.Valid(testP))
}
