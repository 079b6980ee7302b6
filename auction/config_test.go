package auction

import (
	"errors"
	"testing"

	"github.com/Comprehensive-Wall28/private-sealed-bid/errs"
	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/testutils"
)

func TestNewConfigDerivesWidth(t *testing.T) {
	cases := []struct {
		minBid, maxBid int64
		wantWidth      int
	}{
		{100, 1000, 10}, // range 100..1000 -> 901 values -> ceil(log2(901)) = 10
		{0, 1, 1},
		{0, 0, 1},
		{0, 255, 8},
		{0, 256, 9},
	}

	for _, c := range cases {
		cfg, err := NewConfig(c.minBid, c.maxBid)
		if err != nil {
			t.Fatalf("min=%d max=%d: %v", c.minBid, c.maxBid, err)
		}
		testutils.AssertIntsEqual(t, "derived width", c.wantWidth, cfg.Width)
	}
}

func TestNewConfigRejectsInvertedRange(t *testing.T) {
	_, err := NewConfig(1000, 100)
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestNewConfigRejectsNegativeMinBid(t *testing.T) {
	_, err := NewConfig(-1, 100)
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestConfigInRange(t *testing.T) {
	cfg, err := NewConfig(100, 1000)
	if err != nil {
		t.Fatal(err)
	}

	testutils.AssertBoolsEqual(t, "100 in range", true, cfg.InRange(100))
	testutils.AssertBoolsEqual(t, "1000 in range", true, cfg.InRange(1000))
	testutils.AssertBoolsEqual(t, "99 out of range", false, cfg.InRange(99))
	testutils.AssertBoolsEqual(t, "1001 out of range", false, cfg.InRange(1001))
}
