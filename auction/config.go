package auction

import (
	"math/bits"

	"github.com/Comprehensive-Wall28/private-sealed-bid/errs"
)

// Config declares the legal bid interval for an auction instance, and the
// bit-width the range proof is built to prove against.
type Config struct {
	MinBid int64
	MaxBid int64

	// Width is the derived bit-width k = max(1, ceil(log2(MaxBid -
	// MinBid + 1))) a committed bid is proven to fit in, once
	// re-centered onto [0, MaxBid-MinBid].
	Width int
}

// NewConfig validates and constructs a Config. It returns ErrConfigInvalid
// if MinBid is negative or MinBid > MaxBid.
func NewConfig(minBid, maxBid int64) (Config, error) {
	if minBid < 0 || minBid > maxBid {
		return Config{}, errs.ErrConfigInvalid
	}

	rangeSize := maxBid - minBid + 1
	width := bitWidth(rangeSize)
	if width < 1 {
		width = 1
	}

	return Config{MinBid: minBid, MaxBid: maxBid, Width: width}, nil
}

// bitWidth returns ceil(log2(n)) for n >= 1.
func bitWidth(n int64) int {
	if n <= 1 {
		return 0
	}
	// bits.Len64(n-1) is the number of bits needed to represent values
	// 0..n-1, i.e. ceil(log2(n)).
	return bits.Len64(uint64(n - 1))
}

// InRange reports whether bid falls within [MinBid, MaxBid].
func (c Config) InRange(bid int64) bool {
	return bid >= c.MinBid && bid <= c.MaxBid
}
