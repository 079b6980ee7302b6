package auction

import (
	"fmt"
	"math/big"

	"github.com/Comprehensive-Wall28/private-sealed-bid/errs"
	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/curve"
	"github.com/Comprehensive-Wall28/private-sealed-bid/pedersen"
	"github.com/Comprehensive-Wall28/private-sealed-bid/rangeproof"
	"github.com/Comprehensive-Wall28/private-sealed-bid/sharing"
)

// Registration is everything a bidder submits to the coordinator: a
// commitment to their bid, a range proof that the committed value minus
// MinBid fits in Config.Width bits (so it lies in [MinBid,
// MinBid+2^Width-1]; the MaxBid bound is checked only by
// PrepareRegistration's pre-check), and an additive share triple of the raw
// bid value.
type Registration struct {
	ID         string
	Commitment curve.Point
	Proof      *rangeproof.Proof
	Shares     sharing.Shares
}

// PrepareRegistration builds a bidder's registration package for bid under
// cfg, generalizing register_bidder from the original client: it checks the
// bid against [MinBid, MaxBid] up front (returning ErrBidOutOfRange rather
// than attempting a range proof doomed to fail verification), commits to
// the bid with fresh randomness, proves the shifted value bid-MinBid fits
// in cfg.Width bits, and splits the raw bid into three additive shares
// modulo p.
func PrepareRegistration(ctx *curve.Context, cfg Config, p *big.Int, id string, bid int64) (*Registration, error) {
	if !cfg.InRange(bid) {
		return nil, fmt.Errorf("%w: bid %d outside [%d, %d]", errs.ErrBidOutOfRange, bid, cfg.MinBid, cfg.MaxBid)
	}

	randomness, err := ctx.SampleScalar()
	if err != nil {
		return nil, fmt.Errorf("auction: sampling commitment randomness: [%v]", err)
	}

	bidValue := big.NewInt(bid)
	commitment := pedersen.Commit(ctx, bidValue, randomness)

	shifted := new(big.Int).Sub(bidValue, big.NewInt(cfg.MinBid))
	proof, err := rangeproof.Prove(ctx, shifted, randomness, cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("auction: generating range proof: [%v]", err)
	}

	shares, err := sharing.Share(bidValue, p)
	if err != nil {
		return nil, fmt.Errorf("auction: splitting bid into shares: [%v]", err)
	}

	return &Registration{
		ID:         id,
		Commitment: commitment,
		Proof:      proof,
		Shares:     shares,
	}, nil
}
