// Package auction implements the coordinator that orchestrates the
// cryptographic core: it accepts a bidder's registration package, verifies
// the range proof against a range-adjusted commitment, stores shares, and
// drives the MPC tournament once bidding closes.
//
// The coordinator is a direct generalization of server/auction.py's
// AuctionServer, restructured as an explicit per-bidder state machine in
// the style of a membership-tracking group (isInGroup/isOperating-style
// helpers): a bidder only ever moves forward through
// {registered, committedVerified, shared}, never back.
package auction

import (
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Comprehensive-Wall28/private-sealed-bid/errs"
	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/curve"
	"github.com/Comprehensive-Wall28/private-sealed-bid/pedersen"
	"github.com/Comprehensive-Wall28/private-sealed-bid/rangeproof"
	"github.com/Comprehensive-Wall28/private-sealed-bid/sharing"
	"github.com/Comprehensive-Wall28/private-sealed-bid/tournament"
)

// state is a bidder's position in the registration lifecycle.
type state int

const (
	stateRegistered state = iota
	stateCommittedVerified
	stateShared
)

// bidderRecord is the coordinator-side record for one bidder: its
// commitment (once submitted), its shares (once submitted), and its
// current state.
type bidderRecord struct {
	state      state
	commitment curve.Point
	shares     sharing.Shares
}

// Coordinator accepts registration packages for a single auction instance
// and drives the auction to a winner. All mutating methods are safe for
// concurrent use: submissions are serialized with a single mutex rather than
// given finer-grained locking, since the coordinator's entire state
// transition for one submission must appear atomic.
type Coordinator struct {
	mu sync.Mutex

	cfg   Config
	ctx   *curve.Context
	p     *big.Int // sharing prime; defaults to the curve order n
	order []string // registration order, for deterministic tournament scan
	rows  map[string]*bidderRecord
}

// NewCoordinator creates a coordinator for the given auction configuration,
// using ctx's group for commitment verification and ctx's order as the
// secret-sharing prime p (reusing the group order n as p).
func NewCoordinator(cfg Config, ctx *curve.Context) *Coordinator {
	return &Coordinator{
		cfg:  cfg,
		ctx:  ctx,
		p:    ctx.N(),
		rows: make(map[string]*bidderRecord),
	}
}

// Register idempotently adds id to the auction. A second call for an
// already-known id is a no-op, matching AuctionServer.register_bidder's
// "if bidder_id not in self.bidders" guard.
func (c *Coordinator) Register(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.rows[id]; exists {
		return
	}
	c.order = append(c.order, id)
	c.rows[id] = &bidderRecord{state: stateRegistered}
	log.Info().Str("bidder", id).Msg("bidder registered")
}

// SubmitCommitmentAndProof verifies proof against the range-adjusted form
// of commitment (commitment - commit(MinBid, 0)) and, on success, records
// the commitment and advances the bidder to committed-verified. It returns
// (true, nil) on acceptance and (false, nil) when the proof failed
// verification — a rejected bid does not abort the auction, it simply
// excludes that bidder. A non-nil error indicates a state violation:
// ErrNotRegistered or ErrAlreadySubmitted.
func (c *Coordinator) SubmitCommitmentAndProof(id string, commitment curve.Point, proof *rangeproof.Proof) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[id]
	if !ok {
		return false, fmt.Errorf("%w: [%s]", errs.ErrNotRegistered, id)
	}
	if row.state != stateRegistered {
		return false, fmt.Errorf("%w: [%s]", errs.ErrAlreadySubmitted, id)
	}

	adjusted := pedersen.Shift(c.ctx, commitment, big.NewInt(c.cfg.MinBid))
	if err := rangeproof.Verify(c.ctx, proof, adjusted, c.cfg.Width); err != nil {
		log.Warn().Str("bidder", id).Err(err).Msg("proof verification failed")
		return false, nil
	}

	row.commitment = commitment
	row.state = stateCommittedVerified
	log.Info().Str("bidder", id).Msg("proof verified")
	return true, nil
}

// SubmitShares records shares for a bidder already past commitment
// verification and advances it to shared. Returns ErrNotVerified if the
// bidder hasn't reached committed-verified yet, or ErrNotRegistered if the
// id is unknown.
func (c *Coordinator) SubmitShares(id string, shares sharing.Shares) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.rows[id]
	if !ok {
		return fmt.Errorf("%w: [%s]", errs.ErrNotRegistered, id)
	}
	if row.state != stateCommittedVerified {
		return fmt.Errorf("%w: [%s]", errs.ErrNotVerified, id)
	}

	row.shares = shares
	row.state = stateShared
	log.Info().Str("bidder", id).Msg("shares received")
	return nil
}

// ComputeWinner runs the MPC tournament over every bidder that reached the
// shared state, in registration order, and returns the winning bidder id
// and their reconstructed bid. Returns ErrNoBids if no bidder ever reached
// the shared state.
func (c *Coordinator) ComputeWinner() (string, *big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := make([]string, 0, len(c.order))
	shares := make(map[string]sharing.Shares, len(c.order))
	for _, id := range c.order {
		row := c.rows[id]
		if row.state == stateShared {
			active = append(active, id)
			shares[id] = row.shares
		}
	}

	if len(active) == 0 {
		return "", nil, errs.ErrNoBids
	}

	winner, value, err := tournament.FindMax(active, shares, c.p)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("winner", winner).Str("bid", value.String()).Msg("winner computed")
	return winner, value, nil
}

// sortedIDs returns the bidder ids currently known to the coordinator, in
// lexical order; used by tests and diagnostics that need a stable
// enumeration independent of registration order.
func (c *Coordinator) sortedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.rows))
	for id := range c.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
