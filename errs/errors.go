// Package errs enumerates the auction core's error kinds. The verifier-side
// kinds (BitProofInvalid, ConsistencyInvalid, StructureInvalid) live in
// package rangeproof; the coordinator reports any of them as a single
// rejected (false) result from SubmitCommitmentAndProof and logs the cause.
// Coordinator state violations stay distinct errors since they indicate
// programmer or protocol-ordering errors rather than a malicious or
// malformed bid.
package errs

import "errors"

var (
	// ErrConfigInvalid is returned by auction.NewConfig when min_bid is
	// negative or greater than max_bid. (The derived bit-width is clamped
	// to at least 1, so it is never zero.)
	ErrConfigInvalid = errors.New("auction: invalid configuration")

	// ErrBidOutOfRange is the prover-side pre-check failure: the bid
	// falls outside [min_bid, max_bid], so no proof is even attempted.
	ErrBidOutOfRange = errors.New("auction: bid out of range")

	// ErrProofRejected names the verifier-side cryptographic failure
	// kind (bad bit proof, bad consistency proof, or malformed proof
	// structure). The coordinator does not return it: a failed
	// verification is reported as a false result with a nil error.
	ErrProofRejected = errors.New("auction: proof rejected")

	// ErrNotRegistered is returned when a submission references a
	// bidder id that was never registered.
	ErrNotRegistered = errors.New("auction: bidder not registered")

	// ErrNotVerified is returned when shares are submitted for a bidder
	// whose commitment has not yet passed verification.
	ErrNotVerified = errors.New("auction: bidder not verified")

	// ErrAlreadySubmitted is returned on a second commitment submission
	// for a bidder that has already reached the committed-verified state.
	ErrAlreadySubmitted = errors.New("auction: bidder already submitted")

	// ErrInvalidPoint is returned when a wire-format group element
	// fails to decode to a point on the curve.
	ErrInvalidPoint = errors.New("auction: invalid point encoding")

	// ErrInvalidScalar is returned when a wire-format scalar or share
	// triple has the wrong byte length. The decoded value is not checked
	// against the field modulus.
	ErrInvalidScalar = errors.New("auction: invalid scalar encoding")

	// ErrNoBids is returned by compute_winner when no bidder has
	// reached the shared state.
	ErrNoBids = errors.New("auction: no valid bids")
)
