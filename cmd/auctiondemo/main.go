// Command auctiondemo runs a single sealed-bid auction end to end against a
// fixed set of bidders, the Go-native counterpart of main.py's interactive
// driver loop: register each bidder, prepare and submit their registration
// package, and print the MPC-computed winner.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Comprehensive-Wall28/private-sealed-bid/auction"
	"github.com/Comprehensive-Wall28/private-sealed-bid/internal/curve"
)

// bid is one entry in the fixed demo bidder list.
type bid struct {
	id     string
	amount int64
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	const minBid, maxBid = 100, 1000
	cfg, err := auction.NewConfig(minBid, maxBid)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auction configuration")
	}

	ctx := curve.NewSecp256k1Context()
	coord := auction.NewCoordinator(cfg, ctx)

	bids := []bid{
		{id: "alice", amount: 450},
		{id: "bob", amount: 900},
		{id: "carol", amount: 900},
		{id: "dave", amount: 99}, // out of range, rejected before proving
	}

	for _, b := range bids {
		coord.Register(b.id)

		reg, err := auction.PrepareRegistration(ctx, cfg, ctx.N(), b.id, b.amount)
		if err != nil {
			log.Warn().Str("bidder", b.id).Err(err).Msg("registration rejected")
			continue
		}

		accepted, err := coord.SubmitCommitmentAndProof(reg.ID, reg.Commitment, reg.Proof)
		if err != nil {
			log.Error().Str("bidder", b.id).Err(err).Msg("submission error")
			continue
		}
		if !accepted {
			log.Warn().Str("bidder", b.id).Msg("proof rejected by coordinator")
			continue
		}

		if err := coord.SubmitShares(reg.ID, reg.Shares); err != nil {
			log.Error().Str("bidder", b.id).Err(err).Msg("share submission failed")
			continue
		}

		log.Info().Str("bidder", b.id).Msg("bid accepted")
	}

	winner, amount, err := coord.ComputeWinner()
	if err != nil {
		log.Warn().Err(err).Msg("no winner")
		return
	}

	log.Info().Str("winner", winner).Str("amount", amount.String()).Msg("auction closed")
}
