package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"holdem-equity/internal/config"
	"holdem-equity/internal/rng"
	"holdem-equity/pkg/deck"
	"holdem-equity/pkg/mcts"

	"github.com/pterm/pterm"
)

var iterations = flag.Int("iterations", 0, "number of search iterations (defaults to the configured value)")
var seed = flag.Int64("seed", 0, "random seed for a reproducible run (0 picks one)")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <card1> <card2>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "cards are in the format <rank><suit>, i.e. JD QC\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
	}

	hand := make([]deck.Card, 2)
	for i, token := range flag.Args() {
		card, err := deck.ParseCard(token)
		if err != nil {
			pterm.Error.Printfln("Cards must be in a format like 'JD' or 'QS': %v", err)
			os.Exit(1)
		}

		hand[i] = card
	}

	if hand[0].Equal(hand[1]) {
		pterm.Error.Println("The two cards must be different")
		os.Exit(1)
	}

	its := *iterations
	if its <= 0 {
		its = config.Instance().Search.Iterations
	}

	s := *seed
	if s == 0 {
		s = rng.Seed(rng.Crypto{})
	}

	pterm.Info.Printfln("Running MCTS for hand: %s %s", hand[0], hand[1])

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Simulating %d iterations...", its))
	equity := mcts.EstimateEquity(hand, its,
		mcts.WithRand(rand.New(rand.NewSource(s))),
		mcts.WithProgress(100, func(done int, estimate float64) {
			spinner.UpdateText(fmt.Sprintf("Simulating... %d/%d (%.3f)", done, its, estimate))
		}),
	)
	spinner.Success("Simulation complete")

	pterm.Success.Printfln("Estimated Win Rate: %.3f", equity)
}
