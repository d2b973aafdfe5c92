package mcts

import (
	"math/rand"

	"holdem-equity/pkg/deck"
)

// SampleLimit caps how many chance outcomes are sampled for any one node
const SampleLimit = 1000

// remainingCards builds a fresh deck and strips the excluded cards. The deck
// is never shared with the caller.
func remainingCards(exclude []deck.Card) []deck.Card {
	d := deck.New()
	for _, c := range exclude {
		d.RemoveCard(c)
	}

	return d.Remaining()
}

// sampleActions enumerates every size-card combination of the deck minus the
// excluded cards and returns a uniform subset of at most SampleLimit of them,
// drawn without replacement.
func sampleActions(rng *rand.Rand, exclude []deck.Card, size int) [][]deck.Card {
	combos := deck.Combinations(remainingCards(exclude), size)

	rng.Shuffle(len(combos), func(i, j int) {
		combos[i], combos[j] = combos[j], combos[i]
	})

	if len(combos) > SampleLimit {
		combos = combos[:SampleLimit]
	}

	return combos
}

// sampleOpponentHands samples two-card opponent holdings from the deck minus
// the player's hand
func sampleOpponentHands(rng *rand.Rand, playerHand []deck.Card) [][]deck.Card {
	return sampleActions(rng, playerHand, 2)
}

// sampleFlops samples three-card flops from the deck minus every card already
// fixed on the path
func sampleFlops(rng *rand.Rand, used []deck.Card) [][]deck.Card {
	return sampleActions(rng, used, 3)
}

// sampleSingles samples turn or river cards from the deck minus every card
// already fixed on the path
func sampleSingles(rng *rand.Rand, used []deck.Card) [][]deck.Card {
	return sampleActions(rng, used, 1)
}
