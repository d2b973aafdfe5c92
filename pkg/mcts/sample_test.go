package mcts

import (
	"math/rand"
	"testing"

	"holdem-equity/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestRemainingCards(t *testing.T) {
	a := assert.New(t)

	hand := deck.MustCards("AS,AH")
	remaining := remainingCards(hand)
	a.Equal(50, len(remaining))

	for _, card := range remaining {
		a.False(card.Equal(hand[0]))
		a.False(card.Equal(hand[1]))
	}
}

func TestSampleOpponentHands(t *testing.T) {
	a := assert.New(t)

	rng := rand.New(rand.NewSource(1))
	hand := deck.MustCards("AS,AH")

	// 1225 two-card combos get capped at the sample limit
	actions := sampleOpponentHands(rng, hand)
	a.Equal(SampleLimit, len(actions))

	seen := make(map[string]bool)
	for _, action := range actions {
		a.Equal(2, len(action))
		for _, card := range action {
			a.False(card.Equal(hand[0]))
			a.False(card.Equal(hand[1]))
		}

		key := deck.CardsToString(action)
		a.False(seen[key], "action %s sampled twice", key)
		seen[key] = true
	}
}

func TestSampleFlops(t *testing.T) {
	a := assert.New(t)

	rng := rand.New(rand.NewSource(2))
	used := deck.MustCards("AS,AH,2C,3D")

	actions := sampleFlops(rng, used)
	a.Equal(SampleLimit, len(actions))

	for _, action := range actions {
		a.Equal(3, len(action))
	}
}

func TestSampleSingles(t *testing.T) {
	a := assert.New(t)

	rng := rand.New(rand.NewSource(3))
	used := deck.MustCards("AS,AH,2C,3D,4H,5S,6C,7D,8H")

	// fewer singles than the cap means all of them come back
	actions := sampleSingles(rng, used)
	a.Equal(43, len(actions))

	seen := make(map[deck.Card]bool)
	for _, action := range actions {
		a.Equal(1, len(action))
		a.False(seen[action[0]])
		seen[action[0]] = true
	}

	for _, card := range used {
		a.False(seen[card], "used card %s was sampled", card)
	}
}

func TestSampleActions_Independent(t *testing.T) {
	// two samples with the same exclusions draw from the full universe, not
	// from each other
	r1 := rand.New(rand.NewSource(4))
	r2 := rand.New(rand.NewSource(5))
	used := deck.MustCards("AS,AH")

	first := sampleSingles(r1, used)
	second := sampleSingles(r2, used)

	assert.Equal(t, len(first), len(second))
	assert.NotEqual(t, first, second)
}
