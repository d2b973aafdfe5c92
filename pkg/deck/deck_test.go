package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, deck.Cards[0])
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, deck.Cards[51])

	// every card unique
	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		seen[card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(1)
	a.Equal(int64(1), d1.GetSeed())

	d2 := New()
	d2.Shuffle(1)
	a.Equal(d1.Cards, d2.Cards)

	d3 := New()
	d3.Shuffle(2)
	a.NotEqual(d1.Cards, d3.Cards)

	// a shuffled deck still holds all 52 cards
	seen := make(map[Card]bool)
	for _, card := range d1.Cards {
		seen[card] = true
	}
	a.Equal(52, len(seen))

	assert.Panics(t, func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		if _, err := deck.Draw(); err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	_, err := deck.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_DealHand(t *testing.T) {
	a := assert.New(t)

	deck := New()
	deck.Shuffle(42)

	hand, err := deck.DealHand(5)
	a.NoError(err)
	a.Equal(5, len(hand))
	a.Equal(47, deck.CardsLeft())

	_, err = deck.DealHand(48)
	a.Equal(ErrEndOfDeck, err)
	a.Equal(47, deck.CardsLeft())
}

func TestDeck_RemoveCard(t *testing.T) {
	a := assert.New(t)

	deck := New()
	deck.Shuffle(7)

	removed := MustCards("AS")[0]
	deck.RemoveCard(removed)
	a.Equal(51, deck.CardsLeft())

	// the removed card must never reappear
	for deck.CardsLeft() > 0 {
		card, err := deck.Draw()
		a.NoError(err)
		a.False(card.Equal(removed))
	}
}

func TestDeck_Remaining(t *testing.T) {
	a := assert.New(t)

	deck := New()
	remaining := deck.Remaining()
	a.Equal(52, len(remaining))

	// the snapshot is a copy
	remaining[0] = Card{Rank: Ace, Suit: Spades}
	a.Equal(Card{Rank: 2, Suit: Clubs}, deck.Cards[0])
}

func TestCombinations(t *testing.T) {
	a := assert.New(t)

	cards := MustCards("2C,3C,4C,5C")

	combos := Combinations(cards, 2)
	a.Equal(6, len(combos))
	a.Equal(MustCards("2C,3C"), combos[0])
	a.Equal(MustCards("2C,4C"), combos[1])
	a.Equal(MustCards("4C,5C"), combos[5])

	a.Equal(4, len(Combinations(cards, 3)))
	a.Equal(1, len(Combinations(cards, 4)))
	a.Nil(Combinations(cards, 5))

	a.Equal(4, len(Combinations(cards, 1)))

	// 21 five-card hands from seven cards
	seven := MustCards("2C,3C,4C,5C,6C,7C,8C")
	a.Equal(21, len(Combinations(seven, 5)))
}
