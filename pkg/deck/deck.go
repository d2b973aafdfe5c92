package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck.
// A deck is owned by whoever constructed it; concurrent simulations must each
// build their own deck rather than share one.
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle a freshly built deck of cards.
// You can manually specify the seed, or pass 0 to use a time-based seed.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DealHand deals the specified number of cards from the top of the deck
func (d *Deck) DealHand(n int) ([]Card, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// RemoveCard removes all cards matching the specified card from the deck.
// A standard deck holds at most one match.
func (d *Deck) RemoveCard(card Card) {
	cards := make([]Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		if !c.Equal(card) {
			cards = append(cards, c)
		}
	}

	d.Cards = cards
}

// Remaining returns a copy of the cards still in the deck
func (d *Deck) Remaining() []Card {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)

	return cards
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Combinations returns every way to choose k cards from the supplied cards,
// in lexicographic index order.
func Combinations(cards []Card, k int) [][]Card {
	if k < 0 || k > len(cards) {
		return nil
	}

	combos := make([][]Card, 0)
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		combo := make([]Card, k)
		for i, idx := range indexes {
			combo[i] = cards[idx]
		}
		combos = append(combos, combo)

		// advance to the next index vector
		i := k - 1
		for i >= 0 && indexes[i] == i+len(cards)-k {
			i--
		}

		if i < 0 {
			break
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}

	return combos
}
