package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck build order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card.
// Cards are plain values: two cards are equal iff rank and suit match, and a
// Card may be used as a map key.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case 10:
		rank = "T"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = fmt.Sprintf("%d", c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	default:
		panic("unknown suit")
	}

	return rank + suit
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c == card
}

var cardRx = regexp.MustCompile(`(?i)^([2-9TJQKA])([CDHS])\z`)

// ParseCard parses a card from its two-character form, i.e. "AS" or "td".
// The rank must be one of 23456789TJQKA and the suit one of CDHS,
// case-insensitive.
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = 10
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		rank = int(match[1][0] - '0')
	}

	var suit Suit
	switch strings.ToUpper(match[2]) {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a comma-separated list of cards, i.e. "AS,KD,2c"
func ParseCards(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	tokens := strings.Split(s, ",")
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCards is ParseCards for fixtures and tests. It panics on a bad token.
func MustCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardsToString converts a slice of cards to a string in the format of 2C,3H,4S,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
