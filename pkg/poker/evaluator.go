package poker

import (
	"fmt"
	"sort"

	"holdem-equity/pkg/deck"
)

// RankFiveCardHand ranks exactly five cards and returns the category along
// with its tie-breaking values.
// Calling this with anything other than five cards is a contract violation and
// panics.
func RankFiveCardHand(hand []deck.Card) HandRank {
	if len(hand) != 5 {
		panic(fmt.Sprintf("RankFiveCardHand requires exactly 5 cards, got %d", len(hand)))
	}

	values := make([]int, 5)
	for i, card := range hand {
		values[i] = card.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}

	isFlush := true
	for _, card := range hand {
		if card.Suit != hand[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight := checkStraight(values)

	if isFlush && isStraight {
		if values[0] == deck.Ace {
			return HandRank{Hand: RoyalFlush, Tiebreaks: values}
		}

		return HandRank{Hand: StraightFlush, Tiebreaks: values}
	}

	if quad, ok := valueWithCount(values, counts, 4); ok {
		kicker := bestKickers(values, 1, quad)
		return HandRank{Hand: FourOfAKind, Tiebreaks: append([]int{quad}, kicker...)}
	}

	trips, hasTrips := valueWithCount(values, counts, 3)
	pair, hasPair := valueWithCount(values, counts, 2)

	if hasTrips && hasPair {
		return HandRank{Hand: FullHouse, Tiebreaks: []int{trips, pair}}
	}

	if isFlush {
		return HandRank{Hand: Flush, Tiebreaks: values}
	}

	if isStraight {
		return HandRank{Hand: Straight, Tiebreaks: values}
	}

	if hasTrips {
		kickers := bestKickers(values, 2, trips)
		return HandRank{Hand: ThreeOfAKind, Tiebreaks: append([]int{trips}, kickers...)}
	}

	pairs := valuesWithCount(values, counts, 2)
	if len(pairs) == 2 {
		kicker := bestKickers(values, 1, pairs[0], pairs[1])
		return HandRank{Hand: TwoPair, Tiebreaks: append(pairs, kicker...)}
	}

	if hasPair {
		kickers := bestKickers(values, 3, pair)
		return HandRank{Hand: OnePair, Tiebreaks: append([]int{pair}, kickers...)}
	}

	return HandRank{Hand: HighCard, Tiebreaks: values}
}

// Evaluate finds the best five-card hand among the supplied cards.
// For a seven-card hand this ranks all 21 five-card subsets.
func Evaluate(cards []deck.Card) HandRank {
	if len(cards) < 5 {
		panic(fmt.Sprintf("Evaluate requires at least 5 cards, got %d", len(cards)))
	}

	var best HandRank
	for i, combo := range deck.Combinations(cards, 5) {
		rank := RankFiveCardHand(combo)
		if i == 0 || rank.Beats(best) {
			best = rank
		}
	}

	return best
}

// checkStraight reports whether the values contain five consecutive ranks.
// The values must already be sorted descending. The wheel (A-5-4-3-2) counts
// as a straight with the ace playing low.
func checkStraight(values []int) bool {
	distinct := make([]int, 0, len(values))
	for i, v := range values {
		if i == 0 || v != distinct[len(distinct)-1] {
			distinct = append(distinct, v)
		}
	}

	// five consecutive ranks span exactly 4
	for i := 0; i+4 < len(distinct); i++ {
		if distinct[i]-distinct[i+4] == 4 {
			return true
		}
	}

	wheel := map[int]bool{deck.Ace: false, 5: false, 4: false, 3: false, 2: false}
	for _, v := range distinct {
		if _, ok := wheel[v]; ok {
			wheel[v] = true
		}
	}

	for _, found := range wheel {
		if !found {
			return false
		}
	}

	return true
}

// valueWithCount returns the highest value appearing exactly count times.
// Scanning from the top of the descending values keeps the pick deterministic
// even if multiple buckets share the count.
func valueWithCount(values []int, counts map[int]int, count int) (int, bool) {
	for _, v := range values {
		if counts[v] == count {
			return v, true
		}
	}

	return 0, false
}

// valuesWithCount returns every distinct value appearing exactly count times,
// highest first
func valuesWithCount(values []int, counts map[int]int, count int) []int {
	matches := make([]int, 0, 2)
	for _, v := range values {
		if counts[v] == count && (len(matches) == 0 || matches[len(matches)-1] != v) {
			matches = append(matches, v)
		}
	}

	return matches
}

// bestKickers returns the top n values excluding the given ranks
func bestKickers(values []int, n int, exclude ...int) []int {
	kickers := make([]int, 0, n)
	for _, v := range values {
		excluded := false
		for _, e := range exclude {
			if v == e {
				excluded = true
				break
			}
		}

		if !excluded {
			kickers = append(kickers, v)
			if len(kickers) == n {
				break
			}
		}
	}

	return kickers
}
