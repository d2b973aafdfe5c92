package poker

import "fmt"

// HandRank is a totally ordered hand value: the category first, then the
// tie-breaking card values compared element-by-element.
type HandRank struct {
	Hand      Hand  `json:"hand"`
	Tiebreaks []int `json:"tiebreaks"`
}

// Compare returns a negative number if r ranks below other, a positive number
// if r ranks above other, and zero if the hands are an exact tie.
func (r HandRank) Compare(other HandRank) int {
	if r.Hand != other.Hand {
		return int(r.Hand) - int(other.Hand)
	}

	n := len(r.Tiebreaks)
	if len(other.Tiebreaks) < n {
		n = len(other.Tiebreaks)
	}

	for i := 0; i < n; i++ {
		if r.Tiebreaks[i] != other.Tiebreaks[i] {
			return r.Tiebreaks[i] - other.Tiebreaks[i]
		}
	}

	return len(r.Tiebreaks) - len(other.Tiebreaks)
}

// Beats returns true if r ranks strictly above other
func (r HandRank) Beats(other HandRank) bool {
	return r.Compare(other) > 0
}

func (r HandRank) String() string {
	return fmt.Sprintf("%s %v", r.Hand, r.Tiebreaks)
}
