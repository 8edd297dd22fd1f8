package engine

import (
	poker "github.com/paulhankin/poker"
)

// Convert our engine.Card -> library card.
func toPH(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	// Both sides number Ace as 1.
	return poker.MakeCard(s, poker.Rank(c.Number))
}

// Describe names a three-card hand in poker terms ("three of a kind", "pair"
// ...). Two-card hands and anything the library rejects return "".
func Describe(h Hand) string {
	if len(h) != 3 {
		return ""
	}
	pcs := make([]poker.Card, 0, 3)
	for _, c := range h {
		pc, err := toPH(c)
		if err != nil {
			return ""
		}
		pcs = append(pcs, pc)
	}
	d, err := poker.Describe(pcs)
	if err != nil {
		return ""
	}
	return d
}
