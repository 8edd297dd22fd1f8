package engine

// Odds counts the draws from a remaining deck that leave a hand above 7.
type Odds struct {
	Good  int `json:"good"`
	Total int `json:"total"`
}

// goodDrawThreshold is the point total a draw has to beat.
const goodDrawThreshold = 7

// Chance is Good/Total. ok is false for an empty deck, which callers treat as
// "no override" rather than dividing by zero.
func (o Odds) Chance() (chance float64, ok bool) {
	if o.Total == 0 {
		return 0, false
	}
	return float64(o.Good) / float64(o.Total), true
}

// RemainingDeck is the full deck minus every card held anywhere on the table.
// Duplicate cards on the table remove the single matching deck card once.
func RemainingDeck(table []Hand) []Card {
	used := map[Card]bool{}
	for _, h := range table {
		for _, c := range h {
			used[c] = true
		}
	}
	deck := BuildFullDeck()
	avail := make([]Card, 0, len(deck))
	for _, c := range deck {
		if !used[c] {
			avail = append(avail, c)
		}
	}
	return avail
}

// DrawOdds enumerates every card in remaining as a third draw onto hand.
func DrawOdds(hand Hand, remaining []Card) Odds {
	sim := make([]Card, len(hand)+1)
	copy(sim, hand)
	o := Odds{Total: len(remaining)}
	for _, c := range remaining {
		sim[len(hand)] = c
		if Points(sim) > goodDrawThreshold {
			o.Good++
		}
	}
	return o
}
