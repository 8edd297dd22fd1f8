package engine

// PointValue is a single card's contribution: face cards count 0, the rest
// their number.
func PointValue(c Card) int {
	if c.Number > 10 {
		return 0
	}
	return c.Number
}

// Points sums the point values of cards modulo 10.
func Points(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += PointValue(c)
	}
	return total % 10
}

// IsPok reports a natural 8 or 9 on exactly two cards.
func IsPok(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	p := Points(cards)
	return p == 8 || p == 9
}

// IsDeng reports a two-card hand sharing suit or number.
func IsDeng(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	return cards[0].Suit == cards[1].Suit || cards[0].Number == cards[1].Number
}

func isHighCard(c Card) bool { return c.Number >= 10 && c.Number <= King }

// HighCards counts cards numbered 10 through King.
func HighCards(cards []Card) int {
	n := 0
	for _, c := range cards {
		if isHighCard(c) {
			n++
		}
	}
	return n
}

func (h Hand) Points() int { return Points(h) }
func (h Hand) Pok() bool   { return IsPok(h) }
func (h Hand) Deng() bool  { return IsDeng(h) }
