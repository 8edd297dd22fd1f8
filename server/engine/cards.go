package engine

import "fmt"

const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// BuildFullDeck returns all 52 cards, numbers ascending with the suits in
// Suits order nested inside each number.
func BuildFullDeck() []Card {
	deck := make([]Card, 0, 52)
	for n := Ace; n <= King; n++ {
		for _, s := range Suits {
			deck = append(deck, Card{Number: n, Suit: s})
		}
	}
	return deck
}

func (c Card) Validate() error {
	if c.Number < Ace || c.Number > King {
		return fmt.Errorf("%w: number %d out of range 1-13", ErrInvalidCard, c.Number)
	}
	if !c.Suit.Valid() {
		return fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(c.Suit))
	}
	return nil
}

func (c Card) String() string {
	ranks := " A23456789TJQK"
	if c.Number < Ace || c.Number > King || c.Suit == "" {
		return "??"
	}
	return fmt.Sprintf("%c%c", ranks[c.Number], c.Suit[0])
}

// Validate checks a hand as submitted by a caller: 2 or 3 cards, each valid.
func (h Hand) Validate() error {
	if len(h) < 2 || len(h) > 3 {
		return fmt.Errorf("%w: want 2 or 3 cards, got %d", ErrInvalidHand, len(h))
	}
	for i, c := range h {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}
