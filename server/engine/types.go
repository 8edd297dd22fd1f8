package engine

type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is the fixed enumeration order used when building a deck.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) Valid() bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}
	return false
}

type Card struct {
	Number int  `json:"number"`
	Suit   Suit `json:"suit"`
} // 1 = Ace, 11/12/13 = J/Q/K

// Hand is the cards one seat holds, in the order they were submitted.
type Hand []Card

type Decision string

const (
	Stand Decision = "stand"
	Hit   Decision = "hit"
)

// Rule names the branch that produced a decision.
type Rule string

const (
	RuleDoubleHighCard Rule = "double_high_card"
	RuleDrawOdds       Rule = "draw_odds"
	RulePok            Rule = "pok"
	RuleThreshold      Rule = "threshold"
	RuleDengThreshold  Rule = "deng_threshold"
	RuleDefaultHit     Rule = "default_hit"
)
