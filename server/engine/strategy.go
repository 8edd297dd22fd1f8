package engine

import "fmt"

// Strategy selects the decision rule applied to a batch.
type Strategy int

const (
	RuleV1 Strategy = 1 // static thresholds
	RuleV2 Strategy = 2 // thresholds plus draw-odds and high-card overrides
)

func ParseStrategy(v int) (Strategy, error) {
	s := Strategy(v)
	switch s {
	case RuleV1, RuleV2:
		return s, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedStrategy, v)
}

func (s Strategy) String() string {
	switch s {
	case RuleV1:
		return "v1"
	case RuleV2:
		return "v2"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Decider decides a single hand. Implementations are read-only and safe for
// concurrent use.
type Decider interface {
	Decide(h Hand) Decision
}

// Decider builds the rule for s given every hand on the table.
func (s Strategy) Decider(table []Hand) (Decider, error) {
	switch s {
	case RuleV1:
		return StaticRule{}, nil
	case RuleV2:
		return NewDrawOddsRule(table), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedStrategy, int(s))
}

// drawOddsTrigger is the chance of a good draw above which V2 always hits.
const drawOddsTrigger = 0.7

type StaticRule struct{}

func (StaticRule) Decide(h Hand) Decision {
	d, _ := staticDecision(h)
	return d
}

// staticDecision is the V1 table. Pok is checked first: it is terminal.
func staticDecision(h Hand) (Decision, Rule) {
	point := h.Points()
	switch {
	case h.Pok():
		return Stand, RulePok
	case point >= 7:
		return Stand, RuleThreshold
	case point >= 5 && h.Deng():
		return Stand, RuleDengThreshold
	}
	return Hit, RuleDefaultHit
}

type DrawOddsRule struct {
	Remaining []Card
}

func NewDrawOddsRule(table []Hand) DrawOddsRule {
	return DrawOddsRule{Remaining: RemainingDeck(table)}
}

func (r DrawOddsRule) Decide(h Hand) Decision {
	d, _, _ := r.decide(h)
	return d
}

func (r DrawOddsRule) decide(h Hand) (Decision, Rule, *Odds) {
	if HighCards(h) == 2 {
		return Hit, RuleDoubleHighCard, nil
	}
	odds := DrawOdds(h, r.Remaining)
	if chance, ok := odds.Chance(); ok && chance > drawOddsTrigger {
		return Hit, RuleDrawOdds, &odds
	}
	d, rule := staticDecision(h)
	return d, rule, &odds
}
