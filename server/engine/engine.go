package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers bounds concurrent hand evaluation; <= 0 means GOMAXPROCS.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// EvaluateBatch decides every hand with strategy s. The whole batch is the
// table for V2, so every hand's cards are out of the deck. Result i always
// belongs to hands[i].
func EvaluateBatch(ctx context.Context, hands []Hand, s Strategy, opts Options) ([]Decision, error) {
	d, err := s.Decider(hands)
	if err != nil {
		return nil, err
	}
	out := make([]Decision, len(hands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i := range hands {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = d.Decide(hands[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Analysis is the per-hand breakdown behind a decision.
type Analysis struct {
	Cards       Hand     `json:"cards"`
	Points      int      `json:"points"`
	Pok         bool     `json:"pok"`
	Deng        bool     `json:"deng"`
	HighCards   int      `json:"high_cards"`
	Odds        *Odds    `json:"odds,omitempty"`
	Chance      *float64 `json:"chance,omitempty"`
	Rule        Rule     `json:"rule"`
	Decision    Decision `json:"decision"`
	Description string   `json:"description,omitempty"`
}

// Explain evaluates hands like EvaluateBatch but keeps the working.
func Explain(hands []Hand, s Strategy) ([]Analysis, error) {
	if _, err := s.Decider(nil); err != nil {
		return nil, err
	}
	var v2 DrawOddsRule
	if s == RuleV2 {
		v2 = NewDrawOddsRule(hands)
	}
	out := make([]Analysis, 0, len(hands))
	for _, h := range hands {
		a := Analysis{
			Cards:       h,
			Points:      h.Points(),
			Pok:         h.Pok(),
			Deng:        h.Deng(),
			HighCards:   HighCards(h),
			Description: Describe(h),
		}
		if s == RuleV2 {
			a.Decision, a.Rule, a.Odds = v2.decide(h)
			if a.Odds != nil {
				if c, ok := a.Odds.Chance(); ok {
					a.Chance = &c
				}
			}
		} else {
			a.Decision, a.Rule = staticDecision(h)
		}
		out = append(out, a)
	}
	return out, nil
}
