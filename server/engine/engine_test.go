package engine

import (
	"context"
	"errors"
	"testing"
)

func TestEvaluateBatchKeepsOrder(t *testing.T) {
	hands := []Hand{
		{{8, Hearts}, {1, Clubs}},
		{{3, Hearts}, {2, Clubs}},
		{{5, Hearts}, {2, Clubs}},
		{{3, Spades}, {2, Spades}},
		{{Queen, Hearts}, {King, Clubs}},
	}
	want := []Decision{Stand, Hit, Stand, Stand, Hit}
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := EvaluateBatch(context.Background(), hands, RuleV1, Options{Workers: workers})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(got) != len(want) {
			t.Fatalf("workers=%d: len %d, want %d", workers, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: hand %d = %s, want %s", workers, i, got[i], want[i])
			}
		}
	}
}

func TestEvaluateBatchV2MatchesDecider(t *testing.T) {
	deck := BuildFullDeck()
	var hands []Hand
	for i := 0; i+1 < len(deck); i += 2 {
		hands = append(hands, Hand{deck[i], deck[(i*7+3)%len(deck)]})
	}
	got, err := EvaluateBatch(context.Background(), hands, RuleV2, Options{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	rule := NewDrawOddsRule(hands)
	for i, h := range hands {
		if want := rule.Decide(h); got[i] != want {
			t.Fatalf("hand %d %v = %s, want %s", i, h, got[i], want)
		}
	}
}

func TestEvaluateBatchEmpty(t *testing.T) {
	for _, s := range []Strategy{RuleV1, RuleV2} {
		got, err := EvaluateBatch(context.Background(), nil, s, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%s: got %#v, want empty slice", s, got)
		}
	}
}

func TestEvaluateBatchUnsupported(t *testing.T) {
	_, err := EvaluateBatch(context.Background(), []Hand{{{1, Hearts}, {2, Hearts}}}, Strategy(3), Options{})
	if !errors.Is(err, ErrUnsupportedStrategy) {
		t.Fatalf("err = %v, want ErrUnsupportedStrategy", err)
	}
}

func TestEvaluateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EvaluateBatch(ctx, []Hand{{{1, Hearts}, {2, Hearts}}}, RuleV1, Options{Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestExplain(t *testing.T) {
	hands := []Hand{
		{{Queen, Hearts}, {King, Clubs}},
		{{8, Hearts}, {1, Clubs}},
		{{4, Spades}, {4, Diamonds}, {4, Clubs}},
	}
	rows, err := Explain(hands, RuleV2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].Rule != RuleDoubleHighCard || rows[0].Odds != nil || rows[0].Chance != nil {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if !rows[1].Pok || rows[1].Points != 9 || rows[1].Rule != RulePok || rows[1].Chance == nil {
		t.Fatalf("row 1 = %+v", rows[1])
	}
	if rows[1].Description != "" {
		t.Fatalf("two-card hand described as %q", rows[1].Description)
	}
	if rows[2].Description == "" {
		t.Fatalf("three-card hand has no description")
	}

	v1, err := Explain(hands, RuleV1)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range v1 {
		if a.Odds != nil {
			t.Fatalf("V1 row %d carries odds", i)
		}
		if a.Decision != (StaticRule{}).Decide(hands[i]) {
			t.Fatalf("V1 row %d decision mismatch", i)
		}
	}

	if _, err := Explain(hands, Strategy(0)); !errors.Is(err, ErrUnsupportedStrategy) {
		t.Fatalf("err = %v", err)
	}
}
