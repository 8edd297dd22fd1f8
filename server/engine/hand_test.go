package engine

import "testing"

func TestPoints(t *testing.T) {
	cases := []struct {
		hand Hand
		want int
	}{
		{Hand{{8, Hearts}, {1, Clubs}}, 9},
		{Hand{{5, Hearts}, {5, Clubs}}, 0},
		{Hand{{Jack, Hearts}, {Queen, Clubs}}, 0},
		{Hand{{10, Hearts}, {7, Clubs}}, 7},
		{Hand{{King, Hearts}, {4, Clubs}, {9, Spades}}, 3},
		{Hand{{9, Hearts}, {9, Clubs}, {9, Spades}}, 7},
	}
	for _, tc := range cases {
		if got := Points(tc.hand); got != tc.want {
			t.Fatalf("Points(%v) = %d, want %d", tc.hand, got, tc.want)
		}
	}
}

func TestPointsOrderInvariant(t *testing.T) {
	deck := BuildFullDeck()
	for i := 0; i < len(deck); i += 3 {
		for j := 0; j < len(deck); j += 5 {
			for k := 0; k < len(deck); k += 7 {
				a, b, c := deck[i], deck[j], deck[k]
				p := Points([]Card{a, b, c})
				for _, perm := range [][]Card{{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}} {
					if Points(perm) != p {
						t.Fatalf("order changed points for %v", perm)
					}
				}
			}
		}
	}
}

func TestFaceCardsScoreZero(t *testing.T) {
	for _, s := range Suits {
		for n := Jack; n <= King; n++ {
			if v := PointValue(Card{n, s}); v != 0 {
				t.Fatalf("PointValue(%d) = %d", n, v)
			}
		}
	}
	if v := PointValue(Card{Ace, Spades}); v != 1 {
		t.Fatalf("ace = %d, want 1", v)
	}
}

func TestIsPokAllTwoCardHands(t *testing.T) {
	deck := BuildFullDeck()
	for _, a := range deck {
		for _, b := range deck {
			h := []Card{a, b}
			p := Points(h)
			if want := p == 8 || p == 9; IsPok(h) != want {
				t.Fatalf("IsPok(%v) = %v, points %d", h, !want, p)
			}
			if want := a.Suit == b.Suit || a.Number == b.Number; IsDeng(h) != want {
				t.Fatalf("IsDeng(%v) = %v", h, !want)
			}
		}
	}
}

func TestSpecialsNeedTwoCards(t *testing.T) {
	hands := []Hand{
		{},
		{{9, Hearts}},
		{{4, Hearts}, {4, Hearts}, {King, Hearts}},
		{{5, Clubs}, {3, Clubs}, {10, Clubs}, {Queen, Clubs}},
	}
	for _, h := range hands {
		if h.Pok() || h.Deng() {
			t.Fatalf("%d-card hand %v flagged pok=%v deng=%v", len(h), h, h.Pok(), h.Deng())
		}
	}
}

func TestHighCards(t *testing.T) {
	if n := HighCards(Hand{{10, Hearts}, {King, Clubs}, {9, Spades}}); n != 2 {
		t.Fatalf("got %d, want 2", n)
	}
	if n := HighCards(Hand{{Ace, Hearts}, {9, Clubs}}); n != 0 {
		t.Fatalf("got %d, want 0", n)
	}
}
