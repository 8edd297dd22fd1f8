package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"pokdeng-api/server/engine"
)

//
// ===== strategy chart (--chart) =====
//

type chartRow struct {
	Hand   engine.Hand
	Suited bool
	Points int
	Pok    bool
	Deng   bool
	V1     engine.Decision
	V2     engine.Decision
}

// chartRows lists every two-card starting hand by number, once suited and
// once off-suit (pairs only off-suit). V2 sees the hand alone on the table.
func chartRows() []chartRow {
	var out []chartRow
	for a := engine.Ace; a <= engine.King; a++ {
		for b := a; b <= engine.King; b++ {
			variants := []bool{true, false}
			if a == b {
				variants = []bool{false}
			}
			for _, suited := range variants {
				second := engine.Clubs
				if suited {
					second = engine.Hearts
				}
				h := engine.Hand{{Number: a, Suit: engine.Hearts}, {Number: b, Suit: second}}
				v2, _ := engine.RuleV2.Decider([]engine.Hand{h})
				out = append(out, chartRow{
					Hand:   h,
					Suited: suited,
					Points: h.Points(),
					Pok:    h.Pok(),
					Deng:   h.Deng(),
					V1:     engine.StaticRule{}.Decide(h),
					V2:     v2.Decide(h),
				})
			}
		}
	}
	return out
}

func decisionCell(d engine.Decision) string {
	if d == engine.Stand {
		return pterm.LightGreen(string(d))
	}
	return pterm.LightRed(string(d))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func printChart(color bool) error {
	if !color {
		pterm.DisableColor()
	}
	data := pterm.TableData{{"Hand", "Suited", "Points", "Pok", "Deng", "V1", "V2"}}
	diff := 0
	for _, r := range chartRows() {
		if r.V1 != r.V2 {
			diff++
		}
		data = append(data, []string{
			fmt.Sprintf("%v %v", r.Hand[0], r.Hand[1]),
			yesNo(r.Suited),
			strconv.Itoa(r.Points),
			yesNo(r.Pok),
			yesNo(r.Deng),
			decisionCell(r.V1),
			decisionCell(r.V2),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("%d of %d hands decide differently under V2", diff, len(data)-1)
	return nil
}
