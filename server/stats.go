package main

import (
	"sort"
	"sync"

	"pokdeng-api/server/engine"
)

//
// ===== decision tallies (per strategy) =====
//

type DecisionTally struct {
	Strategy string `json:"strategy"`
	Requests int    `json:"requests"`
	Hands    int    `json:"hands"`
	Stand    int    `json:"stand"`
	Hit      int    `json:"hit"`
}

func (t DecisionTally) StandPct() int {
	if t.Hands == 0 {
		return 0
	}
	return int(100*float64(t.Stand)/float64(t.Hands) + 0.5)
}

// Tally counts decisions served since the process started.
type Tally struct {
	mu sync.Mutex
	by map[engine.Strategy]*DecisionTally
}

func NewTally() *Tally {
	return &Tally{by: map[engine.Strategy]*DecisionTally{}}
}

func (t *Tally) Add(s engine.Strategy, decisions []engine.Decision) {
	t.mu.Lock()
	defer t.mu.Unlock()
	x := t.by[s]
	if x == nil {
		x = &DecisionTally{Strategy: s.String()}
		t.by[s] = x
	}
	x.Requests++
	x.Hands += len(decisions)
	for _, d := range decisions {
		switch d {
		case engine.Stand:
			x.Stand++
		case engine.Hit:
			x.Hit++
		}
	}
}

// Snapshot returns a copy ordered by strategy.
func (t *Tally) Snapshot() []DecisionTally {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]engine.Strategy, 0, len(t.by))
	for k := range t.by {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]DecisionTally, 0, len(keys))
	for _, k := range keys {
		out = append(out, *t.by[k])
	}
	return out
}
