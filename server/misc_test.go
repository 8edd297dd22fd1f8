package main

import (
	"testing"

	"pokdeng-api/server/engine"
)

func TestTallySnapshotOrder(t *testing.T) {
	tl := NewTally()
	tl.Add(engine.RuleV2, []engine.Decision{engine.Hit, engine.Hit})
	tl.Add(engine.RuleV1, []engine.Decision{engine.Stand, engine.Hit, engine.Stand})
	tl.Add(engine.RuleV1, nil)
	snap := tl.Snapshot()
	if len(snap) != 2 || snap[0].Strategy != "v1" || snap[1].Strategy != "v2" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap[0].Requests != 2 || snap[0].Hands != 3 || snap[0].Stand != 2 || snap[0].StandPct() != 67 {
		t.Fatalf("v1 = %+v pct=%d", snap[0], snap[0].StandPct())
	}
	if snap[1].StandPct() != 0 || snap[1].Hit != 2 {
		t.Fatalf("v2 = %+v", snap[1])
	}
}

func TestChartRows(t *testing.T) {
	rows := chartRows()
	// 78 non-pair number combos twice (suited/off) plus 13 pairs
	if len(rows) != 78*2+13 {
		t.Fatalf("rows = %d", len(rows))
	}
	for _, r := range rows {
		if r.V1 != (engine.StaticRule{}).Decide(r.Hand) {
			t.Fatalf("%v: V1 mismatch", r.Hand)
		}
		if r.Suited && !r.Deng {
			t.Fatalf("%v: suited hand is not deng", r.Hand)
		}
		if r.Hand[0].Number >= engine.Jack && r.Hand[1].Number >= engine.Jack && r.V2 != engine.Hit {
			t.Fatalf("%v: two faces should hit under V2", r.Hand)
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	if atoiDef(" 12 ", 3) != 12 || atoiDef("x", 3) != 3 || atoiDef("", 3) != 3 {
		t.Fatal("atoiDef")
	}
	for _, s := range []string{"1", "true", "YES", " on "} {
		if !asBool(s) {
			t.Fatalf("asBool(%q) = false", s)
		}
	}
	if asBool("0") || asBool("") {
		t.Fatal("asBool false values")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "AUTO_MIGRATE", "EVAL_WORKERS", "MAX_HANDS", "REQUEST_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}
	t.Setenv("MAX_HANDS", "-4")
	cfg := loadConfig()
	if cfg.Port != "3000" || cfg.MaxHands != 64 || cfg.DatabaseURL != "" || cfg.AutoMigrate || cfg.Timeout.Seconds() != 15 {
		t.Fatalf("cfg = %+v", cfg)
	}
}
