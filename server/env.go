package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

//
// ===== env helpers =====
//

func mustEnv(keys ...string) {
	for _, k := range keys {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing required env var %s. Put it in .env (dev) or set it on the host (prod).", k)
		}
	}
}
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func atoiDef(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// Config is everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	AutoMigrate bool
	Workers     int
	MaxHands    int
	Timeout     time.Duration
	Color       bool
}

func loadConfig() Config {
	cfg := Config{
		Port:        getenv("PORT", "3000"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AutoMigrate: asBool(os.Getenv("AUTO_MIGRATE")),
		Workers:     atoiDef(os.Getenv("EVAL_WORKERS"), 0),
		MaxHands:    atoiDef(os.Getenv("MAX_HANDS"), 64),
		Timeout:     time.Duration(atoiDef(os.Getenv("REQUEST_TIMEOUT_SECONDS"), 15)) * time.Second,
		Color:       (os.Getenv("NO_COLOR") == "") && (strings.TrimSpace(os.Getenv("USE_COLOR")) != "0"),
	}
	if cfg.MaxHands <= 0 {
		cfg.MaxHands = 64
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return cfg
}
