package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pokdeng-api/server/engine"
	"pokdeng-api/server/store"
)

// maxBodyBytes caps request bodies; a full batch of 3-card hands is far below it.
const maxBodyBytes = 1 << 20

// Server holds what the handlers share. DB may be nil.
type Server struct {
	Cfg   Config
	DB    *store.DB
	Tally *Tally
}

func Router(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.Cfg.Timeout))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "Pokdeng API is running!")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/pokdeng", s.handleDecide)
		r.Post("/pokdeng/explain", s.handleExplain)
		r.Get("/stats", s.handleStats)
		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleHistoryItem)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := false
	if s.DB != nil {
		ctx, cancel := withTimeout(r.Context(), 2*time.Second)
		defer cancel()
		dbOK = s.DB.Ping(ctx) == nil
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": dbOK})
}

func (s *Server) readBatch(w http.ResponseWriter, r *http.Request) (Batch, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgBadJSON)
		return Batch{}, false
	}
	b, err := decodeBatch(body, s.Cfg.MaxHands)
	if err != nil {
		var br badRequest
		if errors.As(err, &br) {
			writeError(w, http.StatusBadRequest, br.msg)
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return Batch{}, false
	}
	return b, true
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	b, ok := s.readBatch(w, r)
	if !ok {
		return
	}
	decisions, err := engine.EvaluateBatch(r.Context(), b.Hands, b.Strategy, engine.Options{Workers: s.Cfg.Workers})
	if err != nil {
		if errors.Is(err, engine.ErrUnsupportedStrategy) {
			writeError(w, http.StatusBadRequest, msgBadGameType)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.Tally.Add(b.Strategy, decisions)
	s.audit(r.Context(), b, decisions)
	writeJSON(w, http.StatusOK, decisions)
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	b, ok := s.readBatch(w, r)
	if !ok {
		return
	}
	rows, err := engine.Explain(b.Hands, b.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"strategy": b.Strategy.String(), "rows": rows})
}

// audit writes the batch to the store. Failures are logged, never surfaced.
func (s *Server) audit(ctx context.Context, b Batch, decisions []engine.Decision) {
	if s.DB == nil {
		return
	}
	ctx, cancel := withTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if _, err := s.DB.RecordBatch(ctx, int(b.Strategy), b.Hands, decisions, len(b.Hands)); err != nil {
		log.Printf("RecordBatch failed: %v", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	type Row struct {
		DecisionTally
		StandPct int `json:"stand_pct"`
	}
	rows := []Row{}
	for _, t := range s.Tally.Snapshot() {
		rows = append(rows, Row{DecisionTally: t, StandPct: t.StandPct()})
	}
	out := map[string]any{"rows": rows}
	if s.DB != nil {
		ctx, cancel := withTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if mix, err := s.DB.DecisionMix(ctx); err == nil {
			out["stored"] = mix
		} else {
			log.Printf("DecisionMix failed: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "history disabled (no DATABASE_URL)")
		return
	}
	limit := atoiDef(r.URL.Query().Get("limit"), 20)
	ctx, cancel := withTimeout(r.Context(), 5*time.Second)
	defer cancel()
	rows, err := s.DB.RecentBatches(ctx, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query recent batches failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows})
}

func (s *Server) handleHistoryItem(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "history disabled (no DATABASE_URL)")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid batch id")
		return
	}
	ctx, cancel := withTimeout(r.Context(), 5*time.Second)
	defer cancel()
	b, ok, err := s.DB.GetBatch(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query batch failed")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}
