package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

/* -----------------------------
   Batch audit log
------------------------------*/

// RecordBatch stores one evaluated request and returns its id. hands and
// decisions are stored as JSON exactly as they went over the wire.
func (db *DB) RecordBatch(ctx context.Context, gameType int, hands, decisions any, handCount int) (int64, error) {
	hb, err := json.Marshal(hands)
	if err != nil {
		return 0, err
	}
	decb, err := json.Marshal(decisions)
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(ctx, `
        INSERT INTO batches(game_type, hand_count, hands, decisions)
        VALUES ($1, $2, $3::jsonb, $4::jsonb)
        RETURNING id
    `, gameType, handCount, string(hb), string(decb)).Scan(&id)
	return id, err
}

type Batch struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	GameType  int             `json:"game_type"`
	HandCount int             `json:"hand_count"`
	Hands     json.RawMessage `json:"hands"`
	Decisions json.RawMessage `json:"decisions"`
}

// RecentBatches lists the newest batches first. limit is clamped to 1..200.
func (db *DB) RecentBatches(ctx context.Context, limit int) ([]Batch, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	rows, err := db.Query(ctx, `
		SELECT id, created_at, game_type, hand_count, hands, decisions
		  FROM batches
		 ORDER BY id DESC
		 LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Batch{}
	for rows.Next() {
		var b Batch
		var hands, decisions []byte
		if err := rows.Scan(&b.ID, &b.CreatedAt, &b.GameType, &b.HandCount, &hands, &decisions); err != nil {
			return nil, err
		}
		b.Hands = hands
		b.Decisions = decisions
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBatch fetches one batch; ok is false when the id does not exist.
func (db *DB) GetBatch(ctx context.Context, id int64) (b Batch, ok bool, err error) {
	var hands, decisions []byte
	err = db.QueryRow(ctx, `
		SELECT id, created_at, game_type, hand_count, hands, decisions
		  FROM batches WHERE id = $1
	`, id).Scan(&b.ID, &b.CreatedAt, &b.GameType, &b.HandCount, &hands, &decisions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Batch{}, false, nil
		}
		return Batch{}, false, err
	}
	b.Hands = hands
	b.Decisions = decisions
	return b, true, nil
}

type DecisionMix struct {
	GameType int `json:"game_type"`
	Batches  int `json:"batches"`
	Hands    int `json:"hands"`
	Stand    int `json:"stand"`
	Hit      int `json:"hit"`
}

// DecisionMix aggregates every stored batch by game type.
func (db *DB) DecisionMix(ctx context.Context) ([]DecisionMix, error) {
	rows, err := db.Query(ctx, `
		SELECT game_type, batches, hands, stand_ct, hit_ct
		  FROM v_decision_mix
		 ORDER BY game_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []DecisionMix{}
	for rows.Next() {
		var m DecisionMix
		if err := rows.Scan(&m.GameType, &m.Batches, &m.Hands, &m.Stand, &m.Hit); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
