package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"pokdeng-api/server/engine"
)

const (
	msgBadHands    = "Invalid or missing playHands array"
	msgBadGameType = "Invalid or missing gameType (must be 1 or 2)"
	msgBadJSON     = "invalid JSON body"
)

var errBadRequest = errors.New("bad request")

// badRequest carries the message sent back to the client verbatim.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }
func (e badRequest) Unwrap() error { return errBadRequest }

// pokdengRequest is the wire body. Fields stay raw so each one can be
// rejected with its own message.
type pokdengRequest struct {
	PlayHands json.RawMessage `json:"playHands"`
	GameType  json.RawMessage `json:"gameType"`
}

// Batch is a request that passed validation.
type Batch struct {
	Hands    []engine.Hand
	Strategy engine.Strategy
}

func decodeBatch(body []byte, maxHands int) (Batch, error) {
	var req pokdengRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return Batch{}, badRequest{msgBadJSON}
	}

	raw := bytes.TrimSpace(req.PlayHands)
	if len(raw) == 0 || raw[0] != '[' {
		return Batch{}, badRequest{msgBadHands}
	}
	var hands []engine.Hand
	if err := json.Unmarshal(raw, &hands); err != nil {
		return Batch{}, badRequest{msgBadHands}
	}

	var gt int
	if err := json.Unmarshal(req.GameType, &gt); err != nil || len(req.GameType) == 0 {
		return Batch{}, badRequest{msgBadGameType}
	}
	s, err := engine.ParseStrategy(gt)
	if err != nil {
		return Batch{}, badRequest{msgBadGameType}
	}

	if maxHands > 0 && len(hands) > maxHands {
		return Batch{}, badRequest{fmt.Sprintf("too many hands: %d (max %d)", len(hands), maxHands)}
	}
	for i, h := range hands {
		if err := h.Validate(); err != nil {
			return Batch{}, badRequest{fmt.Sprintf("hand %d: %v", i, err)}
		}
	}
	if hands == nil {
		hands = []engine.Hand{}
	}
	return Batch{Hands: hands, Strategy: s}, nil
}
