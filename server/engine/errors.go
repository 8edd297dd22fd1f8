package engine

import "errors"

var (
	ErrUnsupportedStrategy = errors.New("unsupported strategy")
	ErrInvalidCard         = errors.New("invalid card")
	ErrInvalidHand         = errors.New("invalid hand")
)
