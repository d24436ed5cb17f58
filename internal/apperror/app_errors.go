package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoLegalMove       = errors.New("no legal move")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotAiTurn         = errors.New("it's not the computer's turn")
	ErrMalformedRecord   = errors.New("malformed persisted record")
	ErrRecordNotFound    = errors.New("record not found")
	ErrResetNotConfirmed = errors.New("reset is not confirmed")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrUnknownSymbol     = errors.New("unknown player symbol")
)
