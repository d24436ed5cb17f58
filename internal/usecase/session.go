package usecase

import (
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

// GameSession is one round. It is replaced wholesale on New Game and Restart.
type GameSession struct {
	ID         string
	Generation uint64

	Board     entity.Board
	Turn      entity.Symbol
	History   entity.MoveHistory
	Highlight []int
	Status    string
}

func newGameSession(generation uint64) *GameSession {
	return &GameSession{
		ID:         pkg.GenerateNewSessionID(),
		Generation: generation,
		Board:      entity.NewBoard(),
		Turn:       entity.PlayerX,
	}
}

func (that *GameSession) Outcome() tictactoe.Outcome {
	return tictactoe.Evaluate(&that.Board)
}

func (that *GameSession) IsTerminal() bool {
	return that.Outcome().IsTerminal()
}

// BoardSnapshot is what renderers need to draw the grid.
type BoardSnapshot struct {
	Board     entity.Board      `json:"board"`
	Turn      entity.Symbol     `json:"turn"`
	Highlight []int             `json:"highlight"`
	History   []entity.Move     `json:"history"`
	Outcome   tictactoe.Outcome `json:"outcome"`
}

func (that *GameSession) snapshot() BoardSnapshot {
	return BoardSnapshot{
		Board:     that.Board,
		Turn:      that.Turn,
		Highlight: append([]int{}, that.Highlight...),
		History:   that.History.All(),
		Outcome:   that.Outcome(),
	}
}

// State is the full read model of the running game.
type State struct {
	BoardSnapshot

	SessionID string          `json:"sessionId"`
	Status    string          `json:"status"`
	Settings  entity.Settings `json:"settings"`
	Stats     entity.Stats    `json:"stats"`
	Badges    entity.Badges   `json:"badges"`
}
