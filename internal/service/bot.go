package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

type BotService interface {
	ChooseMove(board entity.Board, mode entity.Mode, side entity.Symbol) (int, error)
}

type botService struct {
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

// ChooseMove picks a random empty cell in easy mode and the minimax move otherwise.
// The board is passed by value so the caller's board is never touched.
func (that *botService) ChooseMove(board entity.Board, mode entity.Mode, side entity.Symbol) (int, error) {
	switch mode {
	case entity.ModePvEEasy:
		availableCells := board.EmptyCells()
		if len(availableCells) == 0 {
			return -1, apperror.ErrNoLegalMove
		}

		return availableCells[that.rng.Intn(len(availableCells))], nil
	case entity.ModePvEOptimal:
		cell, err := tictactoe.BestMove(&board, side)
		if err != nil {
			return -1, fmt.Errorf("failed to search best move: %w", err)
		}

		return cell, nil
	default:
		return -1, fmt.Errorf("%w: %q has no computer player", apperror.ErrNotAiTurn, mode)
	}
}
