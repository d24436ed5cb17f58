package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

const winScore = 10

// PreferenceOrder is the root move order: center, corners, edges.
var PreferenceOrder = [entity.BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

// BestMove returns the optimal cell for side. The board is mutated during the
// search and restored before returning.
func BestMove(board *entity.Board, side entity.Symbol) (int, error) {
	cell, _, err := bestMove(board, side)
	return cell, err
}

func bestMove(board *entity.Board, side entity.Symbol) (int, int, error) {
	if !side.IsPlayer() {
		return -1, 0, fmt.Errorf("%w: side %q", apperror.ErrInvalidMove, side)
	}

	if board.IsFull() {
		return -1, 0, apperror.ErrNoLegalMove
	}

	opponent := side.Opponent()
	bestCell, bestScore := -1, math.MinInt

	for _, cell := range PreferenceOrder {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = side
		score := minimax(board, 0, false, side, opponent, math.MinInt, math.MaxInt)
		board[cell] = entity.Empty

		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, bestScore, nil
}

// minimax scores the position from side's point of view. Each cell placed
// here is emptied again before the next iteration or return.
func minimax(board *entity.Board, depth int, maximizing bool, side, opponent entity.Symbol, alpha, beta int) int {
	if w := winner(board); w != entity.Empty {
		if w == side {
			return winScore - depth
		}
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for cell := range board {
			if board[cell] != entity.Empty {
				continue
			}

			board[cell] = side
			score := minimax(board, depth+1, false, side, opponent, alpha, beta)
			board[cell] = entity.Empty

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = opponent
		score := minimax(board, depth+1, true, side, opponent, alpha, beta)
		board[cell] = entity.Empty

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
