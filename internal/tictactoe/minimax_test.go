package tictactoe

import (
	"math"
	"testing"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMove(t *testing.T) {
	t.Run("Empty board opens in the center", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: X asks for the best move
		cell, err := BestMove(&board, x)

		// Then: the center comes first in preference order and draws
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Answers a center opening with a corner", func(t *testing.T) {
		// Given: X took the center
		board := entity.Board{e, e, e, e, x, e, e, e, e}

		// When: O asks for the best move
		cell, err := BestMove(&board, o)

		// Then: O picks a corner, never an edge
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 6, 8}, cell)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		// Given: X can complete the top row
		board := entity.Board{x, x, e, o, o, e, e, e, e}

		// When: X asks for the best move
		cell, err := BestMove(&board, x)

		// Then: X wins at once instead of blocking
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the top row and O has no win
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		// When: O asks for the best move
		cell, err := BestMove(&board, o)

		// Then: O blocks at cell 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Leaves the board untouched", func(t *testing.T) {
		// Given: a mid-game board
		board := entity.Board{x, e, e, e, o, e, e, e, x}
		before := board

		// When: searching
		_, err := BestMove(&board, o)

		// Then: the board is identical to its pre-call state
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a full board
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		// When: a best move is requested
		cell, err := BestMove(&board, x)

		// Then: ErrNoLegalMove is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, -1, cell)
	})

	t.Run("Error on empty side", func(t *testing.T) {
		board := entity.NewBoard()

		_, err := BestMove(&board, e)

		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

// plainMinimax is the unpruned reference search.
func plainMinimax(board *entity.Board, depth int, maximizing bool, side, opponent entity.Symbol) int {
	if w := winner(board); w != entity.Empty {
		if w == side {
			return winScore - depth
		}
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, cell := range board.EmptyCells() {
		if maximizing {
			board[cell] = side
			best = max(best, plainMinimax(board, depth+1, false, side, opponent))
		} else {
			board[cell] = opponent
			best = min(best, plainMinimax(board, depth+1, true, side, opponent))
		}
		board[cell] = entity.Empty
	}

	return best
}

func plainBestMove(board entity.Board, side entity.Symbol) (int, int) {
	bestCell, bestScore := -1, math.MinInt
	for _, cell := range PreferenceOrder {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = side
		score := plainMinimax(&board, 0, false, side, side.Opponent())
		board[cell] = entity.Empty

		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, bestScore
}

func TestBestMove_MatchesUnprunedSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search comparison")
	}

	for board := range reachableBoards() {
		if Evaluate(&board).IsTerminal() {
			continue
		}

		side := x
		if board.Count(x) > board.Count(o) {
			side = o
		}

		before := board
		cell, score, err := bestMove(&board, side)
		require.NoError(t, err)

		wantCell, wantScore := plainBestMove(board, side)

		assert.Equal(t, wantCell, cell, "board %v side %s", board, side)
		assert.Equal(t, wantScore, score, "board %v side %s", board, side)
		assert.Equal(t, before, board)
	}
}

// assertNeverLoses lets side play BestMove against every possible opponent reply.
func assertNeverLoses(t *testing.T, board entity.Board, side, turn entity.Symbol) {
	t.Helper()

	outcome := Evaluate(&board)
	if outcome.IsTerminal() {
		require.NotEqual(t, side.Opponent(), outcome.Winner, "searching side lost on %v", board)
		return
	}

	if turn == side {
		cell, err := BestMove(&board, side)
		require.NoError(t, err)
		require.NoError(t, board.Set(cell, side))
		assertNeverLoses(t, board, side, turn.Opponent())
		return
	}

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = turn
		assertNeverLoses(t, next, side, turn.Opponent())
	}
}

func TestBestMove_NeverLoses(t *testing.T) {
	t.Run("Playing X", func(t *testing.T) {
		assertNeverLoses(t, entity.NewBoard(), x, x)
	})

	t.Run("Playing O", func(t *testing.T) {
		assertNeverLoses(t, entity.NewBoard(), o, x)
	})
}

func TestBestMove_OptimalSelfPlayDraws(t *testing.T) {
	// Given: an empty board and both sides searching
	board := entity.NewBoard()
	turn := x

	// When: the game is played to the end
	for !Evaluate(&board).IsTerminal() {
		cell, err := BestMove(&board, turn)
		require.NoError(t, err)
		require.NoError(t, board.Set(cell, turn))
		turn = turn.Opponent()
	}

	// Then: perfect play ends in a draw
	assert.Equal(t, StatusDraw, Evaluate(&board).Status)
}
