package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

type Symbol string

const (
	Empty   Symbol = ""
	PlayerX Symbol = "X"
	PlayerO Symbol = "O"
)

// Opponent returns the other player's symbol. Empty has no opponent.
func (that Symbol) Opponent() Symbol {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Symbol) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// ParseSymbol converts user input into a player symbol.
func ParseSymbol(value string) (Symbol, error) {
	symbol := Symbol(value)
	if !symbol.IsPlayer() {
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownSymbol, value)
	}

	return symbol, nil
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Symbol

func NewBoard() Board {
	return Board{}
}

func (that *Board) Set(index int, symbol Symbol) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if !symbol.IsPlayer() {
		return fmt.Errorf("%w: symbol %q", apperror.ErrInvalidMove, symbol)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, index)
	}

	that[index] = symbol

	return nil
}

// Unset empties a cell. Out of range indexes are ignored.
func (that *Board) Unset(index int) {
	if index < 0 || index >= BoardSize {
		return
	}

	that[index] = Empty
}

func (that *Board) Clear() {
	*that = Board{}
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) IsEmpty(index int) bool {
	return index >= 0 && index < BoardSize && that[index] == Empty
}

// EmptyCells returns the indexes of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold the given symbol.
func (that *Board) Count(symbol Symbol) int {
	count := 0
	for _, cell := range that {
		if cell == symbol {
			count++
		}
	}

	return count
}
