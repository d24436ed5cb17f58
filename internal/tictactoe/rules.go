package tictactoe

import "github.com/rocketscienceinc/tictactoe-pro/internal/entity"

type WinLine [3]int

// WinLines are checked in this order: rows, then columns, then diagonals.
var WinLines = [8]WinLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is derived from the board and never stored.
type Outcome struct {
	Status Status        `json:"status"`
	Winner entity.Symbol `json:"winner,omitempty"`
	Line   *WinLine      `json:"line,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// Evaluate returns the first completed line, then draw on a full board, otherwise in progress.
func Evaluate(board *entity.Board) Outcome {
	for i := range WinLines {
		line := WinLines[i]
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.Empty && a == b && b == c {
			return Outcome{Status: StatusWin, Winner: a, Line: &line}
		}
	}

	if board.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

// winner is the allocation-free check used inside the search.
func winner(board *entity.Board) entity.Symbol {
	for _, line := range WinLines {
		a := board[line[0]]
		if a != entity.Empty && a == board[line[1]] && a == board[line[2]] {
			return a
		}
	}

	return entity.Empty
}
