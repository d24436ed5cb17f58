package entity

type Move struct {
	Cell   int    `json:"cell"`
	Symbol Symbol `json:"symbol"`
}

// MoveHistory is the ordered list of moves played in the current round.
type MoveHistory struct {
	moves []Move
}

func (that *MoveHistory) Push(move Move) {
	that.moves = append(that.moves, move)
}

// Pop removes and returns the most recent move.
func (that *MoveHistory) Pop() (Move, bool) {
	if len(that.moves) == 0 {
		return Move{}, false
	}

	last := that.moves[len(that.moves)-1]
	that.moves = that.moves[:len(that.moves)-1]

	return last, true
}

func (that *MoveHistory) Len() int {
	return len(that.moves)
}

func (that *MoveHistory) Clear() {
	that.moves = nil
}

func (that *MoveHistory) All() []Move {
	return append([]Move(nil), that.moves...)
}
