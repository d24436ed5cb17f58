package entity

// Stats are the cumulative results across all rounds.
type Stats struct {
	XWins         int    `json:"x"`
	OWins         int    `json:"o"`
	Draws         int    `json:"draws"`
	CurrentStreak int    `json:"currentStreak"`
	LastWinner    Symbol `json:"lastWinner"`
	TotalGames    int    `json:"totalGames"`
	TotalWins     int    `json:"totalWins"`
}

func (that *Stats) RecordWin(winner Symbol) {
	that.LastWinner = winner
	that.TotalGames++

	switch winner {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	}

	that.CurrentStreak++
	that.TotalWins++
}

func (that *Stats) RecordDraw() {
	that.Draws++
	that.CurrentStreak = 0
}

func (that Stats) IsValid() bool {
	return that.XWins >= 0 && that.OWins >= 0 && that.Draws >= 0 &&
		that.CurrentStreak >= 0 && that.TotalGames >= 0 && that.TotalWins >= 0 &&
		(that.LastWinner == Empty || that.LastWinner.IsPlayer())
}
