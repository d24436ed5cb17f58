package entity

type BadgeKey string

const (
	BadgeFirstWin      BadgeKey = "firstWin"
	BadgeThreeStreak   BadgeKey = "threeStreak"
	BadgeFiveWins      BadgeKey = "fiveWins"
	BadgePerfectRound  BadgeKey = "perfectRound"
	BadgeUnstoppable10 BadgeKey = "unstoppable10"
)

type BadgeDefinition struct {
	Key   BadgeKey `json:"key"`
	Label string   `json:"label"`
	Emoji string   `json:"emoji"`
}

// BadgeDefinitions is the fixed definition order used for evaluation and notification.
var BadgeDefinitions = []BadgeDefinition{
	{Key: BadgeFirstWin, Label: "First Win", Emoji: "🏅"},
	{Key: BadgeThreeStreak, Label: "On a Roll (3-streak)", Emoji: "🔥"},
	{Key: BadgeFiveWins, Label: "Five Wins", Emoji: "🎉"},
	{Key: BadgePerfectRound, Label: "Perfect Round", Emoji: "💎"},
	{Key: BadgeUnstoppable10, Label: "Unstoppable (10-streak)", Emoji: "🏆"},
}

func BadgeDefinitionFor(key BadgeKey) (BadgeDefinition, bool) {
	for _, def := range BadgeDefinitions {
		if def.Key == key {
			return def, true
		}
	}

	return BadgeDefinition{}, false
}

// Badges are one-way latches: Unlock never sets a badge back to false.
type Badges struct {
	FirstWin      bool `json:"firstWin"`
	ThreeStreak   bool `json:"threeStreak"`
	FiveWins      bool `json:"fiveWins"`
	PerfectRound  bool `json:"perfectRound"`
	Unstoppable10 bool `json:"unstoppable10"`
}

func (that *Badges) flag(key BadgeKey) *bool {
	switch key {
	case BadgeFirstWin:
		return &that.FirstWin
	case BadgeThreeStreak:
		return &that.ThreeStreak
	case BadgeFiveWins:
		return &that.FiveWins
	case BadgePerfectRound:
		return &that.PerfectRound
	case BadgeUnstoppable10:
		return &that.Unstoppable10
	default:
		return nil
	}
}

func (that *Badges) IsUnlocked(key BadgeKey) bool {
	flag := that.flag(key)
	return flag != nil && *flag
}

// Unlock latches the badge and reports whether it was locked before.
func (that *Badges) Unlock(key BadgeKey) bool {
	flag := that.flag(key)
	if flag == nil || *flag {
		return false
	}

	*flag = true

	return true
}
