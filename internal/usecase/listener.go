package usecase

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

// Listener receives render events. Methods are called with the manager lock
// held and must not call back into the GameManager.
type Listener interface {
	BoardChanged(board BoardSnapshot)
	StatusChanged(status string)
	BadgeUnlocked(badge entity.BadgeDefinition)
	BadgesChanged(badges entity.Badges)
	ScoreboardChanged(stats entity.Stats)
	SettingsChanged(settings entity.Settings)
}

type NopListener struct{}

func (NopListener) BoardChanged(BoardSnapshot) {}
func (NopListener) StatusChanged(string) {}
func (NopListener) BadgeUnlocked(entity.BadgeDefinition) {}
func (NopListener) BadgesChanged(entity.Badges) {}
func (NopListener) ScoreboardChanged(entity.Stats) {}
func (NopListener) SettingsChanged(entity.Settings) {}

type Timer interface {
	Stop() bool
}

// Scheduler runs deferred AI moves.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
}

type timeScheduler struct{}

func NewTimeScheduler() Scheduler {
	return timeScheduler{}
}

func (timeScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}
