package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_RecordWinAndDraw(t *testing.T) {
	// Given: fresh stats
	var stats Stats

	// When: X wins twice and then a draw happens
	stats.RecordWin(PlayerX)
	stats.RecordWin(PlayerX)
	stats.RecordDraw()
	stats.RecordWin(PlayerO)

	// Then: counters and streak reflect the sequence
	assert.Equal(t, Stats{
		XWins:         2,
		OWins:         1,
		Draws:         1,
		CurrentStreak: 1,
		LastWinner:    PlayerO,
		TotalGames:    3,
		TotalWins:     3,
	}, stats)
	assert.True(t, stats.IsValid())
}

func TestBadges_Unlock(t *testing.T) {
	t.Run("Unlock latches once", func(t *testing.T) {
		// Given: all badges locked
		var badges Badges

		// When: a badge is unlocked twice
		first := badges.Unlock(BadgeFiveWins)
		second := badges.Unlock(BadgeFiveWins)

		// Then: only the first call reports a new unlock
		assert.True(t, first)
		assert.False(t, second)
		assert.True(t, badges.IsUnlocked(BadgeFiveWins))
		assert.False(t, badges.IsUnlocked(BadgeFirstWin))
	})

	t.Run("Unknown badge is ignored", func(t *testing.T) {
		var badges Badges

		assert.False(t, badges.Unlock("nope"))
		assert.Equal(t, Badges{}, badges)
	})

	t.Run("Definitions follow the notification order", func(t *testing.T) {
		keys := make([]BadgeKey, 0, len(BadgeDefinitions))
		for _, def := range BadgeDefinitions {
			keys = append(keys, def.Key)
		}

		assert.Equal(t, []BadgeKey{
			BadgeFirstWin, BadgeThreeStreak, BadgeFiveWins, BadgePerfectRound, BadgeUnstoppable10,
		}, keys)

		def, ok := BadgeDefinitionFor(BadgePerfectRound)
		require.True(t, ok)
		assert.Equal(t, "Perfect Round", def.Label)
	})
}

func TestSettings(t *testing.T) {
	t.Run("Defaults are valid pvp settings", func(t *testing.T) {
		settings := DefaultSettings()

		require.NoError(t, settings.Validate())
		assert.Equal(t, Empty, settings.AISymbol())
		assert.False(t, settings.Mode.IsPvE())
	})

	t.Run("Computer plays the other symbol in pve", func(t *testing.T) {
		settings := Settings{Mode: ModePvEOptimal, PlayerSymbol: PlayerO, Theme: ThemeLight}

		require.NoError(t, settings.Validate())
		assert.Equal(t, PlayerX, settings.AISymbol())
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		settings := Settings{Mode: "pve-impossible", PlayerSymbol: PlayerX, Theme: ThemeDark}

		assert.ErrorIs(t, settings.Validate(), apperror.ErrUnknownMode)
	})

	t.Run("Theme toggles between dark and light", func(t *testing.T) {
		settings := DefaultSettings()

		settings.ToggleTheme()
		assert.Equal(t, ThemeLight, settings.Theme)

		settings.ToggleTheme()
		assert.Equal(t, ThemeDark, settings.Theme)
	})
}
