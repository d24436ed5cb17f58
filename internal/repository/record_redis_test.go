package repository_test

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRecordStore_Load(t *testing.T) {
	t.Run("Load_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a saved record
		err := st.Records.Save(ctx, repository.StatsKey, []byte(`{"x":1}`))
		require.NoError(t, err)

		// When: Load is called with the same key
		value, err := st.Records.Load(ctx, repository.StatsKey)

		// Then: the stored bytes come back
		require.NoError(t, err)
		assert.JSONEq(t, `{"x":1}`, string(value))
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: Load is called for a key that was never saved
		value, err := st.Records.Load(ctx, repository.BadgesKey)

		// Then: ErrRecordNotFound is returned
		require.ErrorIs(t, err, apperror.ErrRecordNotFound)
		assert.Nil(t, value)
	})
}

func TestRedisRecordStore_ProfileRoundTrip(t *testing.T) {
	ctx, st := suite.New(t)

	profileRepo := repository.NewProfileRepository(st.Records)

	// Given: non-default settings
	settings := entity.Settings{Mode: entity.ModePvEOptimal, PlayerSymbol: entity.PlayerO, Theme: entity.ThemeLight}

	// When: they are saved and read back
	require.NoError(t, profileRepo.SaveSettings(ctx, settings))
	stored, err := profileRepo.GetSettings(ctx)

	// Then: the record survives the round trip
	require.NoError(t, err)
	assert.Equal(t, settings, stored)
}
