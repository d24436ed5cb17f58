package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

const (
	StatsKey    = "ttt_pro_stats"
	BadgesKey   = "ttt_pro_badges"
	SettingsKey = "ttt_pro_settings"
)

// ProfileRepository reads and writes the stats, badges and settings records.
// Get methods always return a usable value: defaults when the record is absent,
// defaults plus an apperror.ErrMalformedRecord error when it cannot be decoded.
type ProfileRepository interface {
	GetStats(ctx context.Context) (entity.Stats, error)
	SaveStats(ctx context.Context, stats entity.Stats) error

	GetBadges(ctx context.Context) (entity.Badges, error)
	SaveBadges(ctx context.Context, badges entity.Badges) error

	GetSettings(ctx context.Context) (entity.Settings, error)
	SaveSettings(ctx context.Context, settings entity.Settings) error
}

type profileRepository struct {
	store RecordStore
}

func NewProfileRepository(store RecordStore) ProfileRepository {
	return &profileRepository{
		store: store,
	}
}

func (that *profileRepository) GetStats(ctx context.Context) (entity.Stats, error) {
	var stats entity.Stats

	found, err := that.load(ctx, StatsKey, &stats)
	if err != nil || !found {
		return entity.Stats{}, err
	}

	if !stats.IsValid() {
		return entity.Stats{}, fmt.Errorf("%w: %s has negative counters", apperror.ErrMalformedRecord, StatsKey)
	}

	return stats, nil
}

func (that *profileRepository) SaveStats(ctx context.Context, stats entity.Stats) error {
	return that.save(ctx, StatsKey, stats)
}

func (that *profileRepository) GetBadges(ctx context.Context) (entity.Badges, error) {
	var badges entity.Badges

	found, err := that.load(ctx, BadgesKey, &badges)
	if err != nil || !found {
		return entity.Badges{}, err
	}

	return badges, nil
}

func (that *profileRepository) SaveBadges(ctx context.Context, badges entity.Badges) error {
	return that.save(ctx, BadgesKey, badges)
}

func (that *profileRepository) GetSettings(ctx context.Context) (entity.Settings, error) {
	settings := entity.DefaultSettings()

	found, err := that.load(ctx, SettingsKey, &settings)
	if err != nil || !found {
		return entity.DefaultSettings(), err
	}

	if err = settings.Validate(); err != nil {
		return entity.DefaultSettings(), fmt.Errorf("%w: %s: %w", apperror.ErrMalformedRecord, SettingsKey, err)
	}

	return settings, nil
}

func (that *profileRepository) SaveSettings(ctx context.Context, settings entity.Settings) error {
	return that.save(ctx, SettingsKey, settings)
}

func (that *profileRepository) load(ctx context.Context, key string, target any) (bool, error) {
	raw, err := that.store.Load(ctx, key)
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err = json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("%w: %s: %w", apperror.ErrMalformedRecord, key, err)
	}

	return true, nil
}

func (that *profileRepository) save(ctx context.Context, key string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", key, err)
	}

	if err = that.store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}
