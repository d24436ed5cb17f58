package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

const (
	threeStreakThreshold   = 3
	fiveWinsThreshold      = 5
	perfectRoundMaxMoves   = 7
	unstoppableStreakLimit = 10
)

type progressRepo interface {
	GetStats(ctx context.Context) (entity.Stats, error)
	SaveStats(ctx context.Context, stats entity.Stats) error

	GetBadges(ctx context.Context) (entity.Badges, error)
	SaveBadges(ctx context.Context, badges entity.Badges) error
}

// ProgressionService keeps the cumulative stats and badge latches and writes
// them through after every change.
type ProgressionService struct {
	logger *slog.Logger
	repo   progressRepo

	stats  entity.Stats
	badges entity.Badges
}

// NewProgressionService loads the stored records. Unreadable records fall back
// to zero values; the failure is logged and never returned.
func NewProgressionService(ctx context.Context, logger *slog.Logger, repo progressRepo) *ProgressionService {
	log := logger.With("method", "NewProgressionService")

	stats, err := repo.GetStats(ctx)
	if err != nil {
		log.Warn("using default stats", "error", err)
	}

	badges, err := repo.GetBadges(ctx)
	if err != nil {
		log.Warn("using default badges", "error", err)
	}

	return &ProgressionService{
		logger: logger,
		repo:   repo,
		stats:  stats,
		badges: badges,
	}
}

func (that *ProgressionService) Stats() entity.Stats {
	return that.stats
}

func (that *ProgressionService) Badges() entity.Badges {
	return that.badges
}

// RecordWin updates the counters and returns the badges unlocked by this win in
// definition order. State is updated in memory even when saving fails.
func (that *ProgressionService) RecordWin(ctx context.Context, winner entity.Symbol, roundMoves int) ([]entity.BadgeDefinition, error) {
	that.stats.RecordWin(winner)

	unlocked := that.evaluateBadges(roundMoves)

	err := that.saveStats(ctx)
	if len(unlocked) > 0 {
		err = errors.Join(err, that.saveBadges(ctx))
	}

	return unlocked, err
}

func (that *ProgressionService) RecordDraw(ctx context.Context) error {
	that.stats.RecordDraw()

	return that.saveStats(ctx)
}

// Reset clears stats and badges. It refuses to run without confirmation.
func (that *ProgressionService) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return apperror.ErrResetNotConfirmed
	}

	that.stats = entity.Stats{}
	that.badges = entity.Badges{}

	return errors.Join(that.saveStats(ctx), that.saveBadges(ctx))
}

func (that *ProgressionService) evaluateBadges(roundMoves int) []entity.BadgeDefinition {
	rules := map[entity.BadgeKey]bool{
		entity.BadgeFirstWin:      true,
		entity.BadgeThreeStreak:   that.stats.CurrentStreak >= threeStreakThreshold,
		entity.BadgeFiveWins:      that.stats.TotalWins >= fiveWinsThreshold,
		entity.BadgePerfectRound:  roundMoves <= perfectRoundMaxMoves,
		entity.BadgeUnstoppable10: that.stats.CurrentStreak >= unstoppableStreakLimit,
	}

	var unlocked []entity.BadgeDefinition
	for _, def := range entity.BadgeDefinitions {
		if rules[def.Key] && that.badges.Unlock(def.Key) {
			unlocked = append(unlocked, def)
		}
	}

	return unlocked
}

func (that *ProgressionService) saveStats(ctx context.Context) error {
	if err := that.repo.SaveStats(ctx, that.stats); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

func (that *ProgressionService) saveBadges(ctx context.Context) error {
	if err := that.repo.SaveBadges(ctx, that.badges); err != nil {
		return fmt.Errorf("failed to save badges: %w", err)
	}

	return nil
}
