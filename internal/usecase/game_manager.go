package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

const (
	statusSelectMode = "Select your mode to begin."
	statusDraw       = "Draw!"
	statusStatsReset = "Stats reset. Fresh start!"
)

const (
	DefaultMoveDelay    = 220 * time.Millisecond
	DefaultOpeningDelay = 200 * time.Millisecond
)

type settingsRepo interface {
	GetSettings(ctx context.Context) (entity.Settings, error)
	SaveSettings(ctx context.Context, settings entity.Settings) error
}

type progressTracker interface {
	Stats() entity.Stats
	Badges() entity.Badges

	RecordWin(ctx context.Context, winner entity.Symbol, roundMoves int) ([]entity.BadgeDefinition, error)
	RecordDraw(ctx context.Context) error
	Reset(ctx context.Context, confirmed bool) error
}

type moveChooser interface {
	ChooseMove(board entity.Board, mode entity.Mode, side entity.Symbol) (int, error)
}

type Delays struct {
	Move    time.Duration
	Opening time.Duration
}

// GameManager owns the running session. Every public method runs to completion
// under one mutex, including deferred AI moves.
type GameManager struct {
	mu sync.Mutex

	logger       *slog.Logger
	settingsRepo settingsRepo
	progress     progressTracker
	bot          moveChooser
	scheduler    Scheduler
	listener     Listener
	delays       Delays

	settings   entity.Settings
	session    *GameSession
	generation uint64
	pending    Timer
}

func NewGameManager(
	ctx context.Context,
	logger *slog.Logger,
	settingsRepo settingsRepo,
	progress progressTracker,
	bot moveChooser,
	scheduler Scheduler,
	listener Listener,
	delays Delays,
) *GameManager {
	log := logger.With("method", "NewGameManager")

	settings, err := settingsRepo.GetSettings(ctx)
	if err != nil {
		log.Warn("using default settings", "error", err)
	}

	if listener == nil {
		listener = NopListener{}
	}

	manager := &GameManager{
		logger:       logger,
		settingsRepo: settingsRepo,
		progress:     progress,
		bot:          bot,
		scheduler:    scheduler,
		listener:     listener,
		delays:       delays,
		settings:     settings,
	}

	manager.session = newGameSession(manager.nextGeneration())
	manager.session.Status = statusSelectMode

	return manager
}

// SetListener replaces the event sink. Passing nil silences events.
func (that *GameManager) SetListener(listener Listener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if listener == nil {
		listener = NopListener{}
	}

	that.listener = listener
}

// ApplyMove places the symbol that holds the turn. It does not schedule the computer.
func (that *GameManager) ApplyMove(ctx context.Context, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.applyMove(ctx, cell)
}

// RequestAiMove plays the computer's move right away.
func (that *GameManager) RequestAiMove(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.requestAiMove(ctx)
}

// CellClicked is the UI entry point for a human move. Clicks out of turn and
// illegal clicks are ignored.
func (that *GameManager) CellClicked(ctx context.Context, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "CellClicked", "cell", cell)

	if that.settings.Mode.IsPvE() && that.session.Turn != that.settings.PlayerSymbol {
		log.Debug("ignored click: computer holds the turn")
		return nil
	}

	if err := that.applyMove(ctx, cell); err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrIllegalMove) {
			log.Debug("ignored click", "error", err)
			return nil
		}

		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.scheduleAiMove(that.delays.Move)

	return nil
}

// Undo takes back the last move, and in PvE the move before it as well.
func (that *GameManager) Undo(_ context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := that.session
	if session.History.Len() == 0 {
		return
	}

	that.stopPending()
	that.undoLast()

	if that.settings.Mode.IsPvE() && session.History.Len() > 0 {
		that.undoLast()
	}

	session.Highlight = nil
	session.Generation = that.nextGeneration()

	that.listener.BoardChanged(session.snapshot())
	that.setStatus(that.turnLabel())

	that.scheduleAiMove(that.delays.Move)
}

func (that *GameManager) NewGame(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.newGame(ctx)
}

// RestartRound clears the board without touching the stored settings.
func (that *GameManager) RestartRound(_ context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetSession()
	that.scheduleAiMove(that.delays.Opening)
}

// Hint highlights the best cell for whoever holds the turn.
func (that *GameManager) Hint(_ context.Context) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := that.session
	if session.IsTerminal() {
		return -1, apperror.ErrGameFinished
	}

	board := session.Board

	cell, err := tictactoe.BestMove(&board, session.Turn)
	if err != nil {
		that.logger.Error("failed to compute hint", "method", "Hint", "error", err)
		return -1, fmt.Errorf("failed to compute hint: %w", err)
	}

	session.Highlight = []int{cell}
	that.listener.BoardChanged(session.snapshot())
	that.setStatus(fmt.Sprintf("Hint: try cell %d", cell+1))

	return cell, nil
}

func (that *GameManager) ChangeMode(ctx context.Context, value string) error {
	mode, err := entity.ParseMode(value)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.settings.Mode = mode
	that.listener.SettingsChanged(that.settings)
	that.newGame(ctx)

	return nil
}

func (that *GameManager) ChangeSymbol(ctx context.Context, value string) error {
	symbol, err := entity.ParseSymbol(value)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.settings.PlayerSymbol = symbol
	that.listener.SettingsChanged(that.settings)
	that.newGame(ctx)

	return nil
}

func (that *GameManager) ToggleSound(ctx context.Context) entity.Settings {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.settings.Sound = !that.settings.Sound
	that.saveSettings(ctx)
	that.listener.SettingsChanged(that.settings)

	return that.settings
}

func (that *GameManager) ToggleTheme(ctx context.Context) entity.Settings {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.settings.ToggleTheme()
	that.saveSettings(ctx)
	that.listener.SettingsChanged(that.settings)

	return that.settings
}

// ResetStats clears stats and badges once the caller confirmed it.
func (that *GameManager) ResetStats(ctx context.Context, confirmed bool) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.progress.Reset(ctx, confirmed); err != nil {
		if errors.Is(err, apperror.ErrResetNotConfirmed) {
			return err
		}

		that.logger.Error("failed to persist reset", "method", "ResetStats", "error", err)
	}

	that.listener.ScoreboardChanged(that.progress.Stats())
	that.listener.BadgesChanged(that.progress.Badges())
	that.setStatus(statusStatsReset)

	return nil
}

func (that *GameManager) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return State{
		BoardSnapshot: that.session.snapshot(),
		SessionID:     that.session.ID,
		Status:        that.session.Status,
		Settings:      that.settings,
		Stats:         that.progress.Stats(),
		Badges:        that.progress.Badges(),
	}
}

// Close stops a pending computer move.
func (that *GameManager) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopPending()
}

func (that *GameManager) applyMove(ctx context.Context, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	session := that.session
	if session.IsTerminal() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	if !session.Board.IsEmpty(cell) {
		return fmt.Errorf("%w: cell %d is occupied", apperror.ErrIllegalMove, cell)
	}

	symbol := session.Turn
	if err := session.Board.Set(cell, symbol); err != nil {
		return fmt.Errorf("failed to set cell: %w", err)
	}

	session.History.Push(entity.Move{Cell: cell, Symbol: symbol})
	session.Turn = symbol.Opponent()
	session.Highlight = nil

	outcome := session.Outcome()
	if !outcome.IsTerminal() {
		that.listener.BoardChanged(session.snapshot())
		that.setStatus(that.turnLabel())

		return nil
	}

	that.finishRound(ctx, outcome)

	return nil
}

func (that *GameManager) finishRound(ctx context.Context, outcome tictactoe.Outcome) {
	log := that.logger.With("method", "finishRound")
	session := that.session

	if outcome.Line != nil {
		session.Highlight = outcome.Line[:]
	}

	that.listener.BoardChanged(session.snapshot())

	switch outcome.Status {
	case tictactoe.StatusWin:
		that.setStatus(fmt.Sprintf("Winner: %s", outcome.Winner))

		unlocked, err := that.progress.RecordWin(ctx, outcome.Winner, session.History.Len())
		if err != nil {
			log.Error("failed to persist win", "error", err)
		}

		that.listener.ScoreboardChanged(that.progress.Stats())

		if len(unlocked) > 0 {
			that.listener.BadgesChanged(that.progress.Badges())
			that.listener.BadgeUnlocked(unlocked[0])
		}
	case tictactoe.StatusDraw:
		that.setStatus(statusDraw)

		if err := that.progress.RecordDraw(ctx); err != nil {
			log.Error("failed to persist draw", "error", err)
		}

		that.listener.ScoreboardChanged(that.progress.Stats())
		that.listener.BadgesChanged(that.progress.Badges())
	}

	log.Info("round finished", "session", session.ID, "status", outcome.Status, "winner", outcome.Winner)
}

func (that *GameManager) requestAiMove(ctx context.Context) error {
	aiSymbol := that.settings.AISymbol()
	if aiSymbol == entity.Empty || that.session.Turn != aiSymbol {
		return apperror.ErrNotAiTurn
	}

	if that.session.IsTerminal() {
		return apperror.ErrGameFinished
	}

	cell, err := that.bot.ChooseMove(that.session.Board, that.settings.Mode, aiSymbol)
	if err != nil {
		return fmt.Errorf("failed to choose move: %w", err)
	}

	return that.applyMove(ctx, cell)
}

func (that *GameManager) newGame(ctx context.Context) {
	that.resetSession()
	that.saveSettings(ctx)
	that.scheduleAiMove(that.delays.Opening)
}

func (that *GameManager) resetSession() {
	that.stopPending()

	that.session = newGameSession(that.nextGeneration())
	that.listener.BoardChanged(that.session.snapshot())
	that.setStatus(that.turnLabel())
}

func (that *GameManager) undoLast() {
	session := that.session

	move, ok := session.History.Pop()
	if !ok {
		return
	}

	session.Board.Unset(move.Cell)
	session.Turn = move.Symbol
}

func (that *GameManager) aiHoldsTurn() bool {
	aiSymbol := that.settings.AISymbol()

	return aiSymbol != entity.Empty && that.session.Turn == aiSymbol && !that.session.IsTerminal()
}

// scheduleAiMove arms the deferred computer move when the computer holds the turn.
func (that *GameManager) scheduleAiMove(delay time.Duration) {
	if !that.aiHoldsTurn() {
		return
	}

	that.stopPending()

	generation := that.session.Generation
	that.pending = that.scheduler.AfterFunc(delay, func() {
		that.runScheduledAiMove(generation)
	})
}

func (that *GameManager) runScheduledAiMove(generation uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "runScheduledAiMove", "generation", generation)

	if generation != that.session.Generation || !that.aiHoldsTurn() {
		log.Debug("dropped stale computer move")
		return
	}

	that.pending = nil

	if err := that.requestAiMove(context.Background()); err != nil {
		log.Error("computer move failed", "error", err)
	}
}

func (that *GameManager) stopPending() {
	if that.pending == nil {
		return
	}

	that.pending.Stop()
	that.pending = nil
}

func (that *GameManager) nextGeneration() uint64 {
	that.generation++
	return that.generation
}

func (that *GameManager) saveSettings(ctx context.Context) {
	if err := that.settingsRepo.SaveSettings(ctx, that.settings); err != nil {
		that.logger.Error("failed to save settings", "method", "saveSettings", "error", err)
	}
}

func (that *GameManager) setStatus(status string) {
	that.session.Status = status
	that.listener.StatusChanged(status)
}

func (that *GameManager) turnLabel() string {
	opponent := "vs Player"
	if that.settings.Mode.IsPvE() {
		opponent = "vs Computer"
	}

	return fmt.Sprintf("Turn: %s • %s", that.session.Turn, opponent)
}
