package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	StateHandler(w http.ResponseWriter, _ *http.Request)
	StatsHandler(w http.ResponseWriter, _ *http.Request)
	BadgesHandler(w http.ResponseWriter, _ *http.Request)
}

type gameReader interface {
	State() usecase.State
}

type BadgeResponse struct {
	entity.BadgeDefinition
	Unlocked bool `json:"unlocked"`
}

type handlers struct {
	logger *slog.Logger
	game   gameReader
}

func NewHandlers(logger *slog.Logger, game gameReader) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) StateHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, that.game.State())
}

func (that *handlers) StatsHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, that.game.State().Stats)
}

func (that *handlers) BadgesHandler(w http.ResponseWriter, _ *http.Request) {
	badges := that.game.State().Badges

	response := make([]BadgeResponse, 0, len(entity.BadgeDefinitions))
	for _, def := range entity.BadgeDefinitions {
		response = append(response, BadgeResponse{
			BadgeDefinition: def,
			Unlocked:        badges.IsUnlocked(def.Key),
		})
	}

	that.writeJSON(w, response)
}

func (that *handlers) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "method", "writeJSON", "error", err)
	}
}
