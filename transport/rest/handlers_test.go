package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

type stubGame struct {
	state usecase.State
}

func (that stubGame) State() usecase.State {
	return that.state
}

func newRouter(state usecase.State) http.Handler {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRouter(NewHandlers(logger, stubGame{state: state}))
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	return recorder
}

func TestRouter(t *testing.T) {
	state := usecase.State{
		SessionID: "session-1",
		Status:    "Winner: X",
		Settings:  entity.DefaultSettings(),
		Stats:     entity.Stats{XWins: 2, CurrentStreak: 2, LastWinner: entity.PlayerX, TotalGames: 2, TotalWins: 2},
		Badges:    entity.Badges{FirstWin: true},
	}
	router := newRouter(state)

	t.Run("Ping", func(t *testing.T) {
		recorder := get(t, router, "/ping")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "pong", recorder.Body.String())
	})

	t.Run("State", func(t *testing.T) {
		recorder := get(t, router, "/api/state")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var body usecase.State
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "session-1", body.SessionID)
		assert.Equal(t, "Winner: X", body.Status)
	})

	t.Run("Stats use the stored key names", func(t *testing.T) {
		recorder := get(t, router, "/api/stats")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"x":2,"o":0,"draws":0,"currentStreak":2,"lastWinner":"X","totalGames":2,"totalWins":2}`,
			recorder.Body.String())
	})

	t.Run("Badges", func(t *testing.T) {
		recorder := get(t, router, "/api/badges")

		require.Equal(t, http.StatusOK, recorder.Code)

		var body []BadgeResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body, 5)
		assert.Equal(t, "First Win", body[0].Label)
		assert.True(t, body[0].Unlocked)
		assert.False(t, body[4].Unlocked)
	})

	t.Run("Unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, router, "/api/games").Code)
	})
}
