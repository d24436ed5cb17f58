package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

const (
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	CellClicked(ctx context.Context, cell int) error
	NewGame(ctx context.Context)
	RestartRound(ctx context.Context)
	Undo(ctx context.Context)
	Hint(ctx context.Context) (int, error)

	ChangeMode(ctx context.Context, mode string) error
	ChangeSymbol(ctx context.Context, symbol string) error
	ToggleSound(ctx context.Context) entity.Settings
	ToggleTheme(ctx context.Context) entity.Settings
	ResetStats(ctx context.Context, confirmed bool) error

	State() usecase.State
}

type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	hub      *Hub
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, message *Message, client *Client) error
}

func New(logger *slog.Logger, game gameUseCase, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		hub:    hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *Message, *Client) error),
	}

	server.handlers["cell:click"] = server.handleCellClick
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:restart"] = server.handleRestart
	server.handlers["game:undo"] = server.handleUndo
	server.handlers["game:hint"] = server.handleHint
	server.handlers["settings:mode"] = server.handleMode
	server.handlers["settings:symbol"] = server.handleSymbol
	server.handlers["settings:sound"] = server.handleSound
	server.handlers["settings:theme"] = server.handleTheme
	server.handlers["stats:reset"] = server.handleResetStats
	server.handlers["state"] = server.handleState

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server. It returns nil once ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		that.hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)

	client := that.hub.Register()
	defer that.hub.Unregister(client)

	log.Info("WebSocket connection established", "clients", that.hub.Clients())

	that.hub.sendTo(client, "state", that.game.State())

	go func() {
		defer conn.Close()

		if err := writeWithHeartbeat(conn, client.send); err != nil {
			log.Debug("writer stopped", "error", err)
		}
	}()

	that.handleMessages(ctx, conn, client)
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, client *Client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("connection closed", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(raw, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.sendError(client, "", "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(client, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, &message, client); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
