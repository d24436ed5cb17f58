package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

const clientBufferSize = 32

// Hub fans game events out to every connected client. It implements usecase.Listener.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*Client]struct{}
}

type Client struct {
	send chan []byte
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[*Client]struct{}),
	}
}

func (that *Hub) Register() *Client {
	client := &Client{send: make(chan []byte, clientBufferSize)}

	that.mu.Lock()
	that.clients[client] = struct{}{}
	that.mu.Unlock()

	return client
}

func (that *Hub) Unregister(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[client]; ok {
		delete(that.clients, client)
		close(client.send)
	}
}

func (that *Hub) Clients() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

// Close disconnects every client.
func (that *Hub) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for client := range that.clients {
		delete(that.clients, client)
		close(client.send)
	}
}

func (that *Hub) BoardChanged(board usecase.BoardSnapshot) {
	that.broadcast("board", board)
}

func (that *Hub) StatusChanged(status string) {
	that.broadcast("status", StatusPayload{Status: status})
}

func (that *Hub) BadgeUnlocked(badge entity.BadgeDefinition) {
	that.broadcast("badge", badge)
}

func (that *Hub) BadgesChanged(badges entity.Badges) {
	that.broadcast("badges", badgeViews(badges))
}

func (that *Hub) ScoreboardChanged(stats entity.Stats) {
	that.broadcast("scoreboard", stats)
}

func (that *Hub) SettingsChanged(settings entity.Settings) {
	that.broadcast("settings", settings)
}

func (that *Hub) broadcast(action string, payload any) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode event", "action", action, "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for client := range that.clients {
		client.deliver(data)
	}
}

// sendTo delivers a reply to a single client that is still registered.
func (that *Hub) sendTo(client *Client, action string, payload any) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode reply", "action", action, "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[client]; ok {
		client.deliver(data)
	}
}

// deliver drops the message when the client is too slow to keep up.
func (that *Client) deliver(data []byte) bool {
	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}
