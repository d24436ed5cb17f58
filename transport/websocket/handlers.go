package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

func (that *Server) handleCellClick(ctx context.Context, msg *Message, client *Client) error {
	var payload CellPayload
	if err := decodePayload(msg, &payload); err != nil || payload.Cell == nil {
		that.sendError(client, msg.Action, "cell is required")
		return nil
	}

	if err := that.game.CellClicked(ctx, *payload.Cell); err != nil {
		that.sendError(client, msg.Action, "failed to play the move")
		return fmt.Errorf("failed to play cell %d: %w", *payload.Cell, err)
	}

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, _ *Message, _ *Client) error {
	that.game.NewGame(ctx)
	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ *Message, _ *Client) error {
	that.game.RestartRound(ctx)
	return nil
}

func (that *Server) handleUndo(ctx context.Context, _ *Message, _ *Client) error {
	that.game.Undo(ctx)
	return nil
}

func (that *Server) handleHint(ctx context.Context, msg *Message, client *Client) error {
	if _, err := that.game.Hint(ctx); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			that.sendError(client, msg.Action, "the round is over")
			return nil
		}

		that.sendError(client, msg.Action, "no hint available")
		return fmt.Errorf("failed to compute hint: %w", err)
	}

	return nil
}

func (that *Server) handleMode(ctx context.Context, msg *Message, client *Client) error {
	var payload ModePayload
	if err := decodePayload(msg, &payload); err != nil {
		that.sendError(client, msg.Action, "mode is required")
		return nil
	}

	if err := that.game.ChangeMode(ctx, payload.Mode); err != nil {
		that.sendError(client, msg.Action, err.Error())
	}

	return nil
}

func (that *Server) handleSymbol(ctx context.Context, msg *Message, client *Client) error {
	var payload SymbolPayload
	if err := decodePayload(msg, &payload); err != nil {
		that.sendError(client, msg.Action, "symbol is required")
		return nil
	}

	if err := that.game.ChangeSymbol(ctx, payload.Symbol); err != nil {
		that.sendError(client, msg.Action, err.Error())
	}

	return nil
}

func (that *Server) handleSound(ctx context.Context, _ *Message, _ *Client) error {
	that.game.ToggleSound(ctx)
	return nil
}

func (that *Server) handleTheme(ctx context.Context, _ *Message, _ *Client) error {
	that.game.ToggleTheme(ctx)
	return nil
}

func (that *Server) handleResetStats(ctx context.Context, msg *Message, client *Client) error {
	var payload ResetPayload
	if err := decodePayload(msg, &payload); err != nil {
		that.sendError(client, msg.Action, "malformed payload")
		return nil
	}

	if err := that.game.ResetStats(ctx, payload.Confirmed); err != nil {
		that.sendError(client, msg.Action, "reset must be confirmed")
	}

	return nil
}

func (that *Server) handleState(_ context.Context, _ *Message, client *Client) error {
	that.hub.sendTo(client, "state", that.game.State())
	return nil
}

func (that *Server) sendError(client *Client, action, reason string) {
	that.hub.sendTo(client, "error", ErrorPayload{Action: action, Error: reason})
}

// decodePayload treats a missing payload as an empty object.
func decodePayload(msg *Message, target any) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}
