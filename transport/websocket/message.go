package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

// Message is the envelope for both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CellPayload struct {
	Cell *int `json:"cell"`
}

type ModePayload struct {
	Mode string `json:"mode"`
}

type SymbolPayload struct {
	Symbol string `json:"symbol"`
}

type ResetPayload struct {
	Confirmed bool `json:"confirmed"`
}

type StatusPayload struct {
	Status string `json:"status"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}

type BadgeView struct {
	entity.BadgeDefinition
	Unlocked bool `json:"unlocked"`
}

func badgeViews(badges entity.Badges) []BadgeView {
	views := make([]BadgeView, 0, len(entity.BadgeDefinitions))
	for _, def := range entity.BadgeDefinitions {
		views = append(views, BadgeView{
			BadgeDefinition: def,
			Unlocked:        badges.IsUnlocked(def.Key),
		})
	}

	return views
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: raw})
}
