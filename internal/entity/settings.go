package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type Mode string

const (
	ModePvP        Mode = "pvp"
	ModePvEEasy    Mode = "pve-easy"
	ModePvEOptimal Mode = "pve-optimal"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ModePvP, ModePvEEasy, ModePvEOptimal:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

// IsPvE reports whether the computer controls one of the symbols.
func (that Mode) IsPvE() bool {
	return strings.HasPrefix(string(that), "pve")
}

type Settings struct {
	Mode         Mode   `json:"mode"`
	PlayerSymbol Symbol `json:"playerSymbol"`
	Theme        string `json:"theme"`
	Sound        bool   `json:"sound"`
}

func DefaultSettings() Settings {
	return Settings{
		Mode:         ModePvP,
		PlayerSymbol: PlayerX,
		Theme:        ThemeDark,
		Sound:        true,
	}
}

// Validate checks that a stored or requested settings record is usable.
func (that Settings) Validate() error {
	if _, err := ParseMode(string(that.Mode)); err != nil {
		return err
	}

	if !that.PlayerSymbol.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownSymbol, that.PlayerSymbol)
	}

	if that.Theme != ThemeDark && that.Theme != ThemeLight {
		return fmt.Errorf("unknown theme %q", that.Theme)
	}

	return nil
}

// AISymbol returns the symbol played by the computer, or Empty in pvp mode.
func (that Settings) AISymbol() Symbol {
	if !that.Mode.IsPvE() {
		return Empty
	}

	return that.PlayerSymbol.Opponent()
}

func (that *Settings) ToggleTheme() {
	if that.Theme == ThemeLight {
		that.Theme = ThemeDark
		return
	}

	that.Theme = ThemeLight
}
