package entity

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidThemeMode = errors.New("invalid theme mode")

// ThemeMode is the light/dark preference a visitor chose for the UI
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// DefaultThemeMode applies when a visitor never stored a preference
const DefaultThemeMode = ThemeModeLight

// ParseThemeMode accepts "light" or "dark" in any letter case
func ParseThemeMode(raw string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeModeLight:
		return ThemeModeLight, nil
	case ThemeModeDark:
		return ThemeModeDark, nil
	default:
		return "", ErrInvalidThemeMode
	}
}

func (m ThemeMode) IsDark() bool {
	return m == ThemeModeDark
}

// ThemePreference is the stored theme choice of one browser client
type ThemePreference struct {
	ClientID  string    `json:"client_id"`
	Mode      ThemeMode `json:"mode"`
	UpdatedAt time.Time `json:"updated_at"`
}
