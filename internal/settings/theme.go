package settings

import (
	"os"
	"strconv"
	"strings"
)

// Theme is the active colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// SystemTheme returns a detector for the environment-reported preference.
// A configured override wins; otherwise the terminal background advertised in
// COLORFGBG decides, and anything unknown is light.
func SystemTheme(override string) func() Theme {
	return func() Theme {
		if t, ok := ParseTheme(override); ok {
			return t
		}
		return themeFromColorFgBg(os.Getenv("COLORFGBG"))
	}
}

// themeFromColorFgBg reads values like "15;0" or "0;default;15". The last
// field is the background colour index.
func themeFromColorFgBg(v string) Theme {
	if v == "" {
		return Light
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Light
	}
	// 0-6 and 8 are the dark ANSI colours.
	if bg <= 6 || bg == 8 {
		return Dark
	}
	return Light
}
