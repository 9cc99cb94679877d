package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode selects how colors are emitted
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a config/flag value; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// applyColorMode steers tcell's color negotiation before the screen is created
func applyColorMode(m ColorMode) {
	if m == ColorModeTrueColor {
		os.Setenv("COLORTERM", "truecolor")
		os.Unsetenv("TCELL_TRUECOLOR")
		return
	}
	os.Setenv("TCELL_TRUECOLOR", "disable")
}
