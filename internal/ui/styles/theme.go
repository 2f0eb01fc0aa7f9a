// Package styles provides the lipgloss styles used for colored output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/git-recent/internal/config"
)

// Theme defines the output colors
type Theme struct {
	Accent color.Color // head marker and branch names
	Muted  color.Color // ages
}

// DefaultTheme is used when no colors are configured
var DefaultTheme = Theme{
	Accent: lipgloss.Color("212"), // pink/magenta
	Muted:  lipgloss.Color("240"), // dark gray
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Styles derived from the current theme
var (
	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Accent).Bold(true)

	// NameStyle applies the accent color
	NameStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Accent)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Muted)
)

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init applies color overrides from config.
// Call this after loading config and before rendering.
func Init(cfg config.ThemeConfig) {
	theme := DefaultTheme
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}

	currentTheme = theme
	applyTheme(theme)
}

// applyTheme updates the global style variables to use the given theme
func applyTheme(t Theme) {
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	NameStyle = lipgloss.NewStyle().Foreground(t.Accent)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}
