package dashboard

import "github.com/charmbracelet/lipgloss"

// Theme is a Base16 color theme. The teacher's TUI shipped twenty of
// these behind a config-menu picker; the dashboard only ever runs one.
type Theme struct {
	Name string

	Base00 lipgloss.Color // Background
	Base01 lipgloss.Color // Lighter background
	Base02 lipgloss.Color // Selection background
	Base03 lipgloss.Color // Comments, invisibles
	Base04 lipgloss.Color // Dark foreground
	Base05 lipgloss.Color // Default foreground
	Base06 lipgloss.Color // Light foreground
	Base07 lipgloss.Color // Lightest foreground
	Base08 lipgloss.Color // Red
	Base09 lipgloss.Color // Orange
	Base0A lipgloss.Color // Yellow
	Base0B lipgloss.Color // Green
	Base0C lipgloss.Color // Cyan
	Base0D lipgloss.Color // Blue
	Base0E lipgloss.Color // Violet
	Base0F lipgloss.Color // Magenta
}

// SolarizedDark is the dashboard's only theme.
var SolarizedDark = Theme{
	Name:   "Solarized Dark",
	Base00: lipgloss.Color("#002b36"),
	Base01: lipgloss.Color("#073642"),
	Base02: lipgloss.Color("#586e75"),
	Base03: lipgloss.Color("#657b83"),
	Base04: lipgloss.Color("#839496"),
	Base05: lipgloss.Color("#93a1a1"),
	Base06: lipgloss.Color("#eee8d5"),
	Base07: lipgloss.Color("#fdf6e3"),
	Base08: lipgloss.Color("#dc322f"),
	Base09: lipgloss.Color("#cb4b16"),
	Base0A: lipgloss.Color("#b58900"),
	Base0B: lipgloss.Color("#859900"),
	Base0C: lipgloss.Color("#2aa198"),
	Base0D: lipgloss.Color("#268bd2"),
	Base0E: lipgloss.Color("#6c71c4"),
	Base0F: lipgloss.Color("#d33682"),
}

// DefaultTheme is the active theme.
var DefaultTheme = SolarizedDark
