package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the styled components of the dashboard's single screen.
type Styles struct {
	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowStale    lipgloss.Style
	TableCell        lipgloss.Style
	StatusListening  lipgloss.Style
	StatusError      lipgloss.Style
	StatusInfo       lipgloss.Style
	BadgeBridged     lipgloss.Style
	BadgeNeedsUpdate lipgloss.Style
}

// NewStyles builds Styles from a Theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Base02),

		TableRow: lipgloss.NewStyle().
			Foreground(theme.Base0B),

		TableRowStale: lipgloss.NewStyle().
			Foreground(theme.Base03),

		TableCell: lipgloss.NewStyle().
			Foreground(theme.Base06),

		StatusListening: lipgloss.NewStyle().
			Foreground(theme.Base0A).
			Italic(true),

		StatusError: lipgloss.NewStyle().
			Foreground(theme.Base08).
			Bold(true),

		StatusInfo: lipgloss.NewStyle().
			Foreground(theme.Base04),

		BadgeBridged: lipgloss.NewStyle().
			Background(theme.Base0B).
			Foreground(theme.Base00).
			Padding(0, 1).
			Bold(true),

		BadgeNeedsUpdate: lipgloss.NewStyle().
			Background(theme.Base09).
			Foreground(theme.Base00).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles uses DefaultTheme.
var DefaultStyles = NewStyles(DefaultTheme)

// renderBar renders a full-width background bar with left content flush
// left and right content flush right, padding in between.
func renderBar(bg lipgloss.Color, left, right string, width int) string {
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)

	available := width - 2
	gap := available - leftLen - rightLen
	if gap < 1 {
		gap = 1
	}

	spaceStyle := lipgloss.NewStyle().Background(bg)
	content := left + spaceStyle.Render(strings.Repeat(" ", gap)) + right

	return lipgloss.NewStyle().
		Background(bg).
		Padding(0, 1).
		Width(width).
		Render(content)
}

// truncate truncates s to width (accounting for display width) and pads
// with spaces so table columns stay aligned.
func truncate(s string, width int) string {
	visWidth := lipgloss.Width(s)
	if visWidth <= width {
		return s + strings.Repeat(" ", width-visWidth)
	}
	if width <= 3 {
		runes := []rune(s)
		if len(runes) > width {
			return string(runes[:width])
		}
		return s
	}
	runes := []rune(s)
	target := width - 3
	result := ""
	for _, r := range runes {
		if lipgloss.Width(result+string(r)) > target {
			break
		}
		result += string(r)
	}
	return result + "..."
}
