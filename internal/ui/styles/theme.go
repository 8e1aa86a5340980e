package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the browse UI
type Theme struct {
	Name string

	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Current holds the active theme
var Current = TokyoNight

// MaxWidth is the maximum content width for the app
const MaxWidth = 100

// ContentWidth returns the actual content width to use
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView centers content horizontally when the terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds the pre-computed styles for the browse UI
type Styles struct {
	App lipgloss.Style

	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	Tag     lipgloss.Style
	Status  lipgloss.Style
	Overdue lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles builds the style set from the current theme
func NewStyles() *Styles {
	t := Current
	return &Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Tab: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),
		ListSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Selection).
			Padding(0, 1),

		Tag: lipgloss.NewStyle().
			Foreground(t.Accent),
		Status: lipgloss.NewStyle().
			Foreground(t.Secondary),
		Overdue: lipgloss.NewStyle().
			Foreground(t.Error),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),
		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
	}
}
