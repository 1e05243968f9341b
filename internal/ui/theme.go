package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultButtonColor is the pink fill of the row action button.
const DefaultButtonColor = "#F48FB1"

// Theme bundles palette + glyphs + box borders.
// All renderers pull from `current`.
type Theme struct {
	Name string

	TitleBar lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Help     lipgloss.Style

	GlyphDone, GlyphPending string
	Cursor                  string
	Border                  lipgloss.Border
	BorderColor             lipgloss.TerminalColor
}

// ThemeNames lists the accepted SetTheme names.
var ThemeNames = []string{"classic", "neon", "mono"}

var (
	current     Theme
	themeName   = "classic"
	buttonColor = DefaultButtonColor
)

func init() { SetTheme("classic") }

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	themeName = strings.ToLower(name)
	current = build(themeName, buttonColor)
}

// SetButtonColor changes the action button fill and rebuilds the theme.
// An empty color restores the default.
func SetButtonColor(color string) {
	if color == "" {
		color = DefaultButtonColor
	}
	buttonColor = color
	current = build(themeName, buttonColor)
}

// Current returns the active theme.
func Current() Theme { return current }

func build(name, button string) Theme {
	base := lipgloss.NewStyle()
	btn := base.Padding(0, 1).
		Background(lipgloss.Color(button)).
		Foreground(lipgloss.Color("#FFFFFF"))

	switch name {
	case "neon":
		return Theme{
			Name:         "neon",
			TitleBar:     base.Bold(true).Padding(0, 1).Background(lipgloss.Color("201")).Foreground(lipgloss.Color("231")),
			Text:         base.Foreground(lipgloss.Color("231")),
			Muted:        base.Foreground(lipgloss.Color("244")),
			Accent:       base.Foreground(lipgloss.Color("51")),
			Success:      base.Foreground(lipgloss.Color("46")),
			Pending:      base.Foreground(lipgloss.Color("226")),
			Error:        base.Foreground(lipgloss.Color("196")).Bold(true),
			Selected:     base.Foreground(lipgloss.Color("51")).Bold(true),
			Button:       btn,
			Help:         base.Foreground(lipgloss.Color("244")),
			GlyphDone:    "◼",
			GlyphPending: "◻",
			Cursor:       "▶ ",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("201"),
		}
	case "mono":
		return Theme{
			Name:         "mono",
			TitleBar:     base.Bold(true).Reverse(true).Padding(0, 1),
			Text:         base,
			Muted:        base.Faint(true),
			Accent:       base.Bold(true),
			Success:      base,
			Pending:      base,
			Error:        base.Bold(true),
			Selected:     base.Bold(true),
			Button:       base.Reverse(true).Padding(0, 1),
			Help:         base.Faint(true),
			GlyphDone:    "[x]",
			GlyphPending: "[ ]",
			Cursor:       "> ",
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Name:         "classic",
			TitleBar:     base.Bold(true).Padding(0, 1).Background(lipgloss.Color("#6650A4")).Foreground(lipgloss.Color("#FFFFFF")),
			Text:         base.Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}),
			Muted:        base.Foreground(lipgloss.Color("#888888")),
			Accent:       base.Foreground(lipgloss.Color("12")),
			Success:      base.Foreground(lipgloss.Color("42")),
			Pending:      base.Foreground(lipgloss.Color("214")),
			Error:        base.Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     base.Bold(true).Reverse(true),
			Button:       btn,
			Help:         base.Faint(true),
			GlyphDone:    "☑",
			GlyphPending: "☐",
			Cursor:       "> ",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
		}
	}
}
