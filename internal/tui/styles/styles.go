package styles

import (
	"tubedeck/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Centralized Lip Gloss styles for TUI components. They are built from the
// active color scheme once, at startup; changing the scheme takes effect on
// the next launch.

var (
	TitleStyle           lipgloss.Style
	SubtitleStyle        lipgloss.Style
	ErrorStyle           lipgloss.Style
	SuccessStyle         lipgloss.Style
	NormalTextStyle      lipgloss.Style
	HelpStyle            lipgloss.Style
	ToastStyle           lipgloss.Style
	CategoryStyle        lipgloss.Style
	CategoryFocusedStyle lipgloss.Style
	OptionStyle          lipgloss.Style
	OptionFocusedStyle   lipgloss.Style
	OptionSelectedStyle  lipgloss.Style
	SectionHeaderStyle   lipgloss.Style
	CardStyle            lipgloss.Style
	MutedStyle           lipgloss.Style
)

// active is the scheme the styles were last built from.
var active config.ColorScheme

func init() {
	Apply(config.DefaultColorScheme())
}

// Active returns the scheme the current styles were built from.
func Active() config.ColorScheme {
	return active
}

// Apply rebuilds every style from the given scheme.
func Apply(cs config.ColorScheme) {
	active = cs

	primary := lipgloss.Color(cs.Primary)
	accent := lipgloss.Color(cs.Accent)
	fg := lipgloss.Color(cs.Foreground)
	muted := lipgloss.Color(cs.Muted)
	errColor := lipgloss.Color(cs.Error)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary).
		MarginBottom(1).
		PaddingLeft(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(muted).
		MarginBottom(1).
		PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errColor).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ff5f")).
		Bold(true)

	NormalTextStyle = lipgloss.NewStyle().
		Foreground(fg).
		MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("#a8a8a8")).
		MarginTop(1).
		Padding(0, 1)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(fg).
		Padding(0, 1)

	CategoryStyle = lipgloss.NewStyle().
		Foreground(fg).
		PaddingLeft(2)

	CategoryFocusedStyle = CategoryStyle.
		Foreground(primary).
		Bold(true)

	OptionStyle = lipgloss.NewStyle().
		Foreground(fg).
		PaddingLeft(4)

	OptionFocusedStyle = OptionStyle.
		Foreground(primary).
		Bold(true)

	OptionSelectedStyle = lipgloss.NewStyle().
		Foreground(accent)

	SectionHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginTop(1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
		Foreground(muted)
}
