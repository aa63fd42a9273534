// Package settingsdialog renders a settings.Dialog in the terminal.
//
// Categories are shown in order with their options underneath. The cursor
// moves over options only; enter or space selects the focused option, which
// writes through to the preferences store immediately. Closing the dialog
// dismisses it, which is when presenters run their dismissal work.
package settingsdialog

import (
	"strings"
	"time"

	"tubedeck/internal/logging"
	"tubedeck/internal/settings"
	"tubedeck/internal/tui/components"
	"tubedeck/internal/tui/helpers"
	"tubedeck/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// StyleQueryTimeout bounds the terminal background query behind the help panel.
const StyleQueryTimeout = 200 * time.Millisecond

// row addresses one option in the dialog.
type row struct {
	category int
	option   int
}

// Model is the Bubble Tea model for a shown settings dialog.
type Model struct {
	dialog *settings.Dialog
	ctx    helpers.UIContext
	logger *logging.AppLogger

	rows   []row
	cursor int

	layout components.LayoutModel
	keys   KeyMap
	help   help.Model

	showAbout    bool
	about        viewport.Model
	glamourStyle string
}

func New(dialog *settings.Dialog, ctx helpers.UIContext) *Model {
	m := &Model{
		dialog: dialog,
		ctx:    ctx,
		logger: ctx.Logger,
		layout: components.NewLayout(components.LayoutConfig{
			MarginX:  2,
			MarginY:  1,
			MaxWidth: 80,
		}),
		keys:  defaultKeyMap(),
		help:  help.New(),
		about: viewport.New(0, 0),
	}
	for ci, cat := range dialog.Categories() {
		for oi := range cat.Options {
			m.rows = append(m.rows, row{category: ci, option: oi})
		}
	}
	if ctx.HasValidDimensions() {
		m.resize(ctx.Width, ctx.Height)
	}
	return m
}

// Dialog returns the dialog being rendered.
func (m *Model) Dialog() *settings.Dialog {
	return m.dialog
}

// Focused returns the category and option indexes under the cursor, or
// (-1, -1) for a dialog without options.
func (m *Model) Focused() (int, int) {
	if len(m.rows) == 0 {
		return -1, -1
	}
	r := m.rows[m.cursor]
	return r.category, r.option
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.showAbout {
			m.renderAbout()
		}
		return m, nil

	case tea.KeyMsg:
		if m.showAbout {
			return m.updateAbout(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Close):
			return m, m.close()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selectFocused()
		case key.Matches(msg, m.keys.Help):
			m.openAbout()
		}
	}
	return m, nil
}

func (m *Model) updateAbout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Help):
		m.showAbout = false
	case key.Matches(msg, m.keys.Up):
		m.about.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.about.LineDown(1)
	}
	return m, nil
}

func (m *Model) selectFocused() {
	ci, oi := m.Focused()
	if ci < 0 {
		return
	}
	if err := m.dialog.Select(ci, oi); err != nil {
		m.layout = m.layout.SetError(err)
		return
	}
	m.layout = m.layout.ClearError()
}

func (m *Model) close() tea.Cmd {
	m.logger.LogUserAction("settings_dialog_close", m.dialog.Title)
	m.dialog.Dismiss()
	return func() tea.Msg { return helpers.NavigateToMainMenuMsg{} }
}

func (m *Model) openAbout() {
	if m.glamourStyle == "" {
		m.glamourStyle = DetectHelpStyle(StyleQueryTimeout)
	}
	m.showAbout = true
	m.renderAbout()
}

func (m *Model) renderAbout() {
	md := helpMarkdown(m.dialog.Title, m.dialog.Categories())
	out, err := renderHelp(md, m.glamourStyle, m.layout.ContentWidth())
	if err != nil {
		m.logger.Warn("Failed to render settings help", "error", err)
		out = md
	}
	m.about.SetContent(out)
	m.about.GotoTop()
}

func (m *Model) resize(width, height int) {
	m.layout, _ = m.layout.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m.help.Width = m.layout.ContentWidth()
	m.about.Width = m.layout.ContentWidth()
	m.about.Height = max(m.layout.ContentHeight(), 5)
}

func (m *Model) View() string {
	if m.showAbout {
		m.layout = m.layout.SetConfig(components.LayoutConfig{
			Title:    "❓ " + m.dialog.Title,
			HelpText: "↑/↓ to scroll • ?/Esc to go back",
		})
		return m.layout.Render(m.about.View())
	}

	m.layout = m.layout.SetConfig(components.LayoutConfig{
		Title:    "⚙️  " + m.dialog.Title,
		HelpText: m.help.View(m.keys),
	})
	return m.layout.Render(m.renderCategories())
}

func (m *Model) renderCategories() string {
	focusedCat, focusedOpt := m.Focused()

	var b strings.Builder
	for ci, cat := range m.dialog.Categories() {
		if ci > 0 {
			b.WriteString("\n")
		}
		header := styles.CategoryStyle
		if ci == focusedCat {
			header = styles.CategoryFocusedStyle
		}
		b.WriteString(header.Render(cat.Title))
		b.WriteString("\n")

		for oi, opt := range cat.Options {
			marker := settings.Marker(cat.Kind, opt.Selected)
			if opt.Selected {
				marker = styles.OptionSelectedStyle.Render(marker)
			}
			line := marker + " " + opt.Title
			if ci == focusedCat && oi == focusedOpt {
				b.WriteString(styles.OptionFocusedStyle.Render("› " + line))
			} else {
				b.WriteString(styles.OptionStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
