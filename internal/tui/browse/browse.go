// Package browse is the channels and playlists screen. Its layout follows
// the Main UI preferences and is refreshed through the two Update hooks when
// those preferences change.
package browse

import (
	"fmt"
	"strings"

	"tubedeck/internal/config"
	"tubedeck/internal/logging"
	"tubedeck/internal/tui/components"
	"tubedeck/internal/tui/helpers"
	"tubedeck/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Prefs is the part of the preferences store the screen reads.
type Prefs interface {
	ChannelCategorySorting() config.ChannelSorting
	PlaylistsStyle() config.PlaylistsStyle
	IsCardMultilineTitleEnabled() bool
}

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Back: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
	}
}

// Screen lives for the whole program so the settings dialog can refresh it
// while it is not on screen.
type Screen struct {
	prefs   Prefs
	catalog Catalog
	ctx     helpers.UIContext
	logger  *logging.AppLogger

	channels     []Channel
	playlistRows [][]Playlist
	sorting      config.ChannelSorting
	style        config.PlaylistsStyle

	layout   components.LayoutModel
	viewport viewport.Model
	keys     keyMap
}

func NewScreen(prefs Prefs, catalog Catalog, ctx helpers.UIContext) *Screen {
	layout := components.NewLayout(components.LayoutConfig{
		MarginX:  2,
		MarginY:  1,
		MaxWidth: 120,
	})

	s := &Screen{
		prefs:    prefs,
		catalog:  catalog,
		ctx:      ctx,
		logger:   ctx.Logger,
		layout:   layout,
		viewport: viewport.New(0, 0),
		keys:     defaultKeyMap(),
	}
	if ctx.HasValidDimensions() {
		s.resize(ctx.Width, ctx.Height)
	}
	s.UpdateChannelCategorySorting()
	s.UpdatePlaylistsStyle()
	return s
}

// UpdateChannelCategorySorting re-sorts channels per the stored mode.
func (s *Screen) UpdateChannelCategorySorting() {
	s.sorting = s.prefs.ChannelCategorySorting()
	s.channels = SortChannels(s.catalog.Channels, s.sorting)
	s.logger.Debug("Channels re-sorted", "mode", s.sorting, "count", len(s.channels))
	s.refreshContent()
}

// UpdatePlaylistsStyle re-lays-out playlists per the stored style.
func (s *Screen) UpdatePlaylistsStyle() {
	s.style = s.prefs.PlaylistsStyle()
	s.playlistRows = LayoutPlaylists(s.catalog.Playlists, s.style, s.layout.ContentWidth())
	s.logger.Debug("Playlists laid out", "style", s.style, "rows", len(s.playlistRows))
	s.refreshContent()
}

// Channels returns the channels in display order.
func (s *Screen) Channels() []Channel {
	out := make([]Channel, len(s.channels))
	copy(out, s.channels)
	return out
}

// PlaylistRows returns playlists grouped by display row.
func (s *Screen) PlaylistRows() [][]Playlist {
	return s.playlistRows
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		s.UpdatePlaylistsStyle()
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Back):
			s.logger.LogUserAction("browse_back", "")
			return s, func() tea.Msg { return helpers.NavigateToMainMenuMsg{} }
		case key.Matches(msg, s.keys.Up):
			s.viewport.LineUp(1)
		case key.Matches(msg, s.keys.Down):
			s.viewport.LineDown(1)
		}
	}
	return s, nil
}

func (s *Screen) resize(width, height int) {
	s.layout, _ = s.layout.Update(tea.WindowSizeMsg{Width: width, Height: height})
	s.viewport.Width = s.layout.ContentWidth()
	s.viewport.Height = max(s.layout.ContentHeight(), 5)
}

func (s *Screen) refreshContent() {
	s.viewport.SetContent(s.renderContent())
}

func (s *Screen) View() string {
	s.layout = s.layout.SetConfig(components.LayoutConfig{
		Title:    "📺 " + s.ctx.T("menu_browse"),
		Subtitle: s.ctx.T("channel_category_sorting") + ": " + s.sortingLabel() + " • " + s.ctx.T("playlists_style") + ": " + s.styleLabel(),
		HelpText: "↑/↓ to scroll • Esc to return to menu",
	})
	return s.layout.Render(s.viewport.View())
}

func (s *Screen) sortingLabel() string {
	switch s.sorting {
	case config.ChannelSortingUpdate:
		return s.ctx.T("sorting_by_new_content")
	case config.ChannelSortingAZ:
		return s.ctx.T("sorting_alphabetically")
	default:
		return s.ctx.T("sorting_last_viewed")
	}
}

func (s *Screen) styleLabel() string {
	if s.style == config.PlaylistsStyleRows {
		return s.ctx.T("playlists_style_rows")
	}
	return s.ctx.T("playlists_style_grid")
}

func (s *Screen) renderContent() string {
	var b strings.Builder

	b.WriteString(styles.SectionHeaderStyle.Render(s.ctx.T("header_channels")))
	b.WriteString("\n")
	if len(s.channels) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No channels yet"))
		b.WriteString("\n")
	}
	for _, ch := range s.channels {
		line := "  " + ch.Name
		if ch.NewVideos > 0 {
			line += styles.MutedStyle.Render(fmt.Sprintf("  • %d new", ch.NewVideos))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SectionHeaderStyle.Render(s.ctx.T("header_playlists")))
	b.WriteString("\n")
	if len(s.playlistRows) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No playlists yet"))
		b.WriteString("\n")
	}
	for _, row := range s.playlistRows {
		b.WriteString(s.renderPlaylistRow(row))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Screen) renderPlaylistRow(row []Playlist) string {
	if s.style == config.PlaylistsStyleRows {
		p := row[0]
		return fmt.Sprintf("  ▸ %s %s", p.Title, styles.MutedStyle.Render(fmt.Sprintf("(%d videos)", p.Videos)))
	}

	inner := cardWidth - 4 // border and padding
	cards := make([]string, 0, len(row))
	for _, p := range row {
		title := s.cardTitle(p.Title, inner)
		body := title + "\n" + styles.MutedStyle.Render(fmt.Sprintf("%d videos", p.Videos))
		cards = append(cards, styles.CardStyle.Width(inner+2).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// cardTitle fits a title into a card: two wrapped lines with the multiline
// preference, a single truncated line without it.
func (s *Screen) cardTitle(title string, width int) string {
	if !s.prefs.IsCardMultilineTitleEnabled() {
		return components.Truncate(title, width)
	}
	lines := strings.Split(wordwrap.String(title, width), "\n")
	if len(lines) > 2 {
		lines = lines[:2]
		lines[1] = components.Truncate(lines[1]+" …", width)
	}
	for i, l := range lines {
		lines[i] = components.Truncate(l, width)
	}
	return strings.Join(lines, "\n")
}
