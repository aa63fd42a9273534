package browse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tubedeck/internal/config"
	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
	"tubedeck/internal/tui/helpers"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testCatalog() Catalog {
	return Catalog{
		Channels: []Channel{
			{Name: "zeta", LastUpload: base.Add(-1 * time.Hour), LastViewed: base.Add(-48 * time.Hour), NewVideos: 2},
			{Name: "Alpha", LastUpload: base.Add(-72 * time.Hour), LastViewed: base.Add(-1 * time.Hour)},
			{Name: "mid", LastUpload: base.Add(-24 * time.Hour), LastViewed: base.Add(-24 * time.Hour)},
		},
		Playlists: []Playlist{
			{Title: "Watch later", Videos: 12},
			{Title: "Music", Videos: 40},
			{Title: "Talks", Videos: 3},
			{Title: "Cooking", Videos: 8},
		},
	}
}

func names(chs []Channel) []string {
	out := make([]string, len(chs))
	for i, c := range chs {
		out[i] = c.Name
	}
	return out
}

func newTestScreen(t *testing.T, prefs *config.MainUIData, w, h int) *Screen {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return NewScreen(prefs, testCatalog(), helpers.NewUIContext(w, h, i18n.Default(), logger))
}

func TestSortChannels(t *testing.T) {
	chs := testCatalog().Channels

	assert.Equal(t, []string{"zeta", "mid", "Alpha"}, names(SortChannels(chs, config.ChannelSortingUpdate)))
	assert.Equal(t, []string{"Alpha", "mid", "zeta"}, names(SortChannels(chs, config.ChannelSortingAZ)))
	assert.Equal(t, []string{"Alpha", "mid", "zeta"}, names(SortChannels(chs, config.ChannelSortingLastViewed)))
	assert.Equal(t, "zeta", chs[0].Name, "input is not modified")
}

func TestSortChannels_TiesBreakByName(t *testing.T) {
	chs := []Channel{
		{Name: "b", LastUpload: base},
		{Name: "A", LastUpload: base},
	}

	assert.Equal(t, []string{"A", "b"}, names(SortChannels(chs, config.ChannelSortingUpdate)))
}

func TestLayoutPlaylists(t *testing.T) {
	pls := testCatalog().Playlists

	rows := LayoutPlaylists(pls, config.PlaylistsStyleRows, 100)
	assert.Len(t, rows, 4)

	grid := LayoutPlaylists(pls, config.PlaylistsStyleGrid, 3*cardWidth)
	require.Len(t, grid, 2)
	assert.Len(t, grid[0], 3)
	assert.Len(t, grid[1], 1)

	narrow := LayoutPlaylists(pls, config.PlaylistsStyleGrid, 10)
	assert.Len(t, narrow, 4, "at least one card per row")

	assert.Nil(t, LayoutPlaylists(nil, config.PlaylistsStyleGrid, 100))
}

func TestScreen_HooksFollowPreferences(t *testing.T) {
	prefs := config.NewMainUIData(nil, "")
	s := newTestScreen(t, prefs, 120, 40)

	assert.Equal(t, []string{"Alpha", "mid", "zeta"}, names(s.Channels()))

	require.NoError(t, prefs.SetChannelCategorySorting(config.ChannelSortingUpdate))
	assert.Equal(t, []string{"Alpha", "mid", "zeta"}, names(s.Channels()), "unchanged until the hook runs")

	s.UpdateChannelCategorySorting()
	assert.Equal(t, []string{"zeta", "mid", "Alpha"}, names(s.Channels()))

	gridRows := len(s.PlaylistRows())
	require.NoError(t, prefs.SetPlaylistsStyle(config.PlaylistsStyleRows))
	s.UpdatePlaylistsStyle()
	assert.Len(t, s.PlaylistRows(), 4)
	assert.Less(t, gridRows, 4)
}

func TestScreen_ViewShowsCurrentModes(t *testing.T) {
	prefs := config.NewMainUIData(nil, "")
	require.NoError(t, prefs.SetPlaylistsStyle(config.PlaylistsStyleRows))
	s := newTestScreen(t, prefs, 120, 40)

	view := s.View()

	assert.Contains(t, view, "Last viewed")
	assert.Contains(t, view, "Rows")
	assert.Contains(t, view, "▸ Watch later")
	assert.Contains(t, view, "2 new")
}

func TestScreen_CardTitles(t *testing.T) {
	prefs := config.NewMainUIData(nil, "")
	s := newTestScreen(t, prefs, 120, 40)
	long := "A very long playlist title that will not fit"

	single := s.cardTitle(long, 20)
	assert.NotContains(t, single, "\n")
	assert.True(t, strings.HasSuffix(single, "…"))

	require.NoError(t, prefs.EnableCardMultilineTitle(true))
	multi := s.cardTitle(long, 20)
	assert.Len(t, strings.Split(multi, "\n"), 2)
}

func TestScreen_EscReturnsToMenu(t *testing.T) {
	s := newTestScreen(t, config.NewMainUIData(nil, ""), 120, 40)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, helpers.NavigateToMainMenuMsg{}, cmd())
}

func TestScreen_ResizeRelayouts(t *testing.T) {
	s := newTestScreen(t, config.NewMainUIData(nil, ""), 0, 0)

	s.Update(tea.WindowSizeMsg{Width: 2*cardWidth + 4, Height: 30})

	rows := s.PlaylistRows()
	require.NotEmpty(t, rows)
	assert.Len(t, rows[0], 2)
}

func TestScreen_EmptyCatalog(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	s := NewScreen(config.NewMainUIData(nil, ""), Catalog{}, helpers.NewUIContext(100, 30, i18n.Default(), logger))

	view := s.View()
	assert.Contains(t, view, "No channels yet")
	assert.Contains(t, view, "No playlists yet")
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	empty, err := LoadCatalog(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, empty.Channels)

	path := filepath.Join(dir, "catalog.yaml")
	data := "channels:\n  - name: Alpha\n    last_upload: 2024-05-01T10:00:00Z\n    new_videos: 3\nplaylists:\n  - title: Music\n    videos: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Channels, 1)
	assert.Equal(t, 3, c.Channels[0].NewVideos)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), c.Channels[0].LastUpload.UTC())
	assert.Equal(t, []Playlist{{Title: "Music", Videos: 40}}, c.Playlists)

	require.NoError(t, os.WriteFile(path, []byte("channels: {"), 0o600))
	_, err = LoadCatalog(path)
	assert.Error(t, err)
}
