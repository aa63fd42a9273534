package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tubedeck/internal/config"
	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
	"tubedeck/internal/notify"
	"tubedeck/internal/tui/browse"
	"tubedeck/internal/tui/helpers"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() browse.Catalog {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return browse.Catalog{
		Channels: []browse.Channel{
			{Name: "zeta", LastUpload: now, LastViewed: now.Add(-time.Hour)},
			{Name: "alpha", LastUpload: now.Add(-time.Hour), LastViewed: now},
		},
		Playlists: []browse.Playlist{{Title: "Music", Videos: 4}},
	}
}

func newTestModel(t *testing.T) (*MainModel, *config.MainUIData) {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	prefs := config.NewMainUIData(nil, filepath.Join(t.TempDir(), "config.yaml"))
	m := NewMainModel(prefs, testCatalog(), i18n.Default(), logger)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, prefs
}

// send feeds msg to the model. For key presses the returned command is run
// once so navigation back to the menu makes it into Update.
func send(m *MainModel, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	if _, ok := msg.(tea.KeyMsg); !ok || cmd == nil {
		return cmd
	}
	if nav, ok := cmd().(helpers.NavigateToMainMenuMsg); ok {
		return send(m, nav)
	}
	return cmd
}

func keys(m *MainModel, k tea.KeyType, n int) {
	for range n {
		send(m, tea.KeyMsg{Type: k})
	}
}

func TestNewMainModel(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	prefs := config.NewMainUIData(nil, "")

	m := NewMainModel(prefs, testCatalog(), i18n.Default(), logger)

	assert.Equal(t, StateMenu, m.State())
	assert.Nil(t, m.Init())
	assert.NotNil(t, m.Browse())
	assert.Same(t, logger, m.GetUIContext().Logger)
}

func TestGetUIContext(t *testing.T) {
	m, _ := newTestModel(t)

	ctx := m.GetUIContext()

	assert.Equal(t, 100, ctx.Width)
	assert.Equal(t, 40, ctx.Height)
	assert.True(t, ctx.HasValidDimensions())
	assert.Equal(t, "Browse", ctx.T("menu_browse"))
}

func TestMenuView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "Tubedeck")
	assert.Contains(t, view, "Browse")
	assert.Contains(t, view, "Main UI settings")
}

func TestOpenBrowseAndBack(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateBrowse, m.State())
	assert.Contains(t, m.View(), "Channels")

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateMenu, m.State())
}

func TestSettingsRefreshBrowseScreen(t *testing.T) {
	m, prefs := newTestModel(t)
	require.Equal(t, []string{"alpha", "zeta"}, channelNames(m.Browse().Channels()))

	keys(m, tea.KeyDown, 1)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateSettings, m.State())
	assert.Contains(t, m.View(), "Color scheme")

	// "By new content" is the first channels sorting option, after four
	// color schemes and three card toggles.
	keys(m, tea.KeyDown, 7)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, config.ChannelSortingUpdate, prefs.ChannelCategorySorting())
	assert.Equal(t, []string{"zeta", "alpha"}, channelNames(m.Browse().Channels()))

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateMenu, m.State())
	assert.NotContains(t, m.View(), "Restart the app", "no color change, no notice")
}

func TestColorSchemeChangeShowsRestartToast(t *testing.T) {
	m, prefs := newTestModel(t)

	keys(m, tea.KeyDown, 1)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	keys(m, tea.KeyDown, 2)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "red_grey", prefs.ColorScheme().ID)
	assert.NotContains(t, m.View(), "Restart the app", "notice waits for the dialog to close")

	cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Restart the app to apply the changes")

	send(m, notify.ToastExpiredMsg{ID: 99})
	assert.Contains(t, m.View(), "Restart the app", "stale expiry keeps the toast")

	send(m, notify.ToastExpiredMsg{ID: 1})
	assert.NotContains(t, m.View(), "Restart the app")
}

func TestRestartNoticeOncePerSession(t *testing.T) {
	m, _ := newTestModel(t)

	keys(m, tea.KeyDown, 1)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	keys(m, tea.KeyDown, 2)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	send(m, notify.ToastExpiredMsg{ID: 1})

	// a second session without a color change shows nothing
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateSettings, m.State())
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "Restart the app")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, StateQuitting, m.State())
	assert.Contains(t, m.View(), "Goodbye")
}

func TestAppStateString(t *testing.T) {
	assert.Equal(t, "Menu", StateMenu.String())
	assert.Equal(t, "Settings", StateSettings.String())
	assert.Equal(t, "Unknown", AppState(42).String())
}

func TestMainModelFlow(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	prefs := config.NewMainUIData(nil, "")
	m := NewMainModel(prefs, testCatalog(), i18n.Default(), logger)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))
	waitForString(t, tm, "Main UI settings")

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitForString(t, tm, "Playlists style")

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	waitForString(t, tm, "Restart the app")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	assert.Equal(t, "dark_grey", prefs.ColorScheme().ID)
}

func channelNames(chs []browse.Channel) []string {
	out := make([]string, len(chs))
	for i, c := range chs {
		out[i] = c.Name
	}
	return out
}

func waitForString(t *testing.T, tm *teatest.TestModel, s string) {
	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return strings.Contains(string(b), s)
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}
