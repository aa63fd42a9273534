// Package tui provides the Terminal User Interface for tubedeck.
//
// The root MainModel shows a menu with two entries: the browse screen and the
// Main UI settings dialog. The browse screen lives for the whole program so
// that settings changes refresh it immediately, even while it is off screen.
// Notifications raised while a submodel is active are queued and shown as a
// toast on the menu once control returns to it.
package tui

import (
	"tubedeck/internal/config"
	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
	"tubedeck/internal/mainui"
	"tubedeck/internal/notify"
	"tubedeck/internal/settings"
	"tubedeck/internal/tui/browse"
	"tubedeck/internal/tui/components"
	"tubedeck/internal/tui/helpers"
	"tubedeck/internal/tui/settingsdialog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// AppState represents the current state of the TUI application.
type AppState int

const (
	StateMenu AppState = iota
	StateBrowse
	StateSettings
	StateQuitting
)

func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateBrowse:
		return "Browse"
	case StateSettings:
		return "Settings"
	case StateQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

type item struct {
	title       string
	description string
	state       AppState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.description }
func (i item) FilterValue() string { return i.title }

// MainModel is the root model for the TUI application.
type MainModel struct {
	prefs   *config.MainUIData
	strings *i18n.Strings
	logger  *logging.AppLogger
	state   AppState

	menu list.Model

	browse    *browse.Screen
	queue     *notify.Queue
	presenter *mainui.Presenter

	// settings dialog currently on screen, set by the dialog host
	dialog *settingsdialog.Model

	layout components.LayoutModel

	windowWidth  int
	windowHeight int

	toastID int
}

func NewMainModel(prefs *config.MainUIData, catalog browse.Catalog, strings *i18n.Strings, logger *logging.AppLogger) *MainModel {
	items := []list.Item{
		item{
			title:       "📺  " + strings.Get("menu_browse"),
			description: strings.Get("menu_browse_desc"),
			state:       StateBrowse,
		},
		item{
			title:       "⚙️  " + strings.Get("menu_main_ui"),
			description: strings.Get("menu_main_ui_desc"),
			state:       StateSettings,
		},
	}

	menuList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menuList.SetShowTitle(false)
	menuList.SetShowStatusBar(false)
	menuList.SetFilteringEnabled(true)
	menuList.SetShowHelp(false)

	m := &MainModel{
		prefs:   prefs,
		strings: strings,
		logger:  logger,
		state:   StateMenu,
		menu:    menuList,
		queue:   notify.NewQueue(strings),
		layout: components.NewLayout(components.LayoutConfig{
			MarginX:  2,
			MarginY:  1,
			MaxWidth: 100,
		}),
	}

	m.browse = browse.NewScreen(prefs, catalog, m.GetUIContext())
	controller := settings.NewController(settings.HostFunc(m.presentDialog), logger)
	m.presenter = mainui.NewPresenter(prefs, controller, m.browse, m.queue, strings, logger)
	return m
}

// presentDialog is the settings host: it puts the dialog on screen.
func (m *MainModel) presentDialog(d *settings.Dialog) {
	m.dialog = settingsdialog.New(d, m.GetUIContext())
}

// GetUIContext creates a UI context with current dimensions.
func (m *MainModel) GetUIContext() helpers.UIContext {
	return helpers.NewUIContext(m.windowWidth, m.windowHeight, m.strings, m.logger)
}

// State returns the current application state.
func (m *MainModel) State() AppState {
	return m.state
}

// Browse returns the long-lived browse screen.
func (m *MainModel) Browse() *browse.Screen {
	return m.browse
}

func (m *MainModel) Init() tea.Cmd {
	m.logger.Info("MainModel initialized")
	return nil
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.layout, _ = m.layout.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Debug("window resize", "width", msg.Width, "height", msg.Height)
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

		if msg.Width <= 0 || msg.Height <= 0 {
			m.logger.Warn("Invalid window dimensions received", "width", msg.Width, "height", msg.Height)
			return m, nil
		}
		m.menu.SetSize(msg.Width-4, msg.Height-14)
		m.browse.Update(msg)
		if m.dialog != nil {
			m.dialog.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.state = StateQuitting
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			filtering := m.menu.FilterState() == list.Filtering
			switch {
			case msg.String() == "q" && !filtering:
				m.state = StateQuitting
				return m, tea.Quit
			case msg.String() == "enter" && !filtering:
				if selected, ok := m.menu.SelectedItem().(item); ok {
					m.logger.LogUserAction("menu_selection", selected.title)
					return m, m.open(selected.state)
				}
			default:
				m.menu, cmd = m.menu.Update(msg)
				cmds = append(cmds, cmd)
			}

		case StateBrowse:
			_, cmd = m.browse.Update(msg)
			cmds = append(cmds, cmd)

		case StateSettings:
			if m.dialog != nil {
				_, cmd = m.dialog.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case helpers.NavigateToMainMenuMsg:
		m.logger.LogMessage(msg)
		m.logger.LogStateTransition("MainModel", m.state.String(), StateMenu.String())
		m.state = StateMenu
		m.dialog = nil
		m.layout = m.layout.ClearError()
		cmds = append(cmds, m.showQueuedMessages())

	case notify.ToastExpiredMsg:
		m.logger.LogMessage(msg)
		if msg.ID == m.toastID {
			m.layout = m.layout.SetToast("")
		}

	default:
		if m.state == StateMenu {
			m.menu, cmd = m.menu.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *MainModel) open(state AppState) tea.Cmd {
	m.logger.LogStateTransition("MainModel", m.state.String(), state.String())
	switch state {
	case StateBrowse:
		m.state = StateBrowse
		return m.browse.Init()
	case StateSettings:
		// The host sets m.dialog; the session is only needed by headless hosts.
		m.dialog = nil
		m.presenter.Show()
		if m.dialog == nil {
			m.logger.Error("Settings dialog was not presented")
			return nil
		}
		m.state = StateSettings
		return m.dialog.Init()
	}
	return nil
}

// showQueuedMessages moves pending notifications into the toast. Only the
// newest one is shown; each gets its own expiry so an older timer cannot hide
// a newer toast.
func (m *MainModel) showQueuedMessages() tea.Cmd {
	pending := m.queue.Drain()
	if len(pending) == 0 {
		return nil
	}
	m.toastID++
	m.layout = m.layout.SetToast(pending[len(pending)-1])
	m.logger.Debug("Showing toast", "id", m.toastID, "queued", len(pending))
	return notify.ExpireAfter(m.toastID, notify.LongMessageDuration)
}

func (m *MainModel) View() string {
	switch m.state {
	case StateQuitting:
		m.layout = m.layout.SetConfig(components.LayoutConfig{
			Title: "👋 Goodbye!",
		})
		return m.layout.Render("")
	case StateBrowse:
		return m.browse.View()
	case StateSettings:
		if m.dialog != nil {
			return m.dialog.View()
		}
	}
	return m.viewMenu()
}

func (m *MainModel) viewMenu() string {
	m.layout = m.layout.SetConfig(components.LayoutConfig{
		Title:    "📼 " + m.strings.Get("app_name"),
		Subtitle: "Your subscriptions, your way",
		HelpText: "↑/↓ to navigate • Enter to select • / to filter • q to quit • Ctrl+C to force quit",
	})
	return m.layout.Render(m.menu.View())
}
