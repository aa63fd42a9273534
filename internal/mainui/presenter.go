// Package mainui builds the Main UI settings dialog: color scheme, cards
// style, channels sorting and playlists style.
package mainui

import (
	"tubedeck/internal/config"
	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
	"tubedeck/internal/notify"
	"tubedeck/internal/settings"
)

// Preferences is the store the dialog reads from and writes to.
type Preferences interface {
	IsCardAnimatedPreviewsEnabled() bool
	EnableCardAnimatedPreviews(enable bool) error
	IsCardMultilineTitleEnabled() bool
	EnableCardMultilineTitle(enable bool) error
	IsCardTextAutoScrollEnabled() bool
	EnableCardTextAutoScroll(enable bool) error

	ChannelCategorySorting() config.ChannelSorting
	SetChannelCategorySorting(sorting config.ChannelSorting) error
	PlaylistsStyle() config.PlaylistsStyle
	SetPlaylistsStyle(style config.PlaylistsStyle) error

	ColorSchemes() []config.ColorScheme
	ColorScheme() config.ColorScheme
	SetColorScheme(cs config.ColorScheme) error
}

// Dialog is the settings dialog controller contract.
type Dialog interface {
	Clear()
	AppendCheckedCategory(title string, options []settings.Option)
	AppendRadioCategory(title string, options []settings.Option)
	ShowDialog(title string, onDismiss func()) *settings.Dialog
}

// BrowseScreen is refreshed after sorting or layout changes.
type BrowseScreen interface {
	UpdateChannelCategorySorting()
	UpdatePlaylistsStyle()
}

// DetachedBrowse stands in for the browse screen when none is running, as
// in the CLI and MCP hosts. The screen reads stored preferences when it
// starts, so there is nothing to refresh.
type DetachedBrowse struct{}

func (DetachedBrowse) UpdateChannelCategorySorting() {}
func (DetachedBrowse) UpdatePlaylistsStyle()         {}

// Presenter wires preferences into the settings dialog. It holds no state of
// its own between Show calls.
type Presenter struct {
	prefs    Preferences
	dialog   Dialog
	browse   BrowseScreen
	notifier notify.Notifier
	strings  *i18n.Strings
	logger   *logging.AppLogger
}

func NewPresenter(prefs Preferences, dialog Dialog, browse BrowseScreen, notifier notify.Notifier,
	strings *i18n.Strings, logger *logging.AppLogger) *Presenter {
	return &Presenter{
		prefs:    prefs,
		dialog:   dialog,
		browse:   browse,
		notifier: notifier,
		strings:  strings,
		logger:   logger,
	}
}

// Session tracks what one shown dialog changed.
type Session struct {
	restartRequired bool
}

// RestartRequired reports a pending change that only applies after restart.
func (s *Session) RestartRequired() bool {
	return s.restartRequired
}

// consumeRestart returns the flag and resets it.
func (s *Session) consumeRestart() bool {
	r := s.restartRequired
	s.restartRequired = false
	return r
}

// Show builds the dialog from the current preferences and presents it. The
// returned session lets the caller inspect pending effects before dismissal.
func (p *Presenter) Show() (*settings.Dialog, *Session) {
	session := &Session{}

	p.dialog.Clear()

	p.appendColorScheme(session)
	p.appendCardsStyle()
	p.appendChannelSortingCategory()
	p.appendPlaylistsStyle()

	d := p.dialog.ShowDialog(p.strings.Get("dialog_main_ui"), func() {
		if session.consumeRestart() {
			p.logger.Info("Color scheme changed, restart required")
			p.notifier.ShowLongMessage("msg_restart_app")
		}
	})
	return d, session
}

func (p *Presenter) appendCardsStyle() {
	toggles := []toggle{
		{"card_animated_previews", p.prefs.IsCardAnimatedPreviewsEnabled, p.prefs.EnableCardAnimatedPreviews},
		{"card_multiline_title", p.prefs.IsCardMultilineTitleEnabled, p.prefs.EnableCardMultilineTitle},
		{"card_auto_scrolled_title", p.prefs.IsCardTextAutoScrollEnabled, p.prefs.EnableCardTextAutoScroll},
	}

	options := make([]settings.Option, 0, len(toggles))
	for _, t := range toggles {
		options = append(options, t.option(p.strings))
	}

	p.dialog.AppendCheckedCategory(p.strings.Get("cards_style"), options)
}

func (p *Presenter) appendChannelSortingCategory() {
	options := radioOptions(p.strings, channelSortings, p.prefs.ChannelCategorySorting(),
		func(v config.ChannelSorting) error {
			if err := p.prefs.SetChannelCategorySorting(v); err != nil {
				return err
			}
			p.browse.UpdateChannelCategorySorting()
			return nil
		})

	p.dialog.AppendRadioCategory(p.strings.Get("channel_category_sorting"), options)
}

func (p *Presenter) appendPlaylistsStyle() {
	options := radioOptions(p.strings, playlistsStyles, p.prefs.PlaylistsStyle(),
		func(v config.PlaylistsStyle) error {
			if err := p.prefs.SetPlaylistsStyle(v); err != nil {
				return err
			}
			p.browse.UpdatePlaylistsStyle()
			return nil
		})

	p.dialog.AppendRadioCategory(p.strings.Get("playlists_style"), options)
}

func (p *Presenter) appendColorScheme(session *Session) {
	schemes := p.prefs.ColorSchemes()
	choices := make([]choice[config.ColorScheme], 0, len(schemes))
	for _, cs := range schemes {
		choices = append(choices, choice[config.ColorScheme]{labelKey: cs.NameKey, value: cs})
	}

	options := radioOptions(p.strings, choices, p.prefs.ColorScheme(),
		func(v config.ColorScheme) error {
			if err := p.prefs.SetColorScheme(v); err != nil {
				return err
			}
			session.restartRequired = true
			return nil
		})

	p.dialog.AppendRadioCategory(p.strings.Get("color_scheme"), options)
}
