package config

import (
	"fmt"
	"sync"

	"tubedeck/internal/logging"
)

// MainUIData is the preferences store behind the Main UI settings dialog.
// Every setter writes through to disk immediately; there is no batching. A
// setter whose write fails leaves the store unchanged.
// An empty path keeps the store in memory.
type MainUIData struct {
	mu   sync.Mutex
	cfg  *Config
	path string
}

// NewMainUIData wraps an already loaded config.
func NewMainUIData(cfg *Config, path string) *MainUIData {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	return &MainUIData{cfg: cfg, path: path}
}

// OpenMainUIData loads the config at path, falling back to defaults when the
// file does not exist yet.
func OpenMainUIData(path string) (*MainUIData, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewMainUIData(cfg, path), nil
}

// Path returns the backing file, or "" for an in-memory store.
func (d *MainUIData) Path() string {
	return d.path
}

// Snapshot returns a copy of the current Main UI preferences.
func (d *MainUIData) Snapshot() MainUIPrefs {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg.MainUI
}

func (d *MainUIData) IsCardAnimatedPreviewsEnabled() bool {
	return d.Snapshot().CardAnimatedPreviews
}

func (d *MainUIData) EnableCardAnimatedPreviews(enable bool) error {
	return d.update("card_animated_previews", func(p *MainUIPrefs) { p.CardAnimatedPreviews = enable })
}

func (d *MainUIData) IsCardMultilineTitleEnabled() bool {
	return d.Snapshot().CardMultilineTitle
}

func (d *MainUIData) EnableCardMultilineTitle(enable bool) error {
	return d.update("card_multiline_title", func(p *MainUIPrefs) { p.CardMultilineTitle = enable })
}

func (d *MainUIData) IsCardTextAutoScrollEnabled() bool {
	return d.Snapshot().CardTextAutoScroll
}

func (d *MainUIData) EnableCardTextAutoScroll(enable bool) error {
	return d.update("card_text_auto_scroll", func(p *MainUIPrefs) { p.CardTextAutoScroll = enable })
}

func (d *MainUIData) ChannelCategorySorting() ChannelSorting {
	return d.Snapshot().ChannelCategorySorting
}

func (d *MainUIData) SetChannelCategorySorting(sorting ChannelSorting) error {
	if !sorting.Valid() {
		return fmt.Errorf("invalid channel sorting %d", int(sorting))
	}
	return d.update("channel_category_sorting", func(p *MainUIPrefs) { p.ChannelCategorySorting = sorting })
}

func (d *MainUIData) PlaylistsStyle() PlaylistsStyle {
	return d.Snapshot().PlaylistsStyle
}

func (d *MainUIData) SetPlaylistsStyle(style PlaylistsStyle) error {
	if !style.Valid() {
		return fmt.Errorf("invalid playlists style %d", int(style))
	}
	return d.update("playlists_style", func(p *MainUIPrefs) { p.PlaylistsStyle = style })
}

// ColorSchemes lists the schemes the user can pick from.
func (d *MainUIData) ColorSchemes() []ColorScheme {
	return ColorSchemes()
}

// ColorScheme returns the stored scheme, or the default one if the stored id
// is unknown.
func (d *MainUIData) ColorScheme() ColorScheme {
	if cs, ok := ColorSchemeByID(d.Snapshot().ColorScheme); ok {
		return cs
	}
	return DefaultColorScheme()
}

func (d *MainUIData) SetColorScheme(cs ColorScheme) error {
	if _, ok := ColorSchemeByID(cs.ID); !ok {
		return fmt.Errorf("unknown color scheme %q", cs.ID)
	}
	return d.update("color_scheme", func(p *MainUIPrefs) { p.ColorScheme = cs.ID })
}

func (d *MainUIData) update(key string, apply func(*MainUIPrefs)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// the store only changes once the new state is on disk
	next := *d.cfg
	apply(&next.MainUI)

	if d.path != "" {
		if err := next.SaveTo(d.path); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
	}
	*d.cfg = next
	logging.Debug("Preference updated", "key", key)
	return nil
}
