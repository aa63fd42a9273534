package mainui

import (
	"tubedeck/internal/config"
	"tubedeck/internal/i18n"
	"tubedeck/internal/settings"
)

// choice binds a label key to the constant it writes.
type choice[T comparable] struct {
	labelKey string
	value    T
}

var channelSortings = []choice[config.ChannelSorting]{
	{"sorting_by_new_content", config.ChannelSortingUpdate},
	{"sorting_alphabetically", config.ChannelSortingAZ},
	{"sorting_last_viewed", config.ChannelSortingLastViewed},
}

var playlistsStyles = []choice[config.PlaylistsStyle]{
	{"playlists_style_grid", config.PlaylistsStyleGrid},
	{"playlists_style_rows", config.PlaylistsStyleRows},
}

// radioOptions turns a choice table into options. The option equal to
// current starts selected; activating an option passes its value to apply.
func radioOptions[T comparable](strings *i18n.Strings, choices []choice[T], current T, apply func(T) error) []settings.Option {
	options := make([]settings.Option, 0, len(choices))
	for _, c := range choices {
		value := c.value
		options = append(options, settings.Option{
			Title:    strings.Get(c.labelKey),
			Selected: value == current,
			OnSelect: func(settings.Option) error { return apply(value) },
		})
	}
	return options
}

// toggle is a boolean preference with its accessors.
type toggle struct {
	labelKey string
	get      func() bool
	set      func(bool) error
}

func (t toggle) option(strings *i18n.Strings) settings.Option {
	set := t.set
	return settings.Option{
		Title:    strings.Get(t.labelKey),
		Selected: t.get(),
		OnSelect: func(o settings.Option) error { return set(o.Selected) },
	}
}
