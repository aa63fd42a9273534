package browse

import (
	"sort"
	"strings"

	"tubedeck/internal/config"
)

// SortChannels returns a sorted copy of channels. Ties break by name so the
// order is stable across refreshes.
func SortChannels(channels []Channel, mode config.ChannelSorting) []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels)

	byName := func(a, b Channel) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}

	var less func(a, b Channel) bool
	switch mode {
	case config.ChannelSortingUpdate:
		less = func(a, b Channel) bool {
			if !a.LastUpload.Equal(b.LastUpload) {
				return a.LastUpload.After(b.LastUpload)
			}
			return byName(a, b)
		}
	case config.ChannelSortingLastViewed:
		less = func(a, b Channel) bool {
			if !a.LastViewed.Equal(b.LastViewed) {
				return a.LastViewed.After(b.LastViewed)
			}
			return byName(a, b)
		}
	default:
		less = byName
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// cardWidth is the outer width of a grid cell, borders included.
const cardWidth = 26

// LayoutPlaylists splits playlists into display rows: one per row for the
// rows style, as many as fit in width for the grid style.
func LayoutPlaylists(playlists []Playlist, style config.PlaylistsStyle, width int) [][]Playlist {
	perRow := 1
	if style == config.PlaylistsStyleGrid {
		perRow = width / cardWidth
		if perRow < 1 {
			perRow = 1
		}
	}

	var rows [][]Playlist
	for start := 0; start < len(playlists); start += perRow {
		end := start + perRow
		if end > len(playlists) {
			end = len(playlists)
		}
		rows = append(rows, playlists[start:end])
	}
	return rows
}
