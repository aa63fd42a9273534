package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ChannelSorting orders the channels category on the browse screen.
type ChannelSorting int

const (
	ChannelSortingUpdate ChannelSorting = iota // newest uploads first
	ChannelSortingAZ
	ChannelSortingLastViewed
)

// PlaylistsStyle selects how playlists are laid out on the browse screen.
type PlaylistsStyle int

const (
	PlaylistsStyleGrid PlaylistsStyle = iota
	PlaylistsStyleRows
)

// invalidEnum marks a persisted value that did not match any known name.
const invalidEnum = -1

var channelSortingNames = map[ChannelSorting]string{
	ChannelSortingUpdate:     "update",
	ChannelSortingAZ:         "az",
	ChannelSortingLastViewed: "last_viewed",
}

var playlistsStyleNames = map[PlaylistsStyle]string{
	PlaylistsStyleGrid: "grid",
	PlaylistsStyleRows: "rows",
}

func (s ChannelSorting) Valid() bool {
	_, ok := channelSortingNames[s]
	return ok
}

func (s ChannelSorting) String() string {
	if name, ok := channelSortingNames[s]; ok {
		return name
	}
	return "ChannelSorting(" + strconv.Itoa(int(s)) + ")"
}

func (s ChannelSorting) MarshalYAML() (interface{}, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid channel sorting %d", int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML accepts the symbolic name or the legacy integer constant.
func (s *ChannelSorting) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeEnum(value, func(name string) (int, bool) {
		for k, n := range channelSortingNames {
			if n == name {
				return int(k), true
			}
		}
		return 0, false
	})
	if err != nil {
		return err
	}
	*s = ChannelSorting(v)
	return nil
}

func (s PlaylistsStyle) Valid() bool {
	_, ok := playlistsStyleNames[s]
	return ok
}

func (s PlaylistsStyle) String() string {
	if name, ok := playlistsStyleNames[s]; ok {
		return name
	}
	return "PlaylistsStyle(" + strconv.Itoa(int(s)) + ")"
}

func (s PlaylistsStyle) MarshalYAML() (interface{}, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid playlists style %d", int(s))
	}
	return s.String(), nil
}

func (s *PlaylistsStyle) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeEnum(value, func(name string) (int, bool) {
		for k, n := range playlistsStyleNames {
			if n == name {
				return int(k), true
			}
		}
		return 0, false
	})
	if err != nil {
		return err
	}
	*s = PlaylistsStyle(v)
	return nil
}

// decodeEnum maps a scalar node to an enum value. Unknown names decode to
// invalidEnum so that Config.normalize can reset them.
func decodeEnum(value *yaml.Node, byName func(string) (int, bool)) (int, error) {
	if value.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("line %d: expected a scalar enum value", value.Line)
	}
	if n, err := strconv.Atoi(value.Value); err == nil {
		return n, nil
	}
	if v, ok := byName(value.Value); ok {
		return v, nil
	}
	return invalidEnum, nil
}
