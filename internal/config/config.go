// Package config owns tubedeck's persisted preferences: the YAML file on disk,
// the Main UI settings held in it and the built-in color schemes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"tubedeck/internal/logging"
	"tubedeck/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "tubedeck" // application name used for config directory

// ConfigPathEnv overrides the config file location; tests rely on it.
const ConfigPathEnv = "TUBEDECK_CONFIG_PATH"

const currentVersion = "1.0"

// Config is the on-disk document.
type Config struct {
	Version  string      `yaml:"version"`
	InitTime int64       `yaml:"init_time"` // Unix timestamp of first save
	MainUI   MainUIPrefs `yaml:"main_ui"`
}

// MainUIPrefs holds the settings shown in the Main UI dialog.
type MainUIPrefs struct {
	CardAnimatedPreviews   bool           `yaml:"card_animated_previews"`
	CardMultilineTitle     bool           `yaml:"card_multiline_title"`
	CardTextAutoScroll     bool           `yaml:"card_text_auto_scroll"`
	ChannelCategorySorting ChannelSorting `yaml:"channel_category_sorting"`
	PlaylistsStyle         PlaylistsStyle `yaml:"playlists_style"`
	ColorScheme            string         `yaml:"color_scheme"`
}

// DefaultConfig returns a Config with the application defaults.
func DefaultConfig() Config {
	return Config{
		Version: currentVersion,
		MainUI: MainUIPrefs{
			CardAnimatedPreviews:   true,
			CardMultilineTitle:     false,
			CardTextAutoScroll:     true,
			ChannelCategorySorting: ChannelSortingLastViewed,
			PlaylistsStyle:         PlaylistsStyleGrid,
			ColorScheme:            DefaultColorScheme().ID,
		},
	}
}

// ConfigPath returns the config file location for the current platform,
// honoring TUBEDECK_CONFIG_PATH.
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Load reads the config from path. A missing file is not an error: the
// defaults are returned and written on the first save.
func Load(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("No config file yet, using defaults", "path", path)
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// LoadFrom loads config from a specific path. Keys absent from the file keep
// their default values; unknown enum values are reset to defaults.
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == "" {
		c.Version = currentVersion
	}
	if !c.MainUI.ChannelCategorySorting.Valid() {
		logging.Warn("Unknown channel sorting in config, using default",
			"value", int(c.MainUI.ChannelCategorySorting))
		c.MainUI.ChannelCategorySorting = def.MainUI.ChannelCategorySorting
	}
	if !c.MainUI.PlaylistsStyle.Valid() {
		logging.Warn("Unknown playlists style in config, using default",
			"value", int(c.MainUI.PlaylistsStyle))
		c.MainUI.PlaylistsStyle = def.MainUI.PlaylistsStyle
	}
	if _, ok := ColorSchemeByID(c.MainUI.ColorScheme); !ok {
		logging.Warn("Unknown color scheme in config, using default", "id", c.MainUI.ColorScheme)
		c.MainUI.ColorScheme = def.MainUI.ColorScheme
	}
}

// SaveTo writes the config to a specific path, replacing the file atomically.
func (c *Config) SaveTo(path string) error {
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// 0600: the file is per-user state
	if err := fileops.AtomicWriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
