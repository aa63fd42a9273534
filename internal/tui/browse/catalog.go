package browse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Channel is a subscribed channel as shown in the channels category.
type Channel struct {
	Name       string    `yaml:"name"`
	LastUpload time.Time `yaml:"last_upload"`
	LastViewed time.Time `yaml:"last_viewed"`
	NewVideos  int       `yaml:"new_videos"`
}

// Playlist is a user playlist card.
type Playlist struct {
	Title  string `yaml:"title"`
	Videos int    `yaml:"videos"`
}

// Catalog is the content shown on the browse screen.
type Catalog struct {
	Channels  []Channel  `yaml:"channels"`
	Playlists []Playlist `yaml:"playlists"`
}

// CatalogPath is where the subscriptions snapshot is kept.
func CatalogPath() string {
	return filepath.Join(xdg.DataHome, "tubedeck", "catalog.yaml")
}

// LoadCatalog reads a catalog file. A missing file yields an empty catalog.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Catalog{}, nil
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return c, nil
}
