// Package i18n resolves string resource keys to display text.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// DefaultLocale is always present and is the fallback for missing keys.
const DefaultLocale = "en"

// Strings is a flat key to text table.
type Strings struct {
	locale   string
	table    map[string]string
	fallback map[string]string
}

// Load returns the table for locale, backed by the default locale for keys
// the locale does not define.
func Load(locale string) (*Strings, error) {
	fallback, err := readTable(DefaultLocale)
	if err != nil {
		return nil, err
	}
	if locale == "" || locale == DefaultLocale {
		return &Strings{locale: DefaultLocale, table: fallback}, nil
	}

	table, err := readTable(locale)
	if err != nil {
		return nil, err
	}
	return &Strings{locale: locale, table: table, fallback: fallback}, nil
}

// Default returns the built-in English table. The embedded file is part of
// the binary, so a failure here is a build defect.
func Default() *Strings {
	s, err := Load(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return s
}

// FromMap builds a table from literal values, mostly for tests.
func FromMap(locale string, table map[string]string) *Strings {
	return &Strings{locale: locale, table: table}
}

func readTable(locale string) (map[string]string, error) {
	data, err := locales.ReadFile(path.Join("locales", locale+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	table := map[string]string{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return table, nil
}

func (s *Strings) Locale() string {
	return s.locale
}

// Get returns the text for key. Unknown keys come back unchanged.
func (s *Strings) Get(key string) string {
	if v, ok := s.table[key]; ok {
		return v
	}
	if v, ok := s.fallback[key]; ok {
		return v
	}
	return key
}
