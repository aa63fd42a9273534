package helpers

import (
	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
)

// NavigateToMainMenuMsg is a common message for all submodels to navigate back to main menu
type NavigateToMainMenuMsg struct{}

// UIContext carries environment information needed for creating UI models
type UIContext struct {
	Width   int
	Height  int
	Strings *i18n.Strings
	Logger  *logging.AppLogger
}

// NewUIContext creates a new UI context with the provided parameters
func NewUIContext(width, height int, strings *i18n.Strings, logger *logging.AppLogger) UIContext {
	return UIContext{
		Width:   width,
		Height:  height,
		Strings: strings,
		Logger:  logger,
	}
}

// HasValidDimensions checks if the context has valid window dimensions
func (ctx UIContext) HasValidDimensions() bool {
	return ctx.Width > 0 && ctx.Height > 0
}

// T resolves a string resource key, tolerating a context without a table.
func (ctx UIContext) T(key string) string {
	if ctx.Strings == nil {
		return key
	}
	return ctx.Strings.Get(key)
}
