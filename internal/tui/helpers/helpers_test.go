package helpers

import (
	"testing"

	"tubedeck/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestHasValidDimensions(t *testing.T) {
	assert.False(t, NewUIContext(0, 0, nil, nil).HasValidDimensions())
	assert.False(t, NewUIContext(80, -1, nil, nil).HasValidDimensions())
	assert.True(t, NewUIContext(80, 24, nil, nil).HasValidDimensions())
}

func TestT(t *testing.T) {
	assert.Equal(t, "dialog_main_ui", UIContext{}.T("dialog_main_ui"))

	ctx := NewUIContext(80, 24, i18n.Default(), nil)
	assert.Equal(t, "Main UI", ctx.T("dialog_main_ui"))
}
