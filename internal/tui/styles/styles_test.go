package styles

import (
	"testing"

	"tubedeck/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemeAppliedAtInit(t *testing.T) {
	assert.Equal(t, config.DefaultColorScheme(), Active())
}

func TestApply_RebuildsFromScheme(t *testing.T) {
	t.Cleanup(func() { Apply(config.DefaultColorScheme()) })

	teal, ok := config.ColorSchemeByID("teal_grey")
	require.True(t, ok)

	Apply(teal)

	assert.Equal(t, teal, Active())
	assert.Equal(t, lipgloss.Color(teal.Primary), TitleStyle.GetForeground())
	assert.Equal(t, lipgloss.Color(teal.Error), ErrorStyle.GetForeground())
	assert.Equal(t, lipgloss.Color(teal.Accent), OptionSelectedStyle.GetForeground())
}

func TestHuhTheme_FollowsActiveScheme(t *testing.T) {
	t.Cleanup(func() { Apply(config.DefaultColorScheme()) })

	red, ok := config.ColorSchemeByID("red_grey")
	require.True(t, ok)
	Apply(red)

	theme := HuhTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color(red.Primary), theme.Focused.Title.GetForeground())
	assert.Equal(t, lipgloss.Color(red.Accent), theme.Blurred.SelectedOption.GetForeground())
}
