package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#0EA5E9"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#F38BA8"), theme.Error)
	assert.Equal(t, lipgloss.Color("#A6E3A1"), theme.Success)
}

func TestNewStyles_WithNilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestNewStyles_WithCustomTheme(t *testing.T) {
	theme := &Theme{Primary: lipgloss.Color("#FFFFFF")}

	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
}

func TestDefaultStyles_RendersText(t *testing.T) {
	s := DefaultStyles()

	out := s.Title.Render("Stowage")

	assert.Contains(t, out, "Stowage")
}
