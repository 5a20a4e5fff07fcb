package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Key", "enter a key...")

	require.NotNil(t, f)
	assert.Equal(t, "Key", f.Label())
	assert.Empty(t, f.Value())
	assert.True(t, f.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	f := NewField(nil, "Key", "")

	require.NotNil(t, f)
}

func TestField_SetValue(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Key", "")

	f.SetValue("hostname")

	assert.Equal(t, "hostname", f.Value())
}

func TestField_SetLabel(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Key", "")

	f.SetLabel("Value")

	assert.Equal(t, "Value", f.Label())
}

func TestField_FocusBlur(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Key", "")

	f.Blur()
	assert.False(t, f.Focused())

	f.Focus()
	assert.True(t, f.Focused())
}

func TestField_Reset(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Key", "")
	f.SetValue("something")

	f.Reset()

	assert.Empty(t, f.Value())
}

func TestField_SetWidth_Minimum(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Key", "")

	f.SetWidth(5)

	assert.Equal(t, 5, f.Width())
}

func TestField_View_ContainsLabel(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Data file path", "")

	out := f.View()

	assert.Contains(t, out, "Data file path")
}
