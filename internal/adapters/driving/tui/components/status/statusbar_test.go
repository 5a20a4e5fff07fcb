package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/keymap"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	b := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, b)
	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, 80, b.Width())
}

func TestNewBar_NilDefaults(t *testing.T) {
	b := NewBar(nil, nil)

	require.NotNil(t, b)
	assert.Equal(t, StateReady, b.State())
}

func TestBar_SetState(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateProcessing)

	assert.Equal(t, StateProcessing, b.State())
}

func TestBar_View_Ready(t *testing.T) {
	b := NewBar(nil, nil)

	assert.Contains(t, b.View(), "Ready")
}

func TestBar_View_Error(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("merge failed")

	out := b.View()

	assert.Contains(t, out, "Error: merge failed")
}

func TestBar_View_Success(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateSuccess)
	b.SetMessage("merged report.docx")

	assert.Contains(t, b.View(), "merged report.docx")
}

func TestBar_View_Count(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetCount(7)

	assert.Contains(t, b.View(), "7 items")
}

func TestBar_Clear(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("boom")
	b.SetCount(3)

	b.Clear()

	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
	assert.Equal(t, 0, b.Count())
}
