package files

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driven/storage/memory"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/messages"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
	"github.com/stowage-labs/stowage-cli/internal/core/services"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestView(t *testing.T) (*View, driving.VaultService) {
	t.Helper()

	vault := services.NewVaultService(memory.NewBlobStore())
	v := NewView(styles.DefaultStyles(), vault)
	v.SetDimensions(100, 30)
	return v, vault
}

func seedFiles(t *testing.T, vault driving.VaultService, names ...string) {
	t.Helper()

	for _, name := range names {
		_, err := vault.Add(context.Background(), name, []byte("content"), "")
		require.NoError(t, err)
	}
}

func loadView(t *testing.T, v *View) *View {
	t.Helper()

	cmd := v.Init()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func TestView_Init_LoadsFiles(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "a.txt", "b.txt")

	v = loadView(t, v)

	require.Len(t, v.Files(), 2)
	assert.NoError(t, v.Err())
}

func TestView_FilesLoaded_Error(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(messages.FilesLoaded{Err: errors.New("storage down")})

	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "storage down")
}

func TestView_Navigation(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "a.txt", "b.txt", "c.txt")
	v = loadView(t, v)

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_EnterOpensActionMenu(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "a.txt")
	v = loadView(t, v)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, v.IsShowingMenu())
	assert.Contains(t, v.View(), "Actions for: a.txt")
}

func TestView_EnterOnEmptyListDoesNothing(t *testing.T) {
	v, _ := newTestView(t)
	v = loadView(t, v)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, v.IsShowingMenu())
}

func TestView_ActionMenu_DataMerge(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "template.docx")
	v = loadView(t, v)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.MergeRequested)
	require.True(t, ok)
	assert.Equal(t, "template.docx", msg.File.Name)
	assert.False(t, v.IsShowingMenu())
}

func TestView_ActionMenu_ShowDetails(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "a.txt")
	v = loadView(t, v)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(keyMsg("j"))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.FileSelected)
	require.True(t, ok)
	assert.Equal(t, "a.txt", msg.File.Name)
}

func TestView_ActionMenu_ToggleDeviceInfo(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "devices.xlsx")
	v = loadView(t, v)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	updated, ok := cmd().(messages.FileUpdated)
	require.True(t, ok)
	require.NoError(t, updated.Err)

	// The update triggers a reload
	v, _ = v.Update(updated)
	files, err := vault.List(context.Background())
	require.NoError(t, err)
	assert.True(t, files[0].IsDeviceInfo)
}

func TestView_ActionMenu_Delete(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "a.txt")
	v = loadView(t, v)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for range 3 {
		v, _ = v.Update(keyMsg("j"))
	}

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	deleted, ok := cmd().(messages.FileDeleted)
	require.True(t, ok)
	require.NoError(t, deleted.Err)

	files, err := vault.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
	_ = v
}

func TestView_ActionMenu_EscCloses(t *testing.T) {
	v, vault := newTestView(t)
	seedFiles(t, vault, "a.txt")
	v = loadView(t, v)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.IsShowingMenu())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v, _ := newTestView(t)
	v = loadView(t, v)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_EmptyState(t *testing.T) {
	v, _ := newTestView(t)
	v = loadView(t, v)

	assert.Contains(t, v.View(), "The vault is empty")
}

func TestView_RendersAnnotations(t *testing.T) {
	v, vault := newTestView(t)
	_, err := vault.Add(context.Background(), "devices.xlsx", []byte("x"), "Sensors")
	require.NoError(t, err)
	v = loadView(t, v)

	out := v.View()

	assert.Contains(t, out, "devices.xlsx")
	assert.Contains(t, out, "Sensors")
}
