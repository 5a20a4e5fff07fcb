package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

func sampleFiles() []domain.VaultFile {
	return []domain.VaultFile{
		{ID: "f1", Name: "report.docx", Category: "Sensors"},
		{ID: "f2", Name: "devices.xlsx", IsDeviceInfo: true},
		{ID: "f3", Name: "data.txt", IsDataMergeFile: true},
	}
}

func TestNewFileList(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())
}

func TestFileList_SetFiles(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())

	l.SetFiles(sampleFiles())

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 0, l.Selected())
	assert.False(t, l.IsEmpty())
}

func TestFileList_Navigation(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())
	l.SetFiles(sampleFiles())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	l.MoveDown()
	l.MoveDown() // past the end
	assert.Equal(t, 2, l.Selected())

	l.MoveUp()
	assert.Equal(t, 1, l.Selected())

	l.MoveUp()
	l.MoveUp() // past the start
	assert.Equal(t, 0, l.Selected())
}

func TestFileList_Update_KeyNavigation(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())
	l.SetFiles(sampleFiles())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())
}

func TestFileList_SelectedFile(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())

	assert.Nil(t, l.SelectedFile())

	l.SetFiles(sampleFiles())
	l.SetSelected(1)

	file := l.SelectedFile()
	require.NotNil(t, file)
	assert.Equal(t, "f2", file.ID)
}

func TestFileList_SetSelected_OutOfRange(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())
	l.SetFiles(sampleFiles())

	l.SetSelected(99)

	assert.Equal(t, 0, l.Selected())
}

func TestFileList_View_Empty(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())

	assert.Contains(t, l.View(), "No files")
}

func TestFileList_View_ShowsNamesAndTags(t *testing.T) {
	l := NewFileList(styles.DefaultStyles())
	l.SetFiles(sampleFiles())
	l.SetDimensions(100, 20)

	out := l.View()

	assert.Contains(t, out, "report.docx")
	assert.Contains(t, out, "Sensors")
	assert.Contains(t, out, "device info")
	assert.Contains(t, out, "Files (3)")
}
