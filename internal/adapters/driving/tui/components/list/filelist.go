// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// FileList displays vault files in a navigable list.
type FileList struct {
	files    []domain.VaultFile
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFileList creates a new file list component.
func NewFileList(s *styles.Styles) *FileList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FileList{
		files:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the file list.
func (l *FileList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *FileList) Update(msg tea.Msg) (*FileList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the file list.
func (l *FileList) View() string {
	if len(l.files) == 0 {
		return l.styles.Muted.Render("No files")
	}

	lines := make([]string, 0, len(l.files)+2)

	// Header
	header := l.styles.Subtitle.Render(fmt.Sprintf("Files (%d)", len(l.files)))
	lines = append(lines, header, "")

	// Calculate visible range based on height
	visibleCount := l.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.files) {
		end = len(l.files)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderFile(i, &l.files[i]))
	}

	return strings.Join(lines, "\n")
}

// renderFile formats a single vault file line.
func (l *FileList) renderFile(index int, file *domain.VaultFile) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := file.Name
	if name == "" {
		name = file.ID
	}

	// Truncate name if too long
	maxNameLen := l.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	tags := fileTags(file)

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, tags))
	}

	return l.styles.Normal.Render(indicator) +
		l.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxNameLen, name)) +
		l.styles.Muted.Render(tags)
}

// fileTags builds the short annotation shown next to a file name.
func fileTags(file *domain.VaultFile) string {
	parts := make([]string, 0, 3)
	if file.Category != "" {
		parts = append(parts, file.Category)
	}
	if file.IsDeviceInfo {
		parts = append(parts, "device info")
	}
	if file.IsDataMergeFile {
		parts = append(parts, "data")
	}
	return strings.Join(parts, " · ")
}

// SetFiles updates the file list.
func (l *FileList) SetFiles(files []domain.VaultFile) {
	l.files = files
	l.selected = 0
}

// Files returns the current files.
func (l *FileList) Files() []domain.VaultFile {
	return l.files
}

// Selected returns the index of the selected file.
func (l *FileList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *FileList) SetSelected(index int) {
	if index >= 0 && index < len(l.files) {
		l.selected = index
	}
}

// SelectedFile returns the currently selected file, or nil if none.
func (l *FileList) SelectedFile() *domain.VaultFile {
	if len(l.files) == 0 || l.selected < 0 || l.selected >= len(l.files) {
		return nil
	}
	return &l.files[l.selected]
}

// MoveUp moves selection up.
func (l *FileList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *FileList) MoveDown() {
	if l.selected < len(l.files)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *FileList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *FileList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *FileList) Height() int {
	return l.height
}

// Count returns the number of files.
func (l *FileList) Count() int {
	return len(l.files)
}

// IsEmpty returns whether the list is empty.
func (l *FileList) IsEmpty() bool {
	return len(l.files) == 0
}
