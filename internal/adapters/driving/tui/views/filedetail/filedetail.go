// Package filedetail provides the vault file detail view component for the TUI.
package filedetail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/messages"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
)

// MenuOption represents an action in the file detail menu.
type MenuOption int

const (
	OptionDataMerge MenuOption = iota
	OptionDelete
	OptionBack
)

// View is the file detail view.
type View struct {
	styles       *styles.Styles
	vaultService driving.VaultService

	file        *domain.VaultFile
	attachments []domain.VaultFile
	selected    MenuOption
	width       int
	height      int
	ready       bool
	err         error
	deleting    bool
}

// NewView creates a new file detail view.
func NewView(s *styles.Styles, vaultService driving.VaultService) *View {
	return &View{
		styles:       s,
		vaultService: vaultService,
		selected:     OptionDataMerge,
	}
}

// SetFile sets the file to display details for.
func (v *View) SetFile(file domain.VaultFile) {
	v.file = &file
	v.attachments = nil
	v.err = nil
	v.deleting = false
	v.selected = OptionDataMerge
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.loadAttachments()
}

// loadAttachments returns a command that loads the file's data files.
func (v *View) loadAttachments() tea.Cmd {
	return func() tea.Msg {
		if v.file == nil || v.vaultService == nil {
			return nil
		}

		attachments, err := v.vaultService.Attachments(context.Background(), v.file.ID)
		if err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		v.attachments = attachments
		return nil
	}
}

// Update handles messages for the file detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FileDeleted:
		v.deleting = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			// Navigate back after deletion
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewFiles}
			}
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > OptionDataMerge {
			v.selected--
		}
	case "down", "j":
		if v.selected < OptionBack {
			v.selected++
		}
	case "enter":
		return v.handleSelect()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFiles}
		}
	}

	return v, nil
}

// handleSelect handles selection of a menu option.
func (v *View) handleSelect() (*View, tea.Cmd) {
	switch v.selected {
	case OptionDataMerge:
		if v.file != nil {
			return v, func() tea.Msg {
				return messages.MergeRequested{File: *v.file}
			}
		}
	case OptionDelete:
		return v, v.deleteFile()
	case OptionBack:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFiles}
		}
	}
	return v, nil
}

// deleteFile returns a command that deletes the file.
func (v *View) deleteFile() tea.Cmd {
	return func() tea.Msg {
		if v.file == nil || v.vaultService == nil {
			return messages.FileDeleted{Err: fmt.Errorf("vault service not available")}
		}

		v.deleting = true
		err := v.vaultService.Delete(context.Background(), v.file.ID)
		return messages.FileDeleted{ID: v.file.ID, Err: err}
	}
}

// View renders the file detail view.
func (v *View) View() string {
	if v.file == nil {
		return v.styles.Muted.Render("No file selected")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("File: %s", v.file.Name)))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("ID: "))
	b.WriteString(v.styles.Muted.Render(v.file.ID))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Type: "))
	b.WriteString(v.styles.Normal.Render(v.file.MIMEType))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Size: "))
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%d bytes", v.file.Size)))
	b.WriteString("\n")

	if v.file.Category != "" {
		b.WriteString(v.styles.Subtitle.Render("Category: "))
		b.WriteString(v.styles.Normal.Render(v.file.Category))
		b.WriteString("\n")
	}

	if v.file.IsDeviceInfo {
		b.WriteString(v.styles.Subtitle.Render("Device info reference"))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Subtitle.Render("Saved: "))
	b.WriteString(v.styles.Normal.Render(v.file.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString("\n\n")

	// Attached data files
	if len(v.attachments) > 0 {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Data files (%d):", len(v.attachments))))
		b.WriteString("\n")
		for i := range v.attachments {
			b.WriteString(v.styles.Muted.Render("  " + v.attachments[i].Name))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.deleting {
		b.WriteString(v.styles.Muted.Render("Deleting..."))
		b.WriteString("\n\n")
	}

	// Menu separator
	b.WriteString(strings.Repeat("─", minInt(40, v.width-4)))
	b.WriteString("\n\n")

	options := []struct {
		option MenuOption
		label  string
	}{
		{OptionDataMerge, "Data Merge"},
		{OptionDelete, "Delete File"},
		{OptionBack, "Back"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.selected == opt.option {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// File returns the current file.
func (v *View) File() *domain.VaultFile {
	return v.file
}

// Attachments returns the loaded data files.
func (v *View) Attachments() []domain.VaultFile {
	return v.attachments
}

// SelectedOption returns the currently selected menu option.
func (v *View) SelectedOption() MenuOption {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
