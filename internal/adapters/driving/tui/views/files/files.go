// Package files provides the vault file list view component for the TUI.
package files

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/components/list"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/components/status"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/messages"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
)

// ActionOption represents a file action.
type ActionOption int

const (
	ActionDataMerge ActionOption = iota
	ActionShowDetails
	ActionToggleDeviceInfo
	ActionDelete
	ActionCancel
)

// View is the vault file list view.
type View struct {
	styles       *styles.Styles
	vaultService driving.VaultService

	fileList *list.FileList
	bar      *status.Bar

	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	showingMenu  bool
	menuSelected ActionOption
}

// NewView creates a new files view.
func NewView(s *styles.Styles, vaultService driving.VaultService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:       s,
		vaultService: vaultService,
		fileList:     list.NewFileList(s),
		bar:          status.NewBar(s, nil),
	}
}

// Init initialises the view and loads the file listing.
func (v *View) Init() tea.Cmd {
	v.fileList.SetSelected(0)
	v.err = nil
	v.showingMenu = false
	return v.loadFiles()
}

// loadFiles returns a command that loads the vault file listing.
func (v *View) loadFiles() tea.Cmd {
	return func() tea.Msg {
		if v.vaultService == nil {
			return messages.FilesLoaded{Err: fmt.Errorf("vault service not available")}
		}

		v.loading = true
		files, err := v.vaultService.List(context.Background())
		return messages.FilesLoaded{Files: files, Err: err}
	}
}

// Update handles messages for the files view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.showingMenu {
			return v.handleMenuKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.FilesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
		} else {
			// Keep the selection where possible across reloads
			selected := v.fileList.Selected()
			v.fileList.SetFiles(msg.Files)
			v.fileList.SetSelected(selected)
			v.err = nil
			v.bar.Clear()
			v.bar.SetCount(len(msg.Files))
		}
		return v, nil

	case messages.FileUpdated:
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		return v, v.loadFiles()

	case messages.FileDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		return v, v.loadFiles()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		v.fileList, _ = v.fileList.Update(msg)
	case "enter":
		if !v.fileList.IsEmpty() {
			v.showingMenu = true
			v.menuSelected = ActionDataMerge
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "r":
		v.loading = true
		v.bar.SetState(status.StateProcessing)
		return v, v.loadFiles()
	}

	return v, nil
}

// handleMenuKeyMsg handles key presses in action menu mode.
func (v *View) handleMenuKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.menuSelected > ActionDataMerge {
			v.menuSelected--
		}
	case "down", "j":
		if v.menuSelected < ActionCancel {
			v.menuSelected++
		}
	case "enter":
		return v.handleMenuSelect()
	case "esc":
		v.showingMenu = false
	}

	return v, nil
}

// handleMenuSelect handles selection of an action.
func (v *View) handleMenuSelect() (*View, tea.Cmd) {
	file := v.fileList.SelectedFile()
	if file == nil {
		v.showingMenu = false
		return v, nil
	}
	selected := *file

	switch v.menuSelected {
	case ActionDataMerge:
		v.showingMenu = false
		return v, func() tea.Msg {
			return messages.MergeRequested{File: selected}
		}
	case ActionShowDetails:
		v.showingMenu = false
		return v, func() tea.Msg {
			return messages.FileSelected{File: selected}
		}
	case ActionToggleDeviceInfo:
		v.showingMenu = false
		return v, v.toggleDeviceInfo(selected.ID, !selected.IsDeviceInfo)
	case ActionDelete:
		v.showingMenu = false
		return v, v.deleteFile(selected.ID)
	case ActionCancel:
		v.showingMenu = false
	}

	return v, nil
}

// toggleDeviceInfo returns a command that flips the device info flag.
func (v *View) toggleDeviceInfo(fileID string, flag bool) tea.Cmd {
	return func() tea.Msg {
		if v.vaultService == nil {
			return messages.FileUpdated{ID: fileID, Err: fmt.Errorf("vault service not available")}
		}

		err := v.vaultService.MarkDeviceInfo(context.Background(), fileID, flag)
		return messages.FileUpdated{ID: fileID, Err: err}
	}
}

// deleteFile returns a command that deletes the file.
func (v *View) deleteFile(fileID string) tea.Cmd {
	return func() tea.Msg {
		if v.vaultService == nil {
			return messages.FileDeleted{ID: fileID, Err: fmt.Errorf("vault service not available")}
		}

		err := v.vaultService.Delete(context.Background(), fileID)
		return messages.FileDeleted{ID: fileID, Err: err}
	}
}

// View renders the files view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Vault Files (%d)", v.fileList.Count())
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading files..."))
		b.WriteString("\n\n")

	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")

	case v.fileList.IsEmpty():
		b.WriteString(v.styles.Muted.Render("The vault is empty. Add files with \"stowage file add\"."))
		b.WriteString("\n\n")

	case v.showingMenu:
		b.WriteString(v.renderActionMenu())
		return b.String()

	default:
		b.WriteString(v.fileList.View())
		b.WriteString("\n\n")
	}

	b.WriteString(v.bar.View())

	return b.String()
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	var b strings.Builder

	file := v.fileList.SelectedFile()
	if file != nil {
		name := file.Name
		if name == "" {
			name = file.ID
		}
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Actions for: %s", name)))
		b.WriteString("\n\n")
	}

	deviceInfoLabel := "Mark as Device Info"
	if file != nil && file.IsDeviceInfo {
		deviceInfoLabel = "Unmark Device Info"
	}

	options := []struct {
		action ActionOption
		label  string
	}{
		{ActionDataMerge, "Data Merge"},
		{ActionShowDetails, "Show Details"},
		{ActionToggleDeviceInfo, deviceInfoLabel},
		{ActionDelete, "Delete"},
		{ActionCancel, "Cancel"},
	}

	for _, opt := range options {
		indicator := "  "
		if v.menuSelected == opt.action {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		} else {
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("%s%s", indicator, opt.label)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] select  [esc] cancel"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	// Title, padding and status bar take a few rows
	listHeight := height - 6
	if listHeight < 4 {
		listHeight = 4
	}
	v.fileList.SetDimensions(width, listHeight)
	v.bar.SetWidth(width)
}

// Files returns the current list of files.
func (v *View) Files() []domain.VaultFile {
	return v.fileList.Files()
}

// SelectedIndex returns the currently selected file index.
func (v *View) SelectedIndex() int {
	return v.fileList.Selected()
}

// SelectedFile returns the currently selected file.
func (v *View) SelectedFile() *domain.VaultFile {
	return v.fileList.SelectedFile()
}

// IsShowingMenu returns true if the action menu is visible.
func (v *View) IsShowingMenu() bool {
	return v.showingMenu
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
