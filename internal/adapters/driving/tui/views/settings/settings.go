// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/components/input"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/messages"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
)

// Mode is the interaction mode of the settings view.
type Mode int

const (
	// ModeList navigates the category list.
	ModeList Mode = iota
	// ModeAddCategory prompts for a new category label.
	ModeAddCategory
	// ModeImportDir prompts for the import directory path.
	ModeImportDir
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.VaultSettings
	selected int
	mode     Mode
	field    *input.Field

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
		field:           input.NewField(s, "Category", ""),
	}
}

// Reset clears transient state before the view is shown.
func (v *View) Reset() {
	v.selected = 0
	v.mode = ModeList
	v.err = nil
	v.field.Reset()
}

// Init initialises the view and loads the settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads the vault settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}

		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.field.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		if v.mode == ModeList {
			return v.handleListKeyMsg(msg)
		}
		return v.handleInputKeyMsg(msg)

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
			if v.settings != nil && v.selected >= len(v.settings.Categories) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleListKeyMsg handles key presses in list mode.
func (v *View) handleListKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.settings != nil && v.selected < len(v.settings.Categories)-1 {
			v.selected++
		}
	case "a":
		v.mode = ModeAddCategory
		v.field.SetLabel("Category")
		v.field.SetValue("")
		return v, v.field.Focus()
	case "d":
		if v.settings != nil && v.selected < len(v.settings.Categories) {
			return v, v.removeCategory(v.settings.Categories[v.selected])
		}
	case "i":
		v.mode = ModeImportDir
		v.field.SetLabel("Import directory")
		if v.settings != nil {
			v.field.SetValue(v.settings.ImportDir)
		}
		return v, v.field.Focus()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleInputKeyMsg handles key presses while an input field is active.
func (v *View) handleInputKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := v.field.Value()
		mode := v.mode
		v.mode = ModeList
		v.field.Blur()
		v.field.Reset()

		if mode == ModeAddCategory {
			return v, v.addCategory(value)
		}
		return v, v.setImportDir(value)

	case "esc":
		v.mode = ModeList
		v.field.Blur()
		v.field.Reset()
		return v, nil
	}

	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

// addCategory returns a command that adds a category label.
func (v *View) addCategory(label string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}

		err := v.settingsService.AddCategory(label)
		return messages.SettingsSaved{Err: err}
	}
}

// removeCategory returns a command that removes a category label.
func (v *View) removeCategory(label string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}

		err := v.settingsService.RemoveCategory(label)
		return messages.SettingsSaved{Err: err}
	}
}

// setImportDir returns a command that sets the import directory.
func (v *View) setImportDir(path string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}

		err := v.settingsService.SetImportDir(path)
		return messages.SettingsSaved{Err: err}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.mode != ModeList {
		b.WriteString(v.field.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] confirm  [esc] cancel"))
		return b.String()
	}

	// Categories
	b.WriteString(v.styles.Subtitle.Render("Device-type categories"))
	b.WriteString("\n")
	if v.settings == nil || len(v.settings.Categories) == 0 {
		b.WriteString(v.styles.Muted.Render("  (none defined)"))
		b.WriteString("\n")
	} else {
		for i, c := range v.settings.Categories {
			indicator := "  "
			if i == v.selected {
				indicator = "> "
				b.WriteString(v.styles.Selected.Render(indicator + c))
			} else {
				b.WriteString(v.styles.Normal.Render(indicator + c))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	// Import directory
	b.WriteString(v.styles.Subtitle.Render("Import directory"))
	b.WriteString("\n")
	if v.settings == nil || v.settings.ImportDir == "" {
		b.WriteString(v.styles.Muted.Render("  (not set)"))
	} else {
		b.WriteString(v.styles.Normal.Render("  " + v.settings.ImportDir))
	}
	b.WriteString("\n\n")

	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[a] add category  [d] remove  [i] import dir  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.field.SetWidth(width)
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.VaultSettings {
	return v.settings
}

// SelectedIndex returns the selected category index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// CurrentMode returns the active interaction mode.
func (v *View) CurrentMode() Mode {
	return v.mode
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
