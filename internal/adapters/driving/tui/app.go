package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/messages"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/views/filedetail"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/views/files"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/views/menu"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/views/merge"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/views/settings"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// filesView is the vault file list view component.
	filesView *files.View

	// fileDetailView is the file detail view component.
	fileDetailView *filedetail.View

	// mergeView is the data-merge workflow view component.
	mergeView *merge.View

	// settingsView is the settings configuration view component.
	settingsView *settings.View

	// selectedFile tracks the currently selected file for navigation.
	selectedFile *domain.VaultFile

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		filesView:      files.NewView(s, ports.Vault),
		fileDetailView: filedetail.NewView(s, ports.Vault),
		mergeView:      merge.NewView(s, ports.Merge),
		settingsView:   settings.NewView(s, ports.Settings),
		currentView:    messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("stowage - File Vault"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.filesView.SetDimensions(msg.Width, msg.Height)
		a.fileDetailView.SetDimensions(msg.Width, msg.Height)
		a.mergeView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewFiles:
			a.filesView, cmd = a.filesView.Update(msg)
			return a, cmd

		case messages.ViewFileDetail:
			a.fileDetailView, cmd = a.fileDetailView.Update(msg)
			return a, cmd

		case messages.ViewMerge:
			a.mergeView, cmd = a.mergeView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewFiles:
			return a, a.filesView.Init()
		case messages.ViewFileDetail:
			return a, a.fileDetailView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewMerge:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.FileSelected:
		// Navigate from files to file detail
		a.selectedFile = &msg.File
		a.fileDetailView.SetFile(msg.File)
		a.currentView = messages.ViewFileDetail
		return a, a.fileDetailView.Init()

	case messages.MergeRequested:
		// Navigate to the merge workflow for the chosen target
		a.selectedFile = &msg.File
		a.currentView = messages.ViewMerge
		return a, a.mergeView.SetTarget(msg.File)

	case messages.FilesLoaded:
		a.filesView, cmd = a.filesView.Update(msg)
		return a, cmd

	case messages.MergeOpened, messages.MergeUpdated, messages.MergeSaved:
		a.mergeView, cmd = a.mergeView.Update(msg)
		return a, cmd

	case messages.FileUpdated, messages.FileDeleted:
		// Forward to relevant view
		if a.currentView == messages.ViewFileDetail {
			a.fileDetailView, cmd = a.fileDetailView.Update(msg)
			return a, cmd
		}
		a.filesView, cmd = a.filesView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		// Forward to settings view
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewFiles:
			a.filesView, cmd = a.filesView.Update(msg)
		case messages.ViewFileDetail:
			a.fileDetailView, cmd = a.fileDetailView.Update(msg)
		case messages.ViewMerge:
			a.mergeView, cmd = a.mergeView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewFiles:
		a.filesView, cmd = a.filesView.Update(msg)
	case messages.ViewFileDetail:
		a.fileDetailView, cmd = a.fileDetailView.Update(msg)
	case messages.ViewMerge:
		a.mergeView, cmd = a.mergeView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewFiles:
		return a.filesView.View()
	case messages.ViewFileDetail:
		return a.fileDetailView.View()
	case messages.ViewMerge:
		return a.mergeView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Files:
  j/k, ↑/↓    Navigate files
  enter       File actions
  r           Reload listing
  esc         Back to Menu

Data Merge:
  e           Edit identifier pair
  a           Add pair
  d           Delete pair
  l           Load data file
  m           Run merge
  s           Save result
  x           Discard result

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedFile returns the file most recently selected for navigation.
func (a *App) SelectedFile() *domain.VaultFile {
	return a.selectedFile
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.filesView.SetDimensions(width, height)
	a.mergeView.SetDimensions(width, height)
}
