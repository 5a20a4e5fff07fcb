// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewFiles is the vault file list view.
	ViewFiles
	// ViewFileDetail shows details for a single vault file.
	ViewFileDetail
	// ViewMerge is the data-merge workflow view.
	ViewMerge
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewFiles:
		return "files"
	case ViewFileDetail:
		return "file_detail"
	case ViewMerge:
		return "merge"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// FilesLoaded carries the vault file listing.
type FilesLoaded struct {
	Files []domain.VaultFile
	Err   error
}

// FileSelected signals a file was selected for the detail view.
type FileSelected struct {
	File domain.VaultFile
}

// FileUpdated signals a file record was changed.
type FileUpdated struct {
	ID  string
	Err error
}

// FileDeleted signals a file was removed from the vault.
type FileDeleted struct {
	ID  string
	Err error
}

// MergeRequested signals the user wants to merge into a file.
type MergeRequested struct {
	File domain.VaultFile
}

// MergeOpened carries the session created for a merge target.
type MergeOpened struct {
	Session *domain.MergeSession
	Err     error
}

// MergeUpdated signals the merge session state changed.
type MergeUpdated struct {
	Session *domain.MergeSession
	Err     error
}

// MergeSaved signals the merged result was persisted to the vault.
type MergeSaved struct {
	File *domain.VaultFile
	Err  error
}

// SettingsLoaded carries the vault settings.
type SettingsLoaded struct {
	Settings *domain.VaultSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
