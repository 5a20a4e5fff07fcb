package driving

import "github.com/stowage-labs/stowage-cli/internal/core/domain"

// SettingsService manages vault settings.
type SettingsService interface {
	// Get returns the current settings, with defaults applied.
	Get() (*domain.VaultSettings, error)

	// AddCategory appends a user-defined category label.
	// Reserved labels (IMAGES, DOCUMENTS, DEVICE TYPE) are rejected
	// case-insensitively, as are duplicates.
	AddCategory(label string) error

	// RemoveCategory deletes a category label.
	RemoveCategory(label string) error

	// SetImportDir sets the watched import directory.
	SetImportDir(path string) error
}
