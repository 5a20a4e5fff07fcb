package driving

import (
	"context"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// VaultService manages files stored in the vault.
type VaultService interface {
	// AddFromPath reads a file from disk and saves it to the vault.
	AddFromPath(ctx context.Context, path, category string) (*domain.VaultFile, error)

	// Add saves raw content under a name.
	Add(ctx context.Context, name string, content []byte, category string) (*domain.VaultFile, error)

	// AddDataFile saves an auxiliary merge data file attached to a
	// target document.
	AddDataFile(ctx context.Context, parentFileID, name string, content []byte) (*domain.VaultFile, error)

	// Get retrieves a file with content.
	Get(ctx context.Context, id string) (*domain.VaultFile, error)

	// List returns all files, content stripped.
	List(ctx context.Context) ([]domain.VaultFile, error)

	// ListByCategory returns files with a given category label.
	ListByCategory(ctx context.Context, category string) ([]domain.VaultFile, error)

	// Update applies a partial record update.
	Update(ctx context.Context, id string, update domain.FileUpdate) error

	// MarkDeviceInfo flags or unflags a file as enrichment reference.
	MarkDeviceInfo(ctx context.Context, id string, flag bool) error

	// Delete removes a file and its attachments.
	Delete(ctx context.Context, id string) error

	// Export writes a file's content to a path on disk.
	Export(ctx context.Context, id, path string) error

	// Attachments returns the data files attached to a target.
	Attachments(ctx context.Context, parentFileID string) ([]domain.VaultFile, error)

	// LatestDataFile returns the most recently saved data-merge
	// attachment of a target, or nil if none exists. Ties are broken
	// by save time, then ID.
	LatestDataFile(ctx context.Context, parentFileID string) (*domain.VaultFile, error)
}
