package driven

import (
	"context"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// BlobStore persists vault files and their attributes.
// Backed by SQLite for local storage.
type BlobStore interface {
	// Save stores a new file and returns the record with its assigned ID.
	Save(ctx context.Context, file *domain.VaultFile) (*domain.VaultFile, error)

	// Get retrieves a file by ID, content included.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.VaultFile, error)

	// List returns all file records with content stripped, ordered by
	// save time then ID.
	List(ctx context.Context) ([]domain.VaultFile, error)

	// ListDeviceInfo returns records flagged as device-info reference
	// documents, content included, in the same deterministic order.
	ListDeviceInfo(ctx context.Context) ([]domain.VaultFile, error)

	// ListAttachments returns records attached to a parent file,
	// content stripped, ordered by save time then ID.
	ListAttachments(ctx context.Context, parentFileID string) ([]domain.VaultFile, error)

	// Update applies a partial update to a record.
	// Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, id string, update domain.FileUpdate) error

	// Delete removes a file and its attachments.
	Delete(ctx context.Context, id string) error
}
