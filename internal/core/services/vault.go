package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
	"github.com/stowage-labs/stowage-cli/internal/logger"
)

// Ensure VaultService implements the interface.
var _ driving.VaultService = (*VaultService)(nil)

// VaultService manages files stored in the vault.
type VaultService struct {
	store driven.BlobStore
}

// NewVaultService creates a new vault service.
func NewVaultService(store driven.BlobStore) *VaultService {
	return &VaultService{store: store}
}

// AddFromPath reads a file from disk and saves it to the vault.
func (s *VaultService) AddFromPath(ctx context.Context, path, category string) (*domain.VaultFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	file := newVaultFile(filepath.Base(path), content)
	file.Category = category
	if info, err := os.Stat(path); err == nil {
		file.LastModified = info.ModTime()
	}

	saved, err := s.store.Save(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("saving %s: %w", file.Name, err)
	}
	logger.Debug("added %s to vault (%d bytes)", saved.Name, saved.Size)
	return saved, nil
}

// Add saves raw content under a name.
func (s *VaultService) Add(ctx context.Context, name string, content []byte, category string) (*domain.VaultFile, error) {
	if name == "" {
		return nil, fmt.Errorf("file name: %w", domain.ErrInvalidInput)
	}

	file := newVaultFile(name, content)
	file.Category = category

	saved, err := s.store.Save(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("saving %s: %w", name, err)
	}
	logger.Debug("added %s to vault (%d bytes)", saved.Name, saved.Size)
	return saved, nil
}

// AddDataFile saves an auxiliary merge data file attached to a target.
// The target must exist; the attachment carries no category.
func (s *VaultService) AddDataFile(ctx context.Context, parentFileID, name string, content []byte) (*domain.VaultFile, error) {
	if _, err := s.store.Get(ctx, parentFileID); err != nil {
		return nil, fmt.Errorf("target file: %w", err)
	}

	file := newVaultFile(name, content)
	file.IsDataMergeFile = true
	file.ParentFileID = parentFileID

	saved, err := s.store.Save(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("saving data file %s: %w", name, err)
	}
	logger.Debug("attached data file %s to %s", saved.Name, parentFileID)
	return saved, nil
}

// Get retrieves a file with content.
func (s *VaultService) Get(ctx context.Context, id string) (*domain.VaultFile, error) {
	return s.store.Get(ctx, id)
}

// List returns all files, content stripped.
func (s *VaultService) List(ctx context.Context) ([]domain.VaultFile, error) {
	return s.store.List(ctx)
}

// ListByCategory returns files with a given category label.
func (s *VaultService) ListByCategory(ctx context.Context, category string) ([]domain.VaultFile, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.VaultFile
	for _, f := range files {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

// Update applies a partial record update.
func (s *VaultService) Update(ctx context.Context, id string, update domain.FileUpdate) error {
	return s.store.Update(ctx, id, update)
}

// MarkDeviceInfo flags or unflags a file as enrichment reference.
func (s *VaultService) MarkDeviceInfo(ctx context.Context, id string, flag bool) error {
	return s.store.Update(ctx, id, domain.FileUpdate{IsDeviceInfo: &flag})
}

// Delete removes a file and its attachments.
func (s *VaultService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.Debug("deleted %s from vault", id)
	return nil
}

// Export writes a file's content to a path on disk. A directory path
// gets the file's own name appended.
func (s *VaultService) Export(ctx context.Context, id, path string) error {
	file, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, file.Name)
	}
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Debug("exported %s to %s", file.Name, path)
	return nil
}

// Attachments returns the data files attached to a target.
func (s *VaultService) Attachments(ctx context.Context, parentFileID string) ([]domain.VaultFile, error) {
	return s.store.ListAttachments(ctx, parentFileID)
}

// LatestDataFile returns the most recently saved data-merge attachment
// of a target, or nil if none exists. The store lists attachments
// ordered by save time then ID, so the last entry wins.
func (s *VaultService) LatestDataFile(ctx context.Context, parentFileID string) (*domain.VaultFile, error) {
	attachments, err := s.store.ListAttachments(ctx, parentFileID)
	if err != nil {
		return nil, err
	}

	var latest *domain.VaultFile
	for i := range attachments {
		if attachments[i].IsDataMergeFile {
			latest = &attachments[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	return s.store.Get(ctx, latest.ID)
}

// newVaultFile builds an unsaved record. MIME falls back to a generic
// binary type for unrecognised extensions.
func newVaultFile(name string, content []byte) *domain.VaultFile {
	mime := "application/octet-stream"
	if format, err := domain.FormatFromName(name); err == nil {
		mime = format.MIMEType()
	}
	return &domain.VaultFile{
		Name:         name,
		MIMEType:     mime,
		Size:         int64(len(content)),
		Content:      content,
		LastModified: time.Now(),
	}
}
