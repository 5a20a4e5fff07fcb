package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is an in-memory implementation of driven.BlobStore for
// testing. Listings reproduce the SQLite adapter's ordering: save
// time, then ID.
type BlobStore struct {
	mu    sync.RWMutex
	files map[string]*domain.VaultFile
	seq   map[string]int
	next  int
}

// NewBlobStore creates a new in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		files: make(map[string]*domain.VaultFile),
		seq:   make(map[string]int),
	}
}

// Save stores a new file and returns the record with its assigned ID.
func (s *BlobStore) Save(_ context.Context, file *domain.VaultFile) (*domain.VaultFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *file
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	now := time.Now()
	saved.CreatedAt = now
	saved.UpdatedAt = now
	saved.Content = append([]byte(nil), file.Content...)

	s.files[saved.ID] = &saved
	s.seq[saved.ID] = s.next
	s.next++
	out := saved
	return &out, nil
}

// Get retrieves a file by ID, content included.
func (s *BlobStore) Get(_ context.Context, id string) (*domain.VaultFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	out := *file
	out.Content = append([]byte(nil), file.Content...)
	return &out, nil
}

// List returns all file records with content stripped.
func (s *BlobStore) List(_ context.Context) ([]domain.VaultFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*domain.VaultFile) bool { return true }, false), nil
}

// ListDeviceInfo returns records flagged device-info, content included.
func (s *BlobStore) ListDeviceInfo(_ context.Context) ([]domain.VaultFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(f *domain.VaultFile) bool { return f.IsDeviceInfo }, true), nil
}

// ListAttachments returns records attached to a parent file, content
// stripped.
func (s *BlobStore) ListAttachments(_ context.Context, parentFileID string) ([]domain.VaultFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(f *domain.VaultFile) bool { return f.ParentFileID == parentFileID }, false), nil
}

// Update applies a partial update to a record.
func (s *BlobStore) Update(_ context.Context, id string, update domain.FileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[id]
	if !ok {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	if update.Name != nil {
		file.Name = *update.Name
	}
	if update.Category != nil {
		file.Category = *update.Category
	}
	if update.IsDeviceInfo != nil {
		file.IsDeviceInfo = *update.IsDeviceInfo
	}
	if update.IsDataMergeFile != nil {
		file.IsDataMergeFile = *update.IsDataMergeFile
	}
	if update.ParentFileID != nil {
		file.ParentFileID = *update.ParentFileID
	}
	file.UpdatedAt = time.Now()
	return nil
}

// Delete removes a file and its attachments.
func (s *BlobStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	delete(s.files, id)
	delete(s.seq, id)
	for fid, f := range s.files {
		if f.ParentFileID == id {
			delete(s.files, fid)
			delete(s.seq, fid)
		}
	}
	return nil
}

// collect filters and orders records. Callers hold the lock.
func (s *BlobStore) collect(keep func(*domain.VaultFile) bool, withContent bool) []domain.VaultFile {
	out := make([]domain.VaultFile, 0)
	for _, f := range s.files {
		if !keep(f) {
			continue
		}
		record := *f
		if withContent {
			record.Content = append([]byte(nil), f.Content...)
		} else {
			record.Content = nil
		}
		out = append(out, record)
	}
	// Save time is tracked as a sequence so equal timestamps cannot
	// reorder a listing.
	sort.Slice(out, func(i, j int) bool {
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out
}
