package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/stowage-labs/stowage-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// fileColumns is the column list shared by every file query.
const fileColumns = `id, name, mime_type, size, category, is_device_info,
	is_data_merge_file, parent_file_id, content, last_modified, created_at, updated_at`

// Store is a unified SQLite-based storage that provides access to the
// metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stowage/data/vault.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stowage", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "vault.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// BlobStore returns a BlobStore interface backed by this store.
func (s *Store) BlobStore() driven.BlobStore {
	return &blobStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Blob Store ====================

// blobStore implements driven.BlobStore.
type blobStore struct {
	store *Store
}

var _ driven.BlobStore = (*blobStore)(nil)

// Save stores a new file and returns the record with its assigned ID.
func (s *blobStore) Save(ctx context.Context, file *domain.VaultFile) (*domain.VaultFile, error) {
	saved := *file
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	saved.CreatedAt = now
	saved.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO files (`+fileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, saved.ID, saved.Name, saved.MIMEType, saved.Size, saved.Category,
		saved.IsDeviceInfo, saved.IsDataMergeFile, nullString(saved.ParentFileID),
		saved.Content, nullTime(saved.LastModified), saved.CreatedAt, saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}
	return &saved, nil
}

// Get retrieves a file by ID, content included.
func (s *blobStore) Get(ctx context.Context, id string) (*domain.VaultFile, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+fileColumns+` FROM files WHERE id = ?
	`, id)

	file, err := scanFile(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	return file, err
}

// List returns all file records with content stripped, ordered by save
// time then ID.
func (s *blobStore) List(ctx context.Context) ([]domain.VaultFile, error) {
	return s.query(ctx, `
		SELECT `+strippedColumns()+` FROM files
		ORDER BY created_at, id
	`)
}

// ListDeviceInfo returns records flagged device-info, content included.
func (s *blobStore) ListDeviceInfo(ctx context.Context) ([]domain.VaultFile, error) {
	return s.query(ctx, `
		SELECT `+fileColumns+` FROM files
		WHERE is_device_info = 1
		ORDER BY created_at, id
	`)
}

// ListAttachments returns records attached to a parent file, content
// stripped, ordered by save time then ID.
func (s *blobStore) ListAttachments(ctx context.Context, parentFileID string) ([]domain.VaultFile, error) {
	return s.query(ctx, `
		SELECT `+strippedColumns()+` FROM files
		WHERE parent_file_id = ?
		ORDER BY created_at, id
	`, parentFileID)
}

// Update applies a partial update to a record.
func (s *blobStore) Update(ctx context.Context, id string, update domain.FileUpdate) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *update.Category)
	}
	if update.IsDeviceInfo != nil {
		sets = append(sets, "is_device_info = ?")
		args = append(args, *update.IsDeviceInfo)
	}
	if update.IsDataMergeFile != nil {
		sets = append(sets, "is_data_merge_file = ?")
		args = append(args, *update.IsDataMergeFile)
	}
	if update.ParentFileID != nil {
		sets = append(sets, "parent_file_id = ?")
		args = append(args, nullString(*update.ParentFileID))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	result, err := s.store.db.ExecContext(ctx,
		"UPDATE files SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating file: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating file: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a file and its attachments.
func (s *blobStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM files WHERE id = ? OR parent_file_id = ?", id, id)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// query runs a file select and scans all rows.
func (s *blobStore) query(ctx context.Context, q string, args ...any) ([]domain.VaultFile, error) {
	rows, err := s.store.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	files := make([]domain.VaultFile, 0)
	for rows.Next() {
		file, err := scanFile(rows.Scan)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating files: %w", err)
	}
	return files, nil
}

// strippedColumns replaces the content column with NULL so listings
// never carry blobs.
func strippedColumns() string {
	return strings.Replace(fileColumns, " content,", " NULL AS content,", 1)
}

// scanFile scans one file row. The scan argument abstracts over
// *sql.Row and *sql.Rows.
func scanFile(scan func(dest ...any) error) (*domain.VaultFile, error) {
	var file domain.VaultFile
	var parentID sql.NullString
	var lastModified sql.NullTime

	if err := scan(&file.ID, &file.Name, &file.MIMEType, &file.Size, &file.Category,
		&file.IsDeviceInfo, &file.IsDataMergeFile, &parentID, &file.Content,
		&lastModified, &file.CreatedAt, &file.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	file.ParentFileID = parentID.String
	if lastModified.Valid {
		file.LastModified = lastModified.Time
	}
	return &file, nil
}

// nullString converts empty strings to NULL for nullable columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullTime converts zero times to NULL for nullable columns.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
