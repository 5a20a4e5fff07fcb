package domain

import "time"

// VaultFile represents a stored file with its attributes.
// Content is only populated on a full Get; listings strip it.
type VaultFile struct {
	// ID is the opaque identifier assigned at save time.
	ID string

	// Name is the original file name, extension included.
	Name string

	// MIMEType is the content type (e.g. "text/plain").
	MIMEType string

	// Size is the content length in bytes.
	Size int64

	// Category is the user-assigned device-type category label.
	Category string

	// IsDeviceInfo marks the file as an enrichment reference document.
	IsDeviceInfo bool

	// IsDataMergeFile marks the file as merge data attached to a target.
	IsDataMergeFile bool

	// ParentFileID links a data-merge attachment to its target file.
	ParentFileID string

	// Content is the raw bytes. Empty in listings.
	Content []byte

	// LastModified is the modification time carried from the source file.
	LastModified time.Time

	// CreatedAt is when the file was saved to the vault.
	CreatedAt time.Time

	// UpdatedAt is when the record was last changed.
	UpdatedAt time.Time
}

// Format derives the file's format from its name.
func (f *VaultFile) Format() (Format, error) {
	return FormatFromName(f.Name)
}

// FileUpdate carries a partial update for a vault file record.
// Nil fields are left unchanged.
type FileUpdate struct {
	Name            *string
	Category        *string
	IsDeviceInfo    *bool
	IsDataMergeFile *bool
	ParentFileID    *string
}
