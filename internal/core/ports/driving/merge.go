package driving

import (
	"context"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// MergeService orchestrates the data-merge workflow for one target
// document: load data file, edit pairs, substitute, report.
type MergeService interface {
	// Open starts a session for a target file. If the target has a
	// saved data-merge attachment, the most recent one is auto-loaded
	// and its pairs parsed.
	Open(ctx context.Context, targetFileID string) (*domain.MergeSession, error)

	// Session returns the active session, or nil if none is open.
	Session() *domain.MergeSession

	// LoadDataFile parses a stored data file into the session's pairs,
	// resetting any previous pairs and result.
	LoadDataFile(ctx context.Context, dataFileID string) error

	// LoadDataContent saves new data content as an attachment of the
	// target, then loads it.
	LoadDataContent(ctx context.Context, name string, content []byte) error

	// EditPair updates one pair's key and value.
	EditPair(id, key, value string) error

	// AddPair appends a blank pair and returns its handle.
	AddPair() string

	// RemovePair deletes a pair.
	RemovePair(id string) error

	// Run performs placeholder substitution into the target document.
	// On success the session holds the result file and per-pair
	// statuses; on failure the session enters the error state with its
	// pairs untouched.
	Run(ctx context.Context) error

	// SaveResult persists the session's result document to the vault
	// and returns its record.
	SaveResult(ctx context.Context) (*domain.VaultFile, error)

	// Discard drops the result document, keeping the pairs.
	Discard()

	// Close ends the session.
	Close()
}
