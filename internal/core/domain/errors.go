package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Parsing Errors.

	// ErrUnsupportedFormat indicates a file extension outside the
	// recognised set (json, txt, csv, xlsx, xls, docx, doc).
	// Terminal: the user must pick a different file.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMissingDependency indicates a format-specific decoding
	// capability is unavailable at runtime. Terminal for the run,
	// recoverable by retrying later.
	ErrMissingDependency = errors.New("decoder unavailable for format")

	// ErrNoIdentifiersFound indicates parsing succeeded but produced
	// zero usable pairs. Non-fatal: surfaced as an empty-state status,
	// never as a session failure.
	ErrNoIdentifiersFound = errors.New("no identifiers found")

	// Merge Errors.

	// ErrSubstitutionFailed indicates the rendering or replacement step
	// threw. Non-fatal: the session returns to a stable error state
	// with its prior pairs intact.
	ErrSubstitutionFailed = errors.New("substitution failed")

	// ErrNoTargetFile indicates a merge was triggered without an
	// active target document.
	ErrNoTargetFile = errors.New("no target file selected")

	// Settings Errors.

	// ErrReservedCategory indicates a category label collides with a
	// built-in label (IMAGES, DOCUMENTS, DEVICE TYPE).
	ErrReservedCategory = errors.New("category label is reserved")
)
