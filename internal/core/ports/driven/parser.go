package driven

import (
	"context"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// Parser extracts identifier pairs from one class of file formats.
// Each parser handles specific formats (e.g. text/JSON, spreadsheet).
type Parser interface {
	// SupportedFormats returns the formats this parser handles.
	SupportedFormats() []domain.Format

	// Priority returns the selection priority (higher = preferred)
	// when two parsers claim the same format.
	Priority() int

	// Parse extracts a flat mapping from the file content.
	// Returns domain.ErrNoIdentifiersFound when the content parses
	// but yields zero pairs, and domain.ErrMissingDependency when the
	// format's decoder is unavailable.
	Parse(ctx context.Context, content []byte) (*domain.FlatMapping, error)
}

// ParserRegistry selects the appropriate parser for a file format.
type ParserRegistry interface {
	// Parse dispatches to the highest-priority parser registered for
	// the format. Returns domain.ErrUnsupportedFormat for formats no
	// parser claims.
	Parse(ctx context.Context, format domain.Format, content []byte) (*domain.FlatMapping, error)

	// Register adds a parser to the registry.
	Register(parser Parser)

	// SupportedFormats returns all formats that can be parsed.
	SupportedFormats() []domain.Format
}
