package driven

import (
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

// Table is one extracted table: a header row plus data rows.
// Cells are always strings; ragged rows are permitted.
type Table struct {
	// Headers is the first row of the table.
	Headers []string

	// Rows are the remaining rows.
	Rows [][]string
}

// TableExtractor recovers tabular content from binary containers.
// Both the word-table parser and the enrichment lookup share it, so
// header-based column matching behaves identically on both paths.
type TableExtractor interface {
	// Tables extracts every table from the content. For spreadsheets
	// only the sheets' grids are returned; for word-processor
	// documents each document table becomes one Table.
	Tables(content []byte, format domain.Format) ([]Table, error)

	// Text extracts the raw flowing text of the content (paragraphs
	// for word-processor documents, the bytes as-is for plain text).
	Text(content []byte, format domain.Format) (string, error)
}
