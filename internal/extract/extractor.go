package extract

import (
	"fmt"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TableExtractor = (*Extractor)(nil)

// Extractor dispatches table and text extraction by file format.
type Extractor struct{}

// New creates a new extractor.
func New() *Extractor {
	return &Extractor{}
}

// Tables extracts every table from the content.
// Legacy binary formats (xls, doc) have no decoder in this build and
// report domain.ErrMissingDependency.
func (e *Extractor) Tables(content []byte, format domain.Format) ([]driven.Table, error) {
	switch format {
	case domain.FormatXLSX:
		return xlsxTables(content)
	case domain.FormatDOCX:
		return docxTables(content)
	case domain.FormatXLS, domain.FormatDOC:
		return nil, fmt.Errorf("%s: %w", format, domain.ErrMissingDependency)
	default:
		return nil, fmt.Errorf("%s: %w", format, domain.ErrUnsupportedFormat)
	}
}

// Text extracts the flowing text of the content.
func (e *Extractor) Text(content []byte, format domain.Format) (string, error) {
	switch format {
	case domain.FormatDOCX:
		return docxText(content)
	case domain.FormatDOC:
		return "", fmt.Errorf("%s: %w", format, domain.ErrMissingDependency)
	default:
		return string(content), nil
	}
}

// FirstSheetRows returns the raw rows of a workbook's first sheet,
// header included. Used by the positional spreadsheet parser.
func (e *Extractor) FirstSheetRows(content []byte, format domain.Format) ([][]string, error) {
	switch format {
	case domain.FormatXLSX:
		return xlsxFirstSheetRows(content)
	case domain.FormatXLS:
		return nil, fmt.Errorf("%s: %w", format, domain.ErrMissingDependency)
	default:
		return nil, fmt.Errorf("%s: %w", format, domain.ErrUnsupportedFormat)
	}
}
