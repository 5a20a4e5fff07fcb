// Package spreadsheet parses workbook data files into a flat
// identifier mapping. The first sheet is read as a two-column
// positional table: column 0 is the key, column 1 the value.
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles xlsx and xls data files.
type Parser struct{}

// New creates a new spreadsheet parser.
func New() *Parser {
	return &Parser{}
}

// SupportedFormats returns the formats this parser handles.
// The legacy xls binary format is claimed so its absence of a decoder
// reports ErrMissingDependency rather than ErrUnsupportedFormat.
func (p *Parser) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatXLSX, domain.FormatXLS}
}

// Priority returns the selection priority.
func (p *Parser) Priority() int {
	return 50
}

// Parse reads the first sheet only. Rows with an empty column 0 are
// skipped; a missing column 1 yields an empty value.
func (p *Parser) Parse(_ context.Context, content []byte) (*domain.FlatMapping, error) {
	// Legacy .xls files are OLE2 containers, not zip archives. There is
	// no decoder for them in this build.
	if !bytes.HasPrefix(content, []byte("PK")) {
		return nil, domain.ErrMissingDependency
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", domain.ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrNoIdentifiersFound
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	mapping := domain.NewFlatMapping()
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}
		mapping.Set(key, value)
	}

	if mapping.Len() == 0 {
		return nil, domain.ErrNoIdentifiersFound
	}
	return mapping, nil
}
