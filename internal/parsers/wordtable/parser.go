// Package wordtable parses word-processor data files into a flat
// identifier mapping. Tables are harvested first; a document without
// usable tables falls back to paragraph-text parsing.
package wordtable

import (
	"bytes"
	"context"
	"strings"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles docx and doc data files through a table extractor.
type Parser struct {
	extractor driven.TableExtractor
}

// New creates a new word-table parser.
func New(extractor driven.TableExtractor) *Parser {
	return &Parser{extractor: extractor}
}

// SupportedFormats returns the formats this parser handles.
func (p *Parser) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatDOCX, domain.FormatDOC}
}

// Priority returns the selection priority.
func (p *Parser) Priority() int {
	return 50
}

// Parse harvests key/value pairs from every table with at least two
// rows: column 0 of each non-header row is the key, column 1 the
// value. When no table yields a pair, paragraph text is parsed with
// the delimiter split, then a tab / multi-space split.
func (p *Parser) Parse(ctx context.Context, content []byte) (*domain.FlatMapping, error) {
	// Legacy .doc files are OLE2 containers, not zip archives. There is
	// no decoder for them in this build.
	if !bytes.HasPrefix(content, []byte("PK")) {
		return nil, domain.ErrMissingDependency
	}

	tables, err := p.extractor.Tables(content, domain.FormatDOCX)
	if err != nil {
		return nil, err
	}

	mapping := domain.NewFlatMapping()
	for _, table := range tables {
		if len(table.Rows) == 0 {
			// A single-row table has no data rows to harvest.
			continue
		}
		for _, row := range table.Rows {
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
	}

	if mapping.Len() > 0 {
		return mapping, nil
	}

	text, err := p.extractor.Text(content, domain.FormatDOCX)
	if err != nil {
		return nil, err
	}
	mapping = parseParagraphs(text)
	if mapping.Len() == 0 {
		return nil, domain.ErrNoIdentifiersFound
	}
	return mapping, nil
}

// parseParagraphs applies the delimiter split, then a tab or 2+ space
// split, to each non-blank line. A line without either becomes a
// key-only pair.
func parseParagraphs(text string) *domain.FlatMapping {
	mapping := domain.NewFlatMapping()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if idx := strings.IndexAny(line, ":="); idx >= 0 {
			key := strings.TrimSpace(line[:idx])
			if key != "" {
				mapping.Set(key, strings.TrimSpace(line[idx+1:]))
			}
			continue
		}

		key, value := splitOnGap(trimmed)
		mapping.Set(key, value)
	}
	return mapping
}

// splitOnGap splits at the first tab or run of two or more spaces.
func splitOnGap(line string) (key, value string) {
	if idx := strings.IndexByte(line, '\t'); idx >= 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
	}
	if idx := strings.Index(line, "  "); idx >= 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx:])
	}
	return line, ""
}
