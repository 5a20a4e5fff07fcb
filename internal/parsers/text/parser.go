// Package text parses delimited-text and JSON data files into a flat
// identifier mapping.
package text

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles json, txt and csv data files. It attempts a
// structured JSON parse first and falls back to line-oriented parsing.
type Parser struct{}

// New creates a new text parser.
func New() *Parser {
	return &Parser{}
}

// SupportedFormats returns the formats this parser handles.
func (p *Parser) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatJSON, domain.FormatTXT, domain.FormatCSV}
}

// Priority returns the selection priority.
func (p *Parser) Priority() int {
	return 50
}

// Parse extracts a flat mapping. The chain is JSON first, then
// delimiter split, then whitespace split; first success wins per line.
func (p *Parser) Parse(_ context.Context, content []byte) (*domain.FlatMapping, error) {
	mapping, ok := parseJSON(content)
	if !ok {
		mapping = parseLines(string(content))
	}
	if mapping.Len() == 0 {
		return nil, domain.ErrNoIdentifiersFound
	}
	return mapping, nil
}

// parseJSON handles the two structured shapes: a sequence of objects
// carrying a "key" attribute, or a keyed object whose string-valued
// entries are kept verbatim. Returns ok=false when the content is not
// valid JSON of either shape.
func parseJSON(content []byte) (*domain.FlatMapping, bool) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, false
	}

	switch trimmed[0] {
	case '[':
		return parseJSONArray(trimmed)
	case '{':
		return parseJSONObject(trimmed)
	default:
		return nil, false
	}
}

func parseJSONArray(content []byte) (*domain.FlatMapping, bool) {
	var elements []map[string]any
	if err := json.Unmarshal(content, &elements); err != nil {
		return nil, false
	}

	mapping := domain.NewFlatMapping()
	for _, el := range elements {
		key, ok := el["key"]
		if !ok {
			continue
		}
		keyStr := coerceString(key)
		if keyStr == "" {
			continue
		}
		value := ""
		if v, ok := el["value"]; ok {
			value = coerceString(v)
		}
		mapping.Set(keyStr, value)
	}
	return mapping, true
}

// parseJSONObject walks the object with a token decoder so insertion
// order follows the document, not Go's randomised map iteration.
func parseJSONObject(content []byte) (*domain.FlatMapping, bool) {
	dec := json.NewDecoder(bytes.NewReader(content))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	mapping := domain.NewFlatMapping()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}

		// Only string-valued entries are kept; everything else is dropped.
		var value string
		if err := json.Unmarshal(raw, &value); err == nil {
			mapping.Set(key, value)
		}
	}
	return mapping, true
}

// parseLines is the line-oriented fallback: split at the first
// delimiter, else on whitespace runs.
func parseLines(content string) *domain.FlatMapping {
	mapping := domain.NewFlatMapping()
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if key, value, ok := splitDelimited(line); ok {
			mapping.Set(key, value)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		mapping.Set(fields[0], strings.Join(fields[1:], " "))
	}
	return mapping
}

// splitDelimited splits at the first ':', '=' or ',' in the line.
func splitDelimited(line string) (key, value string, ok bool) {
	idx := strings.IndexAny(line, ":=,")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64:
		// JSON numbers arrive as float64; render integers without a
		// trailing ".0".
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
