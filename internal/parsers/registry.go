// Package parsers holds the data-file parsers and the registry that
// dispatches a file format to the right one.
package parsers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ParserRegistry = (*Registry)(nil)

// Registry maps file formats to parsers. When several parsers claim a
// format, the one with the highest priority wins.
type Registry struct {
	mu      sync.RWMutex
	byFmt   map[domain.Format]driven.Parser
	parsers []driven.Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{byFmt: make(map[domain.Format]driven.Parser)}
}

// Register adds a parser for all its supported formats. A parser with
// a higher priority displaces an earlier registration for the same
// format.
func (r *Registry) Register(parser driven.Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers = append(r.parsers, parser)
	for _, format := range parser.SupportedFormats() {
		existing, ok := r.byFmt[format]
		if ok && existing.Priority() >= parser.Priority() {
			continue
		}
		r.byFmt[format] = parser
	}
}

// Parse dispatches the content to the parser registered for the format.
func (r *Registry) Parse(ctx context.Context, format domain.Format, content []byte) (*domain.FlatMapping, error) {
	r.mu.RLock()
	parser, ok := r.byFmt[format]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no parser for %s: %w", format, domain.ErrUnsupportedFormat)
	}
	return parser.Parse(ctx, content)
}

// SupportedFormats returns every format some parser claims, sorted for
// stable output.
func (r *Registry) SupportedFormats() []domain.Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]domain.Format, 0, len(r.byFmt))
	for format := range r.byFmt {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
