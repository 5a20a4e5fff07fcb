package services

import (
	"fmt"
	"strings"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
	"github.com/stowage-labs/stowage-cli/internal/logger"
)

// Substituter replaces decorated placeholders in a target document
// with the values of the session's identifier pairs. Word-processor
// targets go through the template renderer; everything else is
// treated as decoded text.
type Substituter struct {
	renderer driven.TemplateRenderer
}

// NewSubstituter creates a new substituter.
func NewSubstituter(renderer driven.TemplateRenderer) *Substituter {
	return &Substituter{renderer: renderer}
}

// SubstituteResult is the outcome of one substitution run.
type SubstituteResult struct {
	// Output is the merged document, named with a "_merged" suffix.
	Output *domain.VaultFile

	// Pairs is the input pair set with per-pair statuses filled in.
	Pairs []domain.IdentifierPair

	// Replacements is the total occurrence count replaced. Zero for
	// word-processor targets, which report per-pair statuses only.
	Replacements int
}

// Substitute runs placeholder replacement of pairs into target.
// Failures wrap domain.ErrSubstitutionFailed and leave the pair
// statuses untouched.
func (s *Substituter) Substitute(target *domain.VaultFile, pairs []domain.IdentifierPair) (*SubstituteResult, error) {
	format, err := target.Format()
	if err == nil && format.IsWordDocument() {
		return s.substituteDocument(target, pairs, format)
	}
	return s.substituteText(target, pairs)
}

// substituteDocument hands the normalized pair map to the renderer,
// which re-applies the delimiters itself.
func (s *Substituter) substituteDocument(target *domain.VaultFile, pairs []domain.IdentifierPair, format domain.Format) (*SubstituteResult, error) {
	if format == domain.FormatDOC {
		return nil, fmt.Errorf("%s: %w", format, domain.ErrMissingDependency)
	}

	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key := domain.NormalizeKey(p.Key)
		if key == "" {
			continue
		}
		values[key] = p.Value
	}

	delims := driven.Delimiters{Start: domain.DelimiterStart, End: domain.DelimiterEnd}
	rendered, replaced, err := s.renderer.Render(target.Content, values, delims)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", target.Name, domain.ErrSubstitutionFailed)
	}

	out := make([]domain.IdentifierPair, len(pairs))
	copy(out, pairs)
	for i := range out {
		key := domain.NormalizeKey(out[i].Key)
		if key == "" {
			out[i].Status = domain.PairStatusNotFound
			continue
		}
		if replaced[key] {
			out[i].Status = domain.PairStatusReplaced
		} else {
			out[i].Status = domain.PairStatusNotFound
		}
	}

	logger.Debug("rendered %s: %d of %d placeholders present", target.Name, len(replaced), len(values))
	return &SubstituteResult{
		Output: mergedFile(target, rendered),
		Pairs:  out,
	}, nil
}

// substituteText replaces each pair's raw key literally in the
// decoded text, counting occurrences. Keys that carry the placeholder
// decoration match decorated placeholders; undecorated keys match
// bare text.
func (s *Substituter) substituteText(target *domain.VaultFile, pairs []domain.IdentifierPair) (*SubstituteResult, error) {
	text := string(target.Content)
	total := 0

	out := make([]domain.IdentifierPair, len(pairs))
	copy(out, pairs)
	for i := range out {
		key := strings.TrimSpace(out[i].Key)
		if key == "" {
			out[i].Status = domain.PairStatusNotFound
			continue
		}
		count := strings.Count(text, key)
		if count == 0 {
			out[i].Status = domain.PairStatusNotFound
			continue
		}
		text = strings.ReplaceAll(text, key, out[i].Value)
		out[i].Status = domain.PairStatusReplaced
		total += count
	}

	logger.Debug("replaced %d placeholder occurrences in %s", total, target.Name)
	return &SubstituteResult{
		Output:       mergedFile(target, []byte(text)),
		Pairs:        out,
		Replacements: total,
	}, nil
}

// mergedFile builds the unsaved output record for a run.
func mergedFile(target *domain.VaultFile, content []byte) *domain.VaultFile {
	return &domain.VaultFile{
		Name:     domain.MergedName(target.Name),
		MIMEType: target.MIMEType,
		Size:     int64(len(content)),
		Content:  content,
	}
}
