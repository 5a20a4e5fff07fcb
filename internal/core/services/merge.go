package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
	"github.com/stowage-labs/stowage-cli/internal/logger"
)

// Ensure MergeService implements the interface.
var _ driving.MergeService = (*MergeService)(nil)

// MergeService orchestrates the data-merge workflow for one target
// document at a time.
type MergeService struct {
	vault       driving.VaultService
	registry    driven.ParserRegistry
	enricher    *Enricher
	substituter *Substituter

	session *domain.MergeSession
}

// NewMergeService creates a new merge service.
func NewMergeService(
	vault driving.VaultService,
	registry driven.ParserRegistry,
	enricher *Enricher,
	substituter *Substituter,
) *MergeService {
	return &MergeService{
		vault:       vault,
		registry:    registry,
		enricher:    enricher,
		substituter: substituter,
	}
}

// Open starts a session for a target file. The most recently saved
// data-merge attachment, if any, is loaded and parsed.
func (s *MergeService) Open(ctx context.Context, targetFileID string) (*domain.MergeSession, error) {
	target, err := s.vault.Get(ctx, targetFileID)
	if err != nil {
		return nil, fmt.Errorf("target file: %w", err)
	}

	s.session = domain.NewMergeSession(target.ID)
	logger.Debug("merge session opened for %s", target.Name)

	data, err := s.vault.LatestDataFile(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("loading saved data file: %w", err)
	}
	if data == nil {
		return s.session, nil
	}

	if err := s.LoadDataFile(ctx, data.ID); err != nil {
		// A stale attachment must not block opening the session.
		logger.Warn("saved data file %s: %v", data.Name, err)
		s.session.Reset()
		s.session.Message = fmt.Sprintf("saved data file could not be loaded: %v", err)
	}
	return s.session, nil
}

// Session returns the active session, or nil if none is open.
func (s *MergeService) Session() *domain.MergeSession {
	return s.session
}

// LoadDataFile parses a stored data file into the session's pairs.
// Any previously loaded pairs and result are replaced. Zero parsed
// pairs is surfaced as a status message, not a failure.
func (s *MergeService) LoadDataFile(ctx context.Context, dataFileID string) error {
	if s.session == nil {
		return domain.ErrNoTargetFile
	}

	data, err := s.vault.Get(ctx, dataFileID)
	if err != nil {
		return fmt.Errorf("data file: %w", err)
	}
	format, err := data.Format()
	if err != nil {
		return fmt.Errorf("data file %s: %w", data.Name, err)
	}

	s.session.Begin(fmt.Sprintf("parsing %s", data.Name))

	mapping, err := s.registry.Parse(ctx, format, data.Content)
	if errors.Is(err, domain.ErrNoIdentifiersFound) {
		s.session.Reset()
		s.session.DataFileID = data.ID
		s.session.Message = "no identifiers found in data file"
		return nil
	}
	if err != nil {
		s.session.Fail("data file could not be parsed")
		return fmt.Errorf("parsing %s: %w", data.Name, err)
	}

	if err := s.enricher.Enrich(ctx, mapping); err != nil {
		// Enrichment is best-effort; the parsed pairs stand on their own.
		logger.Warn("enrichment: %v", err)
	}

	pairs := mapping.Pairs()
	for i := range pairs {
		pairs[i].ID = uuid.New().String()
	}

	s.session.Reset()
	s.session.LoadPairs(data.ID, pairs)
	s.session.Message = fmt.Sprintf("%d identifiers loaded from %s", len(pairs), data.Name)
	logger.Debug("loaded %d pairs from %s", len(pairs), data.Name)
	return nil
}

// LoadDataContent saves new data content as an attachment of the
// target, then loads it.
func (s *MergeService) LoadDataContent(ctx context.Context, name string, content []byte) error {
	if s.session == nil {
		return domain.ErrNoTargetFile
	}

	saved, err := s.vault.AddDataFile(ctx, s.session.TargetFileID, name, content)
	if err != nil {
		return err
	}
	return s.LoadDataFile(ctx, saved.ID)
}

// EditPair updates one pair's key and value.
func (s *MergeService) EditPair(id, key, value string) error {
	if s.session == nil {
		return domain.ErrNoTargetFile
	}
	if !s.session.EditPair(id, key, value) {
		return fmt.Errorf("pair %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddPair appends a blank pair and returns its handle.
func (s *MergeService) AddPair() string {
	if s.session == nil {
		return ""
	}
	id := uuid.New().String()
	s.session.AddPair(id)
	return id
}

// RemovePair deletes a pair.
func (s *MergeService) RemovePair(id string) error {
	if s.session == nil {
		return domain.ErrNoTargetFile
	}
	if !s.session.RemovePair(id) {
		return fmt.Errorf("pair %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Run performs placeholder substitution into the target document. On
// failure the session enters the error state with its pairs intact.
func (s *MergeService) Run(ctx context.Context) error {
	if s.session == nil {
		return domain.ErrNoTargetFile
	}

	target, err := s.vault.Get(ctx, s.session.TargetFileID)
	if err != nil {
		s.session.Fail("target file could not be read")
		return fmt.Errorf("target file: %w", err)
	}

	s.session.Begin(fmt.Sprintf("merging into %s", target.Name))

	result, err := s.substituter.Substitute(target, s.session.Pairs)
	if err != nil {
		s.session.Fail("merge failed")
		return err
	}

	replaced := 0
	for _, p := range result.Pairs {
		if p.Status == domain.PairStatusReplaced {
			replaced++
		}
	}
	message := fmt.Sprintf("merged %s: %d of %d identifiers replaced", target.Name, replaced, len(result.Pairs))
	s.session.Succeed(result.Output, result.Pairs, result.Replacements, message)
	logger.Debug("%s", message)
	return nil
}

// SaveResult persists the session's result document to the vault.
func (s *MergeService) SaveResult(ctx context.Context) (*domain.VaultFile, error) {
	if s.session == nil {
		return nil, domain.ErrNoTargetFile
	}
	result := s.session.Result
	if result == nil {
		return nil, fmt.Errorf("no merge result: %w", domain.ErrNotFound)
	}

	target, err := s.vault.Get(ctx, s.session.TargetFileID)
	if err != nil {
		return nil, fmt.Errorf("target file: %w", err)
	}

	saved, err := s.vault.Add(ctx, result.Name, result.Content, target.Category)
	if err != nil {
		return nil, err
	}
	logger.Debug("saved merge result %s", saved.Name)
	return saved, nil
}

// Discard drops the result document, keeping the pairs.
func (s *MergeService) Discard() {
	if s.session == nil {
		return
	}
	s.session.Discard()
}

// Close ends the session.
func (s *MergeService) Close() {
	s.session = nil
}
