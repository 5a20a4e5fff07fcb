package services

import (
	"fmt"
	"strings"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCategories = "vault.categories"
	keyImportDir  = "vault.import_dir"
)

// SettingsService manages vault settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the current settings, with defaults applied.
func (s *SettingsService) Get() (*domain.VaultSettings, error) {
	settings := domain.DefaultVaultSettings()
	settings.Categories = s.configStore.GetStringSlice(keyCategories)
	settings.ImportDir = s.configStore.GetString(keyImportDir)
	return &settings, nil
}

// AddCategory appends a user-defined category label. Reserved labels
// and duplicates are rejected, ignoring case.
func (s *SettingsService) AddCategory(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("category label: %w", domain.ErrInvalidInput)
	}
	if domain.IsReservedCategory(label) {
		return fmt.Errorf("%q: %w", label, domain.ErrReservedCategory)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if settings.HasCategory(label) {
		return fmt.Errorf("category %q: %w", label, domain.ErrAlreadyExists)
	}

	return s.configStore.Set(keyCategories, append(settings.Categories, label))
}

// RemoveCategory deletes a category label.
func (s *SettingsService) RemoveCategory(label string) error {
	label = strings.TrimSpace(label)

	settings, err := s.Get()
	if err != nil {
		return err
	}

	out := make([]string, 0, len(settings.Categories))
	removed := false
	for _, c := range settings.Categories {
		if strings.EqualFold(c, label) {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if !removed {
		return fmt.Errorf("category %q: %w", label, domain.ErrNotFound)
	}

	return s.configStore.Set(keyCategories, out)
}

// SetImportDir sets the watched import directory.
func (s *SettingsService) SetImportDir(path string) error {
	return s.configStore.Set(keyImportDir, path)
}
