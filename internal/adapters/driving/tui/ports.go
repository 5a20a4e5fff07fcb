// Package tui provides an interactive terminal user interface for stowage.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Vault manages files stored in the vault.
	Vault driving.VaultService

	// Merge orchestrates the data-merge workflow.
	Merge driving.MergeService

	// Settings manages vault settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	vault driving.VaultService,
	merge driving.MergeService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Vault:    vault,
		Merge:    merge,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Vault == nil {
		return ErrMissingVaultService
	}
	if p.Merge == nil {
		return ErrMissingMergeService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
