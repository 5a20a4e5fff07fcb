package tui

import "errors"

// ErrMissingVaultService is returned when the vault service is not provided.
var ErrMissingVaultService = errors.New("tui: vault service is required")

// ErrMissingMergeService is returned when the merge service is not provided.
var ErrMissingMergeService = errors.New("tui: merge service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
