package domain

import "strings"

// Reserved category labels. These are built into the vault views and
// cannot be redefined by users. Matching is case-insensitive.
var reservedCategories = []string{"IMAGES", "DOCUMENTS", "DEVICE TYPE"}

// IsReservedCategory reports whether a label collides with a built-in
// category, ignoring case and surrounding whitespace.
func IsReservedCategory(label string) bool {
	trimmed := strings.TrimSpace(label)
	for _, r := range reservedCategories {
		if strings.EqualFold(trimmed, r) {
			return true
		}
	}
	return false
}

// VaultSettings holds the user-facing vault configuration.
type VaultSettings struct {
	// Categories is the ordered list of user-defined device-type
	// category labels.
	Categories []string

	// ImportDir is the directory watched for files to import.
	// Empty disables the watcher.
	ImportDir string
}

// HasCategory reports whether a label is already defined, ignoring
// case and surrounding whitespace.
func (s VaultSettings) HasCategory(label string) bool {
	trimmed := strings.TrimSpace(label)
	for _, c := range s.Categories {
		if strings.EqualFold(c, trimmed) {
			return true
		}
	}
	return false
}

// DefaultVaultSettings returns settings with no user categories.
func DefaultVaultSettings() VaultSettings {
	return VaultSettings{}
}
