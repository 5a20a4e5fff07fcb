// Package cli implements the command-line interface for Stowage.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
	"github.com/stowage-labs/stowage-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	vaultService    driving.VaultService
	mergeService    driving.MergeService
	settingsService driving.SettingsService
)

var verbose bool

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "stowage",
	Short: "A personal file vault with data-merge tooling",
	Long: `Stowage keeps your files in a local encrypted-at-rest vault and
merges identifier data into document templates.

Store documents and images, group them under device-type categories,
and substitute $%...%$ placeholders in a template with values parsed
from a data file.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetVaultService injects the vault service for file commands.
func SetVaultService(s driving.VaultService) {
	vaultService = s
}

// SetMergeService injects the merge service for merge commands.
func SetMergeService(s driving.MergeService) {
	mergeService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
