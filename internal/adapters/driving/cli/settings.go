package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage vault settings",
	Long: `View and configure vault categories and the import directory.

Run without a subcommand to show the current settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage device-type categories",
	Long: `Add or remove user-defined device-type category labels.

The built-in categories IMAGES, DOCUMENTS and DEVICE TYPE are reserved
and cannot be redefined.`,
}

var settingsCategoryAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCategoryAdd,
}

var settingsCategoryRemoveCmd = &cobra.Command{
	Use:   "remove [label]",
	Short: "Remove a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCategoryRemove,
}

var settingsImportDirCmd = &cobra.Command{
	Use:   "import-dir [path]",
	Short: "Set the watched import directory",
	Long:  `Set the directory the watch command monitors for new files. Pass an empty string to disable the watcher.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsImportDir,
}

func init() {
	settingsCategoryCmd.AddCommand(settingsCategoryAddCmd)
	settingsCategoryCmd.AddCommand(settingsCategoryRemoveCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsCategoryCmd)
	settingsCmd.AddCommand(settingsImportDirCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Categories]")
	if len(settings.Categories) == 0 {
		cmd.Println("  (none defined)")
	}
	for _, c := range settings.Categories {
		cmd.Printf("  %s\n", c)
	}
	cmd.Println()

	cmd.Println("[Import]")
	if settings.ImportDir == "" {
		cmd.Println("  Directory: (not set)")
	} else {
		cmd.Printf("  Directory: %s\n", settings.ImportDir)
	}

	return nil
}

func runSettingsCategoryAdd(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.AddCategory(args[0]); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	cmd.Printf("Category %q added\n", args[0])
	return nil
}

func runSettingsCategoryRemove(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.RemoveCategory(args[0]); err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}

	cmd.Printf("Category %q removed\n", args[0])
	return nil
}

func runSettingsImportDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetImportDir(args[0]); err != nil {
		return fmt.Errorf("failed to set import directory: %w", err)
	}

	if args[0] == "" {
		cmd.Println("Import watching disabled")
	} else {
		cmd.Printf("Import directory set to %s\n", args[0])
	}
	return nil
}
