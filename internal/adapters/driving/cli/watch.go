package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// ImportRunner watches the configured import directory and saves
// dropped files to the vault until the context is cancelled.
type ImportRunner interface {
	Run(ctx context.Context) error
}

// importRunner is injected by the composition root.
var importRunner ImportRunner

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the import directory for new files",
	Long: `Watch the configured import directory and add dropped files to the
vault automatically. Runs until interrupted.

Set the directory first with "stowage settings import-dir".`,
	RunE: runWatch,
}

// SetImportRunner injects the import watcher for the watch command.
func SetImportRunner(r ImportRunner) {
	importRunner = r
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if importRunner == nil {
		return errors.New("import watcher not configured")
	}

	cmd.Println("Watching for files to import. Press Ctrl+C to stop.")

	if err := importRunner.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
