package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge identifier data into a document",
	Long: `Substitute $%...%$ placeholders in a vault document with values
parsed from a data file.

The data file (json, txt, csv, xlsx or docx) is flattened into ordered
key/value pairs. Each key becomes a placeholder that is replaced with
its value in the target document. The merged copy is saved back to the
vault under the original name with a _merged suffix.`,
}

var mergePairsCmd = &cobra.Command{
	Use:   "pairs [target-file-id]",
	Short: "Show the identifier pairs a merge would use",
	Args:  cobra.ExactArgs(1),
	RunE:  runMergePairs,
}

var mergeRunCmd = &cobra.Command{
	Use:   "run [target-file-id]",
	Short: "Run the merge and save the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runMergeRun,
}

// mergeDataPath optionally points at a data file on disk. When unset,
// the target's most recent saved data file is used.
var mergeDataPath string

func init() {
	mergePairsCmd.Flags().StringVarP(&mergeDataPath, "data", "d", "", "Path to a data file to load")
	mergeRunCmd.Flags().StringVarP(&mergeDataPath, "data", "d", "", "Path to a data file to load")

	mergeCmd.AddCommand(mergePairsCmd)
	mergeCmd.AddCommand(mergeRunCmd)
	rootCmd.AddCommand(mergeCmd)
}

// openMergeSession opens a session for the target and loads the data
// file given via --data, if any.
func openMergeSession(ctx context.Context, targetID string) (*domain.MergeSession, error) {
	session, err := mergeService.Open(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to open merge session: %w", err)
	}

	if mergeDataPath != "" {
		content, err := os.ReadFile(mergeDataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		if err := mergeService.LoadDataContent(ctx, filepath.Base(mergeDataPath), content); err != nil {
			return nil, fmt.Errorf("failed to load data file: %w", err)
		}
		session = mergeService.Session()
	}

	return session, nil
}

func printPairs(cmd *cobra.Command, pairs []domain.IdentifierPair) {
	for i := range pairs {
		line := fmt.Sprintf("  %-30s %s", pairs[i].Key, pairs[i].Value)
		if pairs[i].Status != domain.PairStatusUnset {
			line += fmt.Sprintf("  [%s]", pairs[i].Status)
		}
		cmd.Println(line)
	}
}

func runMergePairs(cmd *cobra.Command, args []string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}
	defer mergeService.Close()

	session, err := openMergeSession(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(session.Pairs) == 0 {
		cmd.Println("No identifier pairs loaded. Use --data to supply a data file.")
		if session.Message != "" {
			cmd.Println(session.Message)
		}
		return nil
	}

	cmd.Printf("Identifiers for %s:\n\n", args[0])
	printPairs(cmd, session.Pairs)
	cmd.Printf("\nTotal: %d pairs\n", len(session.Pairs))
	return nil
}

func runMergeRun(cmd *cobra.Command, args []string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}
	defer mergeService.Close()

	ctx := context.Background()

	session, err := openMergeSession(ctx, args[0])
	if err != nil {
		return err
	}

	if len(session.Pairs) == 0 {
		return errors.New("no identifier pairs loaded; use --data to supply a data file")
	}

	if err := mergeService.Run(ctx); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	result, err := mergeService.SaveResult(ctx)
	if err != nil {
		return fmt.Errorf("failed to save merged file: %w", err)
	}

	session = mergeService.Session()
	cmd.Printf("%s\n\n", session.Message)
	printPairs(cmd, session.Pairs)
	cmd.Printf("\nSaved %s (%s)\n", result.Name, result.ID)
	return nil
}
