package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage vault files",
	Long:  `Add, list, export, update, or delete files stored in the vault.`,
}

var fileAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Add a file to the vault",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileAdd,
}

var fileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vault files",
	RunE:  runFileList,
}

var fileGetCmd = &cobra.Command{
	Use:   "get [file-id]",
	Short: "Show file info",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileGet,
}

var fileExportCmd = &cobra.Command{
	Use:   "export [file-id] [path]",
	Short: "Write a file's content to disk",
	Args:  cobra.ExactArgs(2),
	RunE:  runFileExport,
}

var fileCategoryCmd = &cobra.Command{
	Use:   "category [file-id] [label]",
	Short: "Assign a category to a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runFileCategory,
}

var fileDeviceInfoCmd = &cobra.Command{
	Use:   "device-info [file-id]",
	Short: "Mark a file as a device info reference",
	Long:  `Marks a spreadsheet as a device info reference so identifier data can be enriched from it during merges. Use --off to unmark.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFileDeviceInfo,
}

var fileAttachmentsCmd = &cobra.Command{
	Use:   "attachments [file-id]",
	Short: "List data files attached to a target",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileAttachments,
}

var fileDeleteCmd = &cobra.Command{
	Use:   "delete [file-id]",
	Short: "Delete a file and its attachments",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileDelete,
}

// Flags for the file commands.
var (
	fileAddCategory  string
	fileListCategory string
	deviceInfoOff    bool
)

func init() {
	fileAddCmd.Flags().StringVarP(&fileAddCategory, "category", "c", "", "Category label to assign")
	fileListCmd.Flags().StringVarP(&fileListCategory, "category", "c", "", "Only list files with this category")
	fileDeviceInfoCmd.Flags().BoolVar(&deviceInfoOff, "off", false, "Unmark instead of mark")

	fileCmd.AddCommand(fileAddCmd)
	fileCmd.AddCommand(fileListCmd)
	fileCmd.AddCommand(fileGetCmd)
	fileCmd.AddCommand(fileExportCmd)
	fileCmd.AddCommand(fileCategoryCmd)
	fileCmd.AddCommand(fileDeviceInfoCmd)
	fileCmd.AddCommand(fileAttachmentsCmd)
	fileCmd.AddCommand(fileDeleteCmd)
	rootCmd.AddCommand(fileCmd)
}

func runFileAdd(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	file, err := vaultService.AddFromPath(context.Background(), args[0], fileAddCategory)
	if err != nil {
		return fmt.Errorf("failed to add file: %w", err)
	}

	cmd.Printf("Added %s (%s, %d bytes)\n", file.Name, file.ID, file.Size)
	return nil
}

func runFileList(cmd *cobra.Command, _ []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	ctx := context.Background()

	var (
		files []domain.VaultFile
		err   error
	)
	if fileListCategory != "" {
		files, err = vaultService.ListByCategory(ctx, fileListCategory)
	} else {
		files, err = vaultService.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) == 0 {
		cmd.Println("No files in the vault.")
		return nil
	}

	for i := range files {
		cmd.Printf("  %s\n", files[i].ID)
		cmd.Printf("    Name: %s\n", files[i].Name)
		if files[i].Category != "" {
			cmd.Printf("    Category: %s\n", files[i].Category)
		}
		if files[i].IsDeviceInfo {
			cmd.Println("    Device info: yes")
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d files\n", len(files))
	return nil
}

func runFileGet(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	file, err := vaultService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	cmd.Printf("File: %s\n\n", file.ID)
	cmd.Printf("  Name:      %s\n", file.Name)
	cmd.Printf("  Type:      %s\n", file.MIMEType)
	cmd.Printf("  Size:      %d bytes\n", file.Size)
	if file.Category != "" {
		cmd.Printf("  Category:  %s\n", file.Category)
	}
	if file.IsDeviceInfo {
		cmd.Println("  Device info reference")
	}
	if file.IsDataMergeFile {
		cmd.Printf("  Data file for: %s\n", file.ParentFileID)
	}
	cmd.Printf("  Saved:     %s\n", file.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}

func runFileExport(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	if err := vaultService.Export(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to export file: %w", err)
	}

	cmd.Printf("Exported %s to %s\n", args[0], args[1])
	return nil
}

func runFileCategory(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	category := args[1]
	update := domain.FileUpdate{Category: &category}
	if err := vaultService.Update(context.Background(), args[0], update); err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}

	cmd.Printf("File %s assigned to category %q\n", args[0], category)
	return nil
}

func runFileDeviceInfo(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	flag := !deviceInfoOff
	if err := vaultService.MarkDeviceInfo(context.Background(), args[0], flag); err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}

	if flag {
		cmd.Printf("File %s marked as device info\n", args[0])
	} else {
		cmd.Printf("File %s unmarked as device info\n", args[0])
	}
	return nil
}

func runFileAttachments(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	files, err := vaultService.Attachments(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	if len(files) == 0 {
		cmd.Printf("No data files attached to %s\n", args[0])
		return nil
	}

	cmd.Printf("Data files for %s:\n\n", args[0])
	for i := range files {
		cmd.Printf("  %s  %s\n", files[i].ID, files[i].Name)
	}

	return nil
}

func runFileDelete(cmd *cobra.Command, args []string) error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}

	if err := vaultService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
