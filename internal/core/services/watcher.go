package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
	"github.com/stowage-labs/stowage-cli/internal/logger"
)

// settleDelay gives the writing process time to finish before the
// dropped file is read.
const settleDelay = 200 * time.Millisecond

// ImportWatcher imports files dropped into the configured import
// directory.
type ImportWatcher struct {
	vault    driving.VaultService
	settings driving.SettingsService
}

// NewImportWatcher creates a new import watcher.
func NewImportWatcher(vault driving.VaultService, settings driving.SettingsService) *ImportWatcher {
	return &ImportWatcher{vault: vault, settings: settings}
}

// Run watches the import directory until the context is cancelled.
// Returns an error when no import directory is configured or the
// watch cannot be established.
func (w *ImportWatcher) Run(ctx context.Context) error {
	settings, err := w.settings.Get()
	if err != nil {
		return err
	}
	dir := settings.ImportDir
	if dir == "" {
		return fmt.Errorf("import directory not configured: %w", domain.ErrInvalidInput)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("import directory %s: %w", dir, domain.ErrInvalidInput)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching %s for files to import", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.importFile(ctx, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// importFile adds one dropped file to the vault. Directories, hidden
// files and unreadable paths are skipped with a log line.
func (w *ImportWatcher) importFile(ctx context.Context, path string) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return
	}

	time.Sleep(settleDelay)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	file, err := w.vault.AddFromPath(ctx, path, "")
	if err != nil {
		logger.Warn("importing %s: %v", name, err)
		return
	}
	logger.Info("imported %s (%d bytes)", file.Name, file.Size)
}
