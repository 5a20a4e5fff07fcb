// Command stowage is a personal file vault with data-merge tooling.
package main

import (
	"fmt"
	"os"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driven/config/file"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driven/storage/sqlite"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/cli"
	"github.com/stowage-labs/stowage-cli/internal/core/services"
	"github.com/stowage-labs/stowage-cli/internal/extract"
	"github.com/stowage-labs/stowage-cli/internal/parsers"
	"github.com/stowage-labs/stowage-cli/internal/parsers/spreadsheet"
	"github.com/stowage-labs/stowage-cli/internal/parsers/text"
	"github.com/stowage-labs/stowage-cli/internal/parsers/wordtable"
	"github.com/stowage-labs/stowage-cli/internal/render"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Empty dirs default to locations under the user's home directory.
	store, err := sqlite.NewStore(os.Getenv("STOWAGE_DATA_DIR"))
	if err != nil {
		return fmt.Errorf("opening vault store: %w", err)
	}
	defer store.Close()

	configStore, err := file.NewConfigStore(os.Getenv("STOWAGE_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	extractor := extract.New()

	registry := parsers.NewRegistry()
	registry.Register(text.New())
	registry.Register(spreadsheet.New())
	registry.Register(wordtable.New(extractor))

	vault := services.NewVaultService(store.BlobStore())
	settings := services.NewSettingsService(configStore)
	merge := services.NewMergeService(
		vault,
		registry,
		services.NewEnricher(store.BlobStore(), extractor),
		services.NewSubstituter(render.NewDocx()),
	)

	cli.SetVersion(version)
	cli.SetVaultService(vault)
	cli.SetMergeService(merge)
	cli.SetSettingsService(settings)
	cli.SetImportRunner(services.NewImportWatcher(vault, settings))
	cli.SetTUIConfig(&cli.TUIConfig{
		VaultService:    vault,
		MergeService:    merge,
		SettingsService: settings,
	})

	return cli.Execute()
}
