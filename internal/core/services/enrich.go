package services

import (
	"context"
	"strings"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
	"github.com/stowage-labs/stowage-cli/internal/extract"
	"github.com/stowage-labs/stowage-cli/internal/logger"
)

// Enricher recovers device attributes for a device ID by scanning the
// vault's device-info reference documents.
type Enricher struct {
	store     driven.BlobStore
	extractor driven.TableExtractor
}

// NewEnricher creates a new enricher.
func NewEnricher(store driven.BlobStore, extractor driven.TableExtractor) *Enricher {
	return &Enricher{store: store, extractor: extractor}
}

// Lookup scans device-info documents in store order for a row whose
// device-ID cell equals deviceID after trimming. Columns are located
// by header label, never by position. The first matching row across
// the corpus wins. A document that fails to parse is skipped; no
// match returns an empty DeviceInfo and no error.
func (e *Enricher) Lookup(ctx context.Context, deviceID string) (domain.DeviceInfo, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return domain.DeviceInfo{}, nil
	}

	files, err := e.store.ListDeviceInfo(ctx)
	if err != nil {
		return domain.DeviceInfo{}, err
	}

	for _, file := range files {
		format, err := file.Format()
		if err != nil {
			logger.Warn("device-info file %s: unrecognised format, skipping", file.Name)
			continue
		}

		tables, err := e.extractor.Tables(file.Content, format)
		if err != nil {
			logger.Warn("device-info file %s: %v, skipping", file.Name, err)
			continue
		}

		if info, ok := matchTables(tables, deviceID); ok {
			logger.Debug("device %s matched in %s", deviceID, file.Name)
			return info, nil
		}
	}

	logger.Debug("device %s not found in any device-info document", deviceID)
	return domain.DeviceInfo{}, nil
}

// Enrich looks up the device ID held by a mapping's device-ID entry
// and writes the recovered fields back under their decorated column
// labels. The mapping is returned unchanged when it has no device-ID
// entry or the lookup finds nothing.
func (e *Enricher) Enrich(ctx context.Context, mapping *domain.FlatMapping) error {
	deviceID := ""
	for _, key := range mapping.Keys() {
		if domain.NormalizeKey(key) == domain.ColumnDeviceID {
			deviceID, _ = mapping.Get(key)
			break
		}
	}
	if strings.TrimSpace(deviceID) == "" {
		return nil
	}

	info, err := e.Lookup(ctx, deviceID)
	if err != nil {
		return err
	}
	if info.IsEmpty() {
		return nil
	}

	// Only the recovered fields are written back.
	if info.Name != "" {
		mapping.Set(domain.DecorateKey(domain.ColumnDeviceName), info.Name)
	}
	if info.Model != "" {
		mapping.Set(domain.DecorateKey(domain.ColumnDeviceModel), info.Model)
	}
	if info.Manufacturer != "" {
		mapping.Set(domain.DecorateKey(domain.ColumnManufacturer), info.Manufacturer)
	}
	return nil
}

// matchTables searches each table that carries a device-ID column for
// a row whose ID cell equals deviceID.
func matchTables(tables []driven.Table, deviceID string) (domain.DeviceInfo, bool) {
	for _, table := range tables {
		idCol := extract.LocateColumn(table.Headers, domain.ColumnDeviceID)
		if idCol < 0 {
			continue
		}
		nameCol := extract.LocateColumn(table.Headers, domain.ColumnDeviceName)
		modelCol := extract.LocateColumn(table.Headers, domain.ColumnDeviceModel)
		makerCol := extract.LocateColumn(table.Headers, domain.ColumnManufacturer)

		for _, row := range table.Rows {
			if extract.Cell(row, idCol) != deviceID {
				continue
			}
			return domain.DeviceInfo{
				Name:         extract.Cell(row, nameCol),
				Model:        extract.Cell(row, modelCol),
				Manufacturer: extract.Cell(row, makerCol),
			}, true
		}
	}
	return domain.DeviceInfo{}, false
}
