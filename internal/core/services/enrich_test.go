package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driven/storage/memory"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/extract"
)

func createWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func deviceInfoStore(t *testing.T, workbooks ...[]byte) *memory.BlobStore {
	t.Helper()

	store := memory.NewBlobStore()
	for _, content := range workbooks {
		_, err := store.Save(context.Background(), &domain.VaultFile{
			Name:         "devices.xlsx",
			Content:      content,
			IsDeviceInfo: true,
		})
		require.NoError(t, err)
	}
	return store
}

func TestEnricher_Lookup_MatchByHeaderLabel(t *testing.T) {
	// The ID column is not the first column; location is by header
	// label, never position.
	content := createWorkbook(t, [][]any{
		{"备注", domain.ColumnDeviceID, domain.ColumnDeviceName, domain.ColumnDeviceModel, domain.ColumnManufacturer},
		{"n/a", "D100", "Pressure Sensor", "PS-9", "ACME"},
		{"n/a", "D200", "Flow Meter", "FM-2", "Globex"},
	})
	e := NewEnricher(deviceInfoStore(t, content), extract.New())

	info, err := e.Lookup(context.Background(), "D200")
	require.NoError(t, err)
	assert.Equal(t, "Flow Meter", info.Name)
	assert.Equal(t, "FM-2", info.Model)
	assert.Equal(t, "Globex", info.Manufacturer)
}

func TestEnricher_Lookup_TrimmedExactEquality(t *testing.T) {
	content := createWorkbook(t, [][]any{
		{domain.ColumnDeviceID, domain.ColumnDeviceName},
		{"  D100  ", "Sensor"},
		{"D1000", "Wrong"},
	})
	e := NewEnricher(deviceInfoStore(t, content), extract.New())

	info, err := e.Lookup(context.Background(), "D100")
	require.NoError(t, err)
	assert.Equal(t, "Sensor", info.Name)
}

func TestEnricher_Lookup_FirstMatchWins(t *testing.T) {
	first := createWorkbook(t, [][]any{
		{domain.ColumnDeviceID, domain.ColumnDeviceName},
		{"D100", "From First"},
	})
	second := createWorkbook(t, [][]any{
		{domain.ColumnDeviceID, domain.ColumnDeviceName},
		{"D100", "From Second"},
	})
	e := NewEnricher(deviceInfoStore(t, first, second), extract.New())

	info, err := e.Lookup(context.Background(), "D100")
	require.NoError(t, err)
	assert.Equal(t, "From First", info.Name)
}

func TestEnricher_Lookup_NoMatch(t *testing.T) {
	content := createWorkbook(t, [][]any{
		{domain.ColumnDeviceID, domain.ColumnDeviceName},
		{"D100", "Sensor"},
	})
	e := NewEnricher(deviceInfoStore(t, content), extract.New())

	info, err := e.Lookup(context.Background(), "absent")
	require.NoError(t, err)
	assert.True(t, info.IsEmpty())
}

func TestEnricher_Lookup_SkipsUnparsableFiles(t *testing.T) {
	store := memory.NewBlobStore()
	_, err := store.Save(context.Background(), &domain.VaultFile{
		Name:         "broken.xlsx",
		Content:      []byte("not a workbook"),
		IsDeviceInfo: true,
	})
	require.NoError(t, err)
	good := createWorkbook(t, [][]any{
		{domain.ColumnDeviceID, domain.ColumnDeviceName},
		{"D100", "Sensor"},
	})
	_, err = store.Save(context.Background(), &domain.VaultFile{
		Name:         "devices.xlsx",
		Content:      good,
		IsDeviceInfo: true,
	})
	require.NoError(t, err)

	e := NewEnricher(store, extract.New())
	info, err := e.Lookup(context.Background(), "D100")
	require.NoError(t, err)
	assert.Equal(t, "Sensor", info.Name)
}

func TestEnricher_Enrich_WritesDecoratedCompanionKeys(t *testing.T) {
	content := createWorkbook(t, [][]any{
		{domain.ColumnDeviceID, domain.ColumnDeviceName, domain.ColumnDeviceModel},
		{"D100", "Sensor", "PS-9"},
	})
	e := NewEnricher(deviceInfoStore(t, content), extract.New())

	mapping := domain.NewFlatMapping()
	mapping.Set("$%设备编号%$", "D100")

	require.NoError(t, e.Enrich(context.Background(), mapping))

	name, ok := mapping.Get(domain.DecorateKey(domain.ColumnDeviceName))
	assert.True(t, ok)
	assert.Equal(t, "Sensor", name)

	model, ok := mapping.Get(domain.DecorateKey(domain.ColumnDeviceModel))
	assert.True(t, ok)
	assert.Equal(t, "PS-9", model)

	// Manufacturer was absent from the sheet; only found fields are
	// written back.
	_, ok = mapping.Get(domain.DecorateKey(domain.ColumnManufacturer))
	assert.False(t, ok)
}

func TestEnricher_Enrich_NoDeviceIDKey(t *testing.T) {
	e := NewEnricher(memory.NewBlobStore(), extract.New())

	mapping := domain.NewFlatMapping()
	mapping.Set("Host", "alpha")

	require.NoError(t, e.Enrich(context.Background(), mapping))
	assert.Equal(t, []string{"Host"}, mapping.Keys())
}
