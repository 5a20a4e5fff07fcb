package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// xlsxTables reads every sheet of a workbook as one table each, in
// sheet order. Sheets without rows are skipped.
func xlsxTables(content []byte) ([]driven.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", domain.ErrInvalidInput)
	}
	defer f.Close()

	var tables []driven.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		t := driven.Table{Headers: rows[0]}
		if len(rows) > 1 {
			t.Rows = rows[1:]
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// xlsxFirstSheetRows returns the raw rows of the first sheet only,
// header row included. Used by the positional spreadsheet parser.
func xlsxFirstSheetRows(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", domain.ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
