package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func loadXLSX(path string) (*Table, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer wb.Close() //nolint:errcheck

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("dataset: %s has no sheets", path)
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q of %s: %w", sheets[0], path, err)
	}

	return tableFrom(records, path)
}
