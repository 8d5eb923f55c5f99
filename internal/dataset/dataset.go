// Package dataset loads tabular product exports (CSV, gzipped CSV, XLSX)
// into in-memory tables of string cells. Column order is preserved because
// downstream field resolution tie-breaks on it.
package dataset

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Row maps column name to cell text for one data row.
type Row map[string]string

// Table is one loaded file: ordered header plus rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// Load reads a tabular file, dispatching on its extension.
func Load(path string) (*Table, error) {
	switch {
	case strings.HasSuffix(path, ".csv.gz"):
		return loadCSVGzip(path)
	case strings.EqualFold(filepath.Ext(path), ".csv"):
		return loadCSV(path)
	case strings.EqualFold(filepath.Ext(path), ".xlsx"):
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("dataset: unsupported file type: %s", path)
	}
}

// Glob lists the loadable files directly under dir, sorted by name so runs
// are deterministic.
func Glob(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.csv", "*.csv.gz", "*.xlsx"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("dataset: glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// tableFrom builds a Table from raw records, treating the first record as
// the header. Ragged rows are padded or truncated to the header width;
// duplicate column names keep the first occurrence and drop the rest.
func tableFrom(records [][]string, path string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: %s is empty (no header row)", path)
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	keep := make([]int, 0, len(header))
	columns := make([]string, 0, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" || seen[col] {
			continue
		}
		seen[col] = true
		keep = append(keep, i)
		columns = append(columns, col)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for n, i := range keep {
			if i < len(record) {
				row[columns[n]] = record[i]
			} else {
				row[columns[n]] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
