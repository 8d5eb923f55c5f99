// Package reporting writes the combined selection to disk and renders the
// run summary.
package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/gzip"

	"github.com/ecomtop/topsel/internal/schema"
	"github.com/ecomtop/topsel/internal/selection"
)

// OutputName is the combined result file written into the output directory.
const OutputName = "top50_combined.csv"

// TotalScoreColumn is appended after the canonical fields.
const TotalScoreColumn = "total_score"

// WriteCSV writes the selection as a CSV file with a UTF-8 BOM so
// spreadsheet applications detect the encoding. When gzipped is set the
// file gets a .gz suffix and gzip framing. It returns the path written.
func WriteCSV(records []selection.ScoredRecord, outDir string, gzipped bool) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("reporting: create output dir: %w", err)
	}

	name := OutputName
	if gzipped {
		name += ".gz"
	}
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("reporting: create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var w io.Writer = f
	var zw *gzip.Writer
	if gzipped {
		zw = gzip.NewWriter(f)
		w = zw
	}

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return "", fmt.Errorf("reporting: write %s: %w", path, err)
	}

	if err := writeRows(w, records); err != nil {
		return "", fmt.Errorf("reporting: write %s: %w", path, err)
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			return "", fmt.Errorf("reporting: flush %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("reporting: close %s: %w", path, err)
	}
	return path, nil
}

func writeRows(w io.Writer, records []selection.ScoredRecord) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(schema.Fields)+1)
	for _, f := range schema.Fields {
		header = append(header, string(f))
	}
	header = append(header, TotalScoreColumn)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, r := range records {
		for i, f := range schema.Fields {
			row[i] = r.Record.Text(f)
		}
		row[len(row)-1] = strconv.FormatFloat(r.Total, 'f', 6, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
