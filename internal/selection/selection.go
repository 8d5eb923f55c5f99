// Package selection folds weighted sub-scores into totals, collapses
// duplicate listings, and picks the top results.
package selection

import (
	"sort"

	"github.com/ecomtop/topsel/internal/schema"
	"github.com/ecomtop/topsel/internal/weights"
)

// DefaultTop is how many listings the combined output keeps.
const DefaultTop = 50

// ScoredRecord is a canonical record with its per-dimension sub-scores and
// weighted total. The total is not clipped: the commission dimension can
// push it past the nominal range.
type ScoredRecord struct {
	Record schema.Record
	Scores map[weights.Dimension]float64
	Total  float64
}

// Totals pairs each record with its sub-scores and computes the weighted
// total over all dimensions. scores must be aligned with records.
func Totals(records []schema.Record, scores []map[weights.Dimension]float64, vec weights.Vector) []ScoredRecord {
	out := make([]ScoredRecord, len(records))
	for i, rec := range records {
		total := 0.0
		for _, d := range weights.Dimensions {
			total += scores[i][d] * vec[d]
		}
		out[i] = ScoredRecord{Record: rec, Scores: scores[i], Total: total}
	}
	return out
}

// Dedup collapses records sharing a product_url, keeping the first
// occurrence. Input order is the order of file processing, then row order
// within a file, so "first" is well-defined. Records with no URL collapse
// onto the first URL-less row, mirroring how the dedup key treats missing
// values as equal.
func Dedup(records []ScoredRecord) []ScoredRecord {
	seen := make(map[string]bool, len(records))
	out := records[:0:0]
	for _, r := range records {
		key := r.Record.Text(schema.ProductURL)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// TopN deduplicates, sorts by total score descending (stable, so earlier
// files win ties), and truncates to at most n rows.
func TopN(records []ScoredRecord, n int) []ScoredRecord {
	if n <= 0 {
		n = DefaultTop
	}

	out := Dedup(records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
