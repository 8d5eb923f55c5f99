package scoring

import "github.com/ecomtop/topsel/internal/schema"

// FilterTier reports how far the conversion admission filter had to relax.
type FilterTier string

const (
	// TierStrict kept only rows at or above the strict threshold.
	TierStrict FilterTier = "strict"
	// TierRelaxed kept rows at or above the relaxed threshold after the
	// strict tier emptied the batch.
	TierRelaxed FilterTier = "relaxed"
	// TierUnfiltered kept every row because both thresholds emptied the
	// batch.
	TierUnfiltered FilterTier = "unfiltered"
	// TierAbsent means the conversion column carried no data, so no
	// filtering applied at all.
	TierAbsent FilterTier = "absent"
)

// ConversionPresent reports whether a batch has any usable conversion data:
// the column resolved to a source column and at least one cell parsed to a
// number.
func ConversionPresent(records []schema.Record, resolved map[schema.Field]bool) bool {
	if !resolved[schema.Conv30d] {
		return false
	}
	for _, rec := range records {
		if _, ok := rec.Float(schema.Conv30d); ok {
			return true
		}
	}
	return false
}

// FilterConversion applies the three-tier cascading admission filter and
// returns the surviving records plus the tier that produced them. Rows with
// null conversion cells count as rate 0. Callers should skip the filter
// entirely when ConversionPresent is false.
func FilterConversion(records []schema.Record, args ConversionArgs) ([]schema.Record, FilterTier) {
	args = args.withDefaults()

	if kept := keepAtLeast(records, args.StrictThreshold); len(kept) > 0 {
		return kept, TierStrict
	}
	if kept := keepAtLeast(records, args.RelaxedThreshold); len(kept) > 0 {
		return kept, TierRelaxed
	}
	return records, TierUnfiltered
}

func keepAtLeast(records []schema.Record, threshold float64) []schema.Record {
	var kept []schema.Record
	for _, rec := range records {
		if rec.FloatOr(schema.Conv30d, 0) >= threshold {
			kept = append(kept, rec)
		}
	}
	return kept
}
