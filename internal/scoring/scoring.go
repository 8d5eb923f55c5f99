package scoring

import (
	"github.com/ecomtop/topsel/internal/schema"
	"github.com/ecomtop/topsel/internal/weights"
)

// volumeSources maps the batch-normalized dimensions to the columns that
// feed them.
var volumeSources = []struct {
	dim weights.Dimension
	col schema.Field
}{
	{weights.Sales7d, schema.Sales7d},
	{weights.GMV7d, schema.GMV7d},
	{weights.Sales30d, schema.Sales30d},
	{weights.GMV30d, schema.GMV30d},
	{weights.LiveGMV, schema.LiveGMV30d},
	{weights.CardGMV, schema.CardGMV30d},
}

// Score computes every dimension sub-score for each record in a batch.
// The weight vector gates the volume dimensions: a zero-weight column is
// not normalized and scores 0, matching the reallocation semantics where a
// zeroed dimension must not influence the total. The returned slice is
// aligned with records.
func Score(records []schema.Record, resolved map[schema.Field]bool, vec weights.Vector, holidayMode bool, opts Options) []map[weights.Dimension]float64 {
	opts = opts.WithDefaults()

	out := make([]map[weights.Dimension]float64, len(records))
	for i := range out {
		out[i] = make(map[weights.Dimension]float64, len(weights.Dimensions))
		for _, d := range weights.Dimensions {
			out[i][d] = 0
		}
	}
	if len(records) == 0 {
		return out
	}

	for _, src := range volumeSources {
		if vec[src.dim] <= 0 || !resolved[src.col] {
			continue
		}
		scores := VolumeScores(schema.Column(records, src.col), opts.Volume)
		for i, s := range scores {
			out[i][src.dim] = s
		}
	}

	influencer := InfluencerScores(schema.Column(records, schema.Influencer7d))
	growthMode := GrowthModeFor(resolved)
	convPresent := ConversionPresent(records, resolved)
	neutralConv := NeutralConversionScore(opts.Conversion)

	for i, rec := range records {
		out[i][weights.Commission] = CommissionScore(rec[schema.Commission], opts.Commission)
		out[i][weights.Influencer] = influencer[i]
		out[i][weights.Rank] = RankScore(rec.Text(schema.RankType), rec[schema.RankNo], holidayMode, opts.Rank)
		out[i][weights.Growth] = GrowthScore(rec, growthMode, opts.Growth)
		out[i][weights.Channel] = ChannelScore(rec, opts.Channel)

		if convPresent {
			out[i][weights.Conversion] = ConversionScore(rec[schema.Conv30d], opts.Conversion)
		} else {
			out[i][weights.Conversion] = neutralConv
		}
	}

	return out
}
