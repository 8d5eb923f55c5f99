// Package scoring implements the per-dimension sub-scores. Scorers are pure
// functions of already-normalized values; the only cross-row state is
// batch-relative (percentile clipping, batch means).
package scoring

import (
	"math"

	"github.com/ecomtop/topsel/internal/schema"
	"github.com/ecomtop/topsel/internal/statistics"
)

// Rank list types with a non-default base score.
const (
	RankTypePotential = "潜力榜"
	RankTypeSales     = "销量榜"
)

// VolumeScores normalizes one sales/GMV column within its batch: clip at the
// configured percentile, log(x+1), then min-max scale to [0,1]. Null and
// unparsed cells count as 0. A constant or all-null column scores 0 for
// every row.
func VolumeScores(col []schema.Value, args VolumeArgs) []float64 {
	args = args.withDefaults()
	values := make([]float64, len(col))
	for i, v := range col {
		values[i] = v.FloatOr(0)
	}
	return statistics.ClipLogMinMax(values, args.ClipPercentile)
}

// CommissionScore maps a commission rate onto the piecewise incentive curve.
// Rates below the linear cap scale proportionally; higher tiers award a
// fixed bonus above 1.0. Null rates score 0.
func CommissionScore(v schema.Value, args CommissionArgs) float64 {
	args = args.withDefaults()
	c, ok := v.Float()
	if !ok {
		return 0
	}
	switch {
	case c < args.LinearCap:
		return c / args.LinearCap
	case c < args.MidRate:
		return args.LowBonus
	case c < args.HighRate:
		return args.MidBonus
	default:
		return args.HighBonus
	}
}

// InfluencerScores applies cosine-style decay n/sqrt(n²+mean²) over the
// influencer-count column, with the batch mean computed after filling nulls
// with 0. An all-null or all-zero column scores 0 for every row.
func InfluencerScores(col []schema.Value) []float64 {
	out := make([]float64, len(col))
	values := make([]float64, len(col))
	for i, v := range col {
		values[i] = v.FloatOr(0)
	}

	mean := statistics.Mean(values)
	if mean == 0 {
		return out
	}

	meanSq := mean * mean
	for i, n := range values {
		out[i] = n / math.Sqrt(n*n+meanSq)
	}
	return out
}

// RankScore combines the leaderboard-type base score with exponential
// rank-position decay. Missing rank numbers default to the worst rank. In
// holiday mode the sales-list base score gets a small bump before the
// combination.
func RankScore(rankType string, rankNo schema.Value, holidayMode bool, args RankArgs) float64 {
	args = args.withDefaults()

	var base float64
	switch rankType {
	case RankTypePotential:
		base = args.PotentialBase
	case RankTypeSales:
		base = args.SalesBase
		if holidayMode {
			base += args.HolidayBump
		}
	default:
		base = args.OtherBase
	}

	rank := rankNo.FloatOr(args.DefaultRank)
	decay := math.Exp(-args.DecayRate * (rank - 1))

	return base*args.BaseWeight + decay*args.DecayWeight
}

// GrowthMode selects which sales figure feeds the growth formula.
type GrowthMode int

const (
	// GrowthFrom30d uses the 30-day sales column directly.
	GrowthFrom30d GrowthMode = iota
	// GrowthFrom7d estimates 30-day sales from the 7-day column.
	GrowthFrom7d
	// GrowthNeutral means no usable sales data; a fixed neutral score.
	GrowthNeutral
)

// GrowthModeFor picks the growth input from the batch's resolved fields.
func GrowthModeFor(resolved map[schema.Field]bool) GrowthMode {
	switch {
	case resolved[schema.Sales30d] && resolved[schema.Sales1y]:
		return GrowthFrom30d
	case resolved[schema.Sales7d] && resolved[schema.Sales1y]:
		return GrowthFrom7d
	default:
		return GrowthNeutral
	}
}

// GrowthScore rates growth potential as 30-day sales relative to the yearly
// monthly average, with a flat penalty for very large sellers. The result is
// clipped to [0,1].
func GrowthScore(rec schema.Record, mode GrowthMode, args GrowthArgs) float64 {
	args = args.withDefaults()

	var sales30 float64
	switch mode {
	case GrowthFrom30d:
		sales30 = rec.FloatOr(schema.Sales30d, 0)
	case GrowthFrom7d:
		sales30 = rec.FloatOr(schema.Sales7d, 0) * args.WeeklyFactor
	default:
		return args.Neutral
	}

	sales1y := rec.FloatOr(schema.Sales1y, 0)
	monthlyAvg := sales1y / 12
	growthRate := sales30 / (monthlyAvg + 1)

	penalty := 0.0
	if sales1y > args.PenaltyThreshold {
		penalty = args.Penalty
	}

	return statistics.Clip(growthRate-penalty, 0, 1)
}

// ChannelScore rates channel diversification from the live and product-card
// GMV shares. Ratios fall back to market defaults when the channel or total
// figure is missing or the total is non-positive.
func ChannelScore(rec schema.Record, args ChannelArgs) float64 {
	args = args.withDefaults()

	live30 := channelRatio(rec, schema.LiveGMV30d, schema.GMV30d, args.DefaultLiveRatio30d)
	live7 := channelRatio(rec, schema.LiveGMV7d, schema.GMV7d, args.DefaultLiveRatio7d)
	card30 := channelRatio(rec, schema.CardGMV30d, schema.GMV30d, args.DefaultCardRatio30d)

	score := (1-live30)*args.LiveWeight30d +
		(1-live7)*args.LiveWeight7d +
		card30*args.CardWeight30d

	return statistics.Clip(score, 0, 1)
}

func channelRatio(rec schema.Record, channel, total schema.Field, def float64) float64 {
	ch, okCh := rec.Float(channel)
	tot, okTot := rec.Float(total)
	if !okCh || !okTot || tot <= 0 {
		return def
	}
	return ch / tot
}

// ConversionScore linearly maps a conversion rate onto [0,1], saturating at
// the cap. Null rates score 0.
func ConversionScore(v schema.Value, args ConversionArgs) float64 {
	args = args.withDefaults()
	return statistics.Clip(v.FloatOr(0), 0, args.Cap) / args.Cap
}

// NeutralConversionScore is the fixed score used when the conversion column
// is entirely absent from a batch.
func NeutralConversionScore(args ConversionArgs) float64 {
	args = args.withDefaults()
	return statistics.Clip(args.Neutral, 0, args.Cap) / args.Cap
}
