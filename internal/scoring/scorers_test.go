package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecomtop/topsel/internal/schema"
)

func TestVolumeScores(t *testing.T) {
	t.Run("scales to the unit interval", func(t *testing.T) {
		got := VolumeScores([]schema.Value{schema.Num(0), schema.Num(9)}, VolumeArgs{})
		require.InDelta(t, 0, got[0], 1e-9)
		require.InDelta(t, 1, got[1], 1e-9)
	})

	t.Run("nulls count as zero", func(t *testing.T) {
		got := VolumeScores([]schema.Value{schema.Null, schema.Num(9)}, VolumeArgs{})
		require.InDelta(t, 0, got[0], 1e-9)
		require.InDelta(t, 1, got[1], 1e-9)
	})

	t.Run("unparsed text counts as zero", func(t *testing.T) {
		got := VolumeScores([]schema.Value{schema.Text("约三千"), schema.Num(9)}, VolumeArgs{})
		require.InDelta(t, 0, got[0], 1e-9)
	})

	t.Run("all null scores zero", func(t *testing.T) {
		got := VolumeScores([]schema.Value{schema.Null, schema.Null}, VolumeArgs{})
		require.Equal(t, []float64{0, 0}, got)
	})

	t.Run("constant column scores zero", func(t *testing.T) {
		got := VolumeScores([]schema.Value{schema.Num(5), schema.Num(5)}, VolumeArgs{})
		require.Equal(t, []float64{0, 0}, got)
	})
}

func TestCommissionScore(t *testing.T) {
	tests := []struct {
		name string
		v    schema.Value
		want float64
	}{
		{"null", schema.Null, 0},
		{"unparsed text", schema.Text("高"), 0},
		{"zero", schema.Num(0), 0},
		{"linear region", schema.Num(0.10), 0.4},
		{"just under the cap", schema.Num(0.24), 0.96},
		{"low bonus tier", schema.Num(0.25), 1.10},
		{"low bonus upper edge", schema.Num(0.29), 1.10},
		{"mid bonus tier", schema.Num(0.30), 1.15},
		{"mid bonus upper edge", schema.Num(0.34), 1.15},
		{"high bonus tier", schema.Num(0.35), 1.20},
		{"far above", schema.Num(0.80), 1.20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, CommissionScore(tt.v, CommissionArgs{}), 1e-9)
		})
	}
}

func TestInfluencerScores(t *testing.T) {
	t.Run("cosine decay against the batch mean", func(t *testing.T) {
		got := InfluencerScores([]schema.Value{schema.Num(3), schema.Num(4)})
		mean := 3.5
		require.InDelta(t, 3/math.Sqrt(9+mean*mean), got[0], 1e-9)
		require.InDelta(t, 4/math.Sqrt(16+mean*mean), got[1], 1e-9)
	})

	t.Run("nulls pull the mean down and score zero", func(t *testing.T) {
		got := InfluencerScores([]schema.Value{schema.Null, schema.Num(4)})
		require.InDelta(t, 0, got[0], 1e-9)
		require.InDelta(t, 4/math.Sqrt(16+4), got[1], 1e-9)
	})

	t.Run("all null scores zero", func(t *testing.T) {
		require.Equal(t, []float64{0, 0}, InfluencerScores([]schema.Value{schema.Null, schema.Null}))
	})

	t.Run("all zeros scores zero", func(t *testing.T) {
		require.Equal(t, []float64{0, 0}, InfluencerScores([]schema.Value{schema.Num(0), schema.Num(0)}))
	})
}

func TestRankScore(t *testing.T) {
	t.Run("potential list at rank one", func(t *testing.T) {
		got := RankScore(RankTypePotential, schema.Num(1), false, RankArgs{})
		require.InDelta(t, 0.4*0.4+0.6, got, 1e-9)
	})

	t.Run("sales list gets a holiday bump", func(t *testing.T) {
		plain := RankScore(RankTypeSales, schema.Num(1), false, RankArgs{})
		boosted := RankScore(RankTypeSales, schema.Num(1), true, RankArgs{})
		require.InDelta(t, 0.3*0.4+0.6, plain, 1e-9)
		require.InDelta(t, 0.32*0.4+0.6, boosted, 1e-9)
	})

	t.Run("holiday mode leaves other lists alone", func(t *testing.T) {
		plain := RankScore("热推榜", schema.Num(1), false, RankArgs{})
		boosted := RankScore("热推榜", schema.Num(1), true, RankArgs{})
		require.Equal(t, plain, boosted)
		require.InDelta(t, 0.2*0.4+0.6, plain, 1e-9)
	})

	t.Run("position decays exponentially", func(t *testing.T) {
		got := RankScore(RankTypeSales, schema.Num(10), false, RankArgs{})
		require.InDelta(t, 0.3*0.4+math.Exp(-0.015*9)*0.6, got, 1e-9)
	})

	t.Run("missing rank falls to the worst position", func(t *testing.T) {
		got := RankScore("", schema.Null, false, RankArgs{})
		require.InDelta(t, 0.2*0.4, got, 1e-4)
	})
}

func TestGrowthModeFor(t *testing.T) {
	require.Equal(t, GrowthFrom30d, GrowthModeFor(map[schema.Field]bool{schema.Sales30d: true, schema.Sales1y: true}))
	require.Equal(t, GrowthFrom7d, GrowthModeFor(map[schema.Field]bool{schema.Sales7d: true, schema.Sales1y: true}))
	require.Equal(t, GrowthNeutral, GrowthModeFor(map[schema.Field]bool{schema.Sales30d: true}))
	require.Equal(t, GrowthNeutral, GrowthModeFor(nil))
}

func TestGrowthScore(t *testing.T) {
	rec := func(fields map[schema.Field]float64) schema.Record {
		r := schema.NewRecord()
		for f, v := range fields {
			r[f] = schema.Num(v)
		}
		return r
	}

	t.Run("strong growth clips at one", func(t *testing.T) {
		r := rec(map[schema.Field]float64{schema.Sales30d: 1000, schema.Sales1y: 6000})
		require.InDelta(t, 1.0, GrowthScore(r, GrowthFrom30d, GrowthArgs{}), 1e-9)
	})

	t.Run("moderate growth", func(t *testing.T) {
		r := rec(map[schema.Field]float64{schema.Sales30d: 100, schema.Sales1y: 2400})
		require.InDelta(t, 100.0/201.0, GrowthScore(r, GrowthFrom30d, GrowthArgs{}), 1e-9)
	})

	t.Run("weekly estimate", func(t *testing.T) {
		r := rec(map[schema.Field]float64{schema.Sales7d: 10, schema.Sales1y: 2400})
		require.InDelta(t, 43.0/201.0, GrowthScore(r, GrowthFrom7d, GrowthArgs{}), 1e-9)
	})

	t.Run("large sellers are penalized", func(t *testing.T) {
		r := rec(map[schema.Field]float64{schema.Sales30d: 800, schema.Sales1y: 60000})
		require.InDelta(t, 0.0, GrowthScore(r, GrowthFrom30d, GrowthArgs{}), 1e-9)
	})

	t.Run("neutral mode is a constant", func(t *testing.T) {
		require.InDelta(t, 0.5, GrowthScore(schema.NewRecord(), GrowthNeutral, GrowthArgs{}), 1e-9)
	})
}

func TestChannelScore(t *testing.T) {
	t.Run("all defaults when nothing resolved", func(t *testing.T) {
		want := (1-0.3)*0.03 + (1-0.3)*0.02 + 0.2*0.05
		require.InDelta(t, want, ChannelScore(schema.NewRecord(), ChannelArgs{}), 1e-9)
	})

	t.Run("ratios from actual figures", func(t *testing.T) {
		r := schema.NewRecord()
		r[schema.GMV30d] = schema.Num(1000)
		r[schema.LiveGMV30d] = schema.Num(300)
		r[schema.GMV7d] = schema.Num(100)
		r[schema.LiveGMV7d] = schema.Num(50)
		r[schema.CardGMV30d] = schema.Num(200)

		want := (1-0.3)*0.03 + (1-0.5)*0.02 + 0.2*0.05
		require.InDelta(t, want, ChannelScore(r, ChannelArgs{}), 1e-9)
	})

	t.Run("zero total falls back to the default ratio", func(t *testing.T) {
		r := schema.NewRecord()
		r[schema.GMV30d] = schema.Num(0)
		r[schema.LiveGMV30d] = schema.Num(300)

		want := (1-0.3)*0.03 + (1-0.3)*0.02 + 0.2*0.05
		require.InDelta(t, want, ChannelScore(r, ChannelArgs{}), 1e-9)
	})
}

func TestConversionScore(t *testing.T) {
	require.InDelta(t, 0.2, ConversionScore(schema.Num(0.04), ConversionArgs{}), 1e-9)
	require.InDelta(t, 1.0, ConversionScore(schema.Num(0.5), ConversionArgs{}), 1e-9)
	require.InDelta(t, 1.0, ConversionScore(schema.Num(0.2), ConversionArgs{}), 1e-9)
	require.InDelta(t, 0.0, ConversionScore(schema.Null, ConversionArgs{}), 1e-9)
}

func TestNeutralConversionScore(t *testing.T) {
	require.InDelta(t, 0.2, NeutralConversionScore(ConversionArgs{}), 1e-9)
	require.InDelta(t, 0.5, NeutralConversionScore(ConversionArgs{Neutral: 0.05, Cap: 0.1}), 1e-9)
}
