package scoring

// Tunable parameters for each scorer. Zero values are replaced by defaults
// so a partially-specified configuration override keeps the standard
// behavior for everything it does not mention.

// VolumeArgs controls the sales/GMV normalization.
type VolumeArgs struct {
	// ClipPercentile is the long-tail cutoff applied before the log
	// transform.
	ClipPercentile float64 `mapstructure:"clip_percentile"`
}

func (a VolumeArgs) withDefaults() VolumeArgs {
	if a.ClipPercentile <= 0 {
		a.ClipPercentile = 99
	}
	return a
}

// CommissionArgs controls the piecewise commission score. Rates at or above
// the bonus thresholds earn scores above 1.0.
type CommissionArgs struct {
	LinearCap float64 `mapstructure:"linear_cap"` // below this, score = rate/cap
	MidRate   float64 `mapstructure:"mid_rate"`
	HighRate  float64 `mapstructure:"high_rate"`
	LowBonus  float64 `mapstructure:"low_bonus"`
	MidBonus  float64 `mapstructure:"mid_bonus"`
	HighBonus float64 `mapstructure:"high_bonus"`
}

func (a CommissionArgs) withDefaults() CommissionArgs {
	if a.LinearCap <= 0 {
		a.LinearCap = 0.25
	}
	if a.MidRate <= 0 {
		a.MidRate = 0.30
	}
	if a.HighRate <= 0 {
		a.HighRate = 0.35
	}
	if a.LowBonus <= 0 {
		a.LowBonus = 1.10
	}
	if a.MidBonus <= 0 {
		a.MidBonus = 1.15
	}
	if a.HighBonus <= 0 {
		a.HighBonus = 1.20
	}
	return a
}

// RankArgs controls leaderboard scoring: a categorical base score combined
// with exponential rank-position decay.
type RankArgs struct {
	PotentialBase float64 `mapstructure:"potential_base"`
	SalesBase     float64 `mapstructure:"sales_base"`
	OtherBase     float64 `mapstructure:"other_base"`
	HolidayBump   float64 `mapstructure:"holiday_bump"`
	DecayRate     float64 `mapstructure:"decay_rate"`
	DefaultRank   float64 `mapstructure:"default_rank"`
	BaseWeight    float64 `mapstructure:"base_weight"`
	DecayWeight   float64 `mapstructure:"decay_weight"`
}

func (a RankArgs) withDefaults() RankArgs {
	if a.PotentialBase <= 0 {
		a.PotentialBase = 0.4
	}
	if a.SalesBase <= 0 {
		a.SalesBase = 0.3
	}
	if a.OtherBase <= 0 {
		a.OtherBase = 0.2
	}
	if a.HolidayBump <= 0 {
		a.HolidayBump = 0.02
	}
	if a.DecayRate <= 0 {
		a.DecayRate = 0.015
	}
	if a.DefaultRank <= 0 {
		a.DefaultRank = 999
	}
	if a.BaseWeight <= 0 {
		a.BaseWeight = 0.4
	}
	if a.DecayWeight <= 0 {
		a.DecayWeight = 0.6
	}
	return a
}

// GrowthArgs controls the growth-potential score.
type GrowthArgs struct {
	WeeklyFactor     float64 `mapstructure:"weekly_factor"`     // 7d -> 30d estimate
	PenaltyThreshold float64 `mapstructure:"penalty_threshold"` // yearly sales above this are penalized
	Penalty          float64 `mapstructure:"penalty"`
	Neutral          float64 `mapstructure:"neutral"` // score when no sales data exists
}

func (a GrowthArgs) withDefaults() GrowthArgs {
	if a.WeeklyFactor <= 0 {
		a.WeeklyFactor = 4.3
	}
	if a.PenaltyThreshold <= 0 {
		a.PenaltyThreshold = 50000
	}
	if a.Penalty <= 0 {
		a.Penalty = 0.2
	}
	if a.Neutral <= 0 {
		a.Neutral = 0.5
	}
	return a
}

// ChannelArgs controls the channel-distribution score.
type ChannelArgs struct {
	DefaultLiveRatio30d float64 `mapstructure:"default_live_ratio_30d"`
	DefaultLiveRatio7d  float64 `mapstructure:"default_live_ratio_7d"`
	DefaultCardRatio30d float64 `mapstructure:"default_card_ratio_30d"`
	LiveWeight30d       float64 `mapstructure:"live_weight_30d"`
	LiveWeight7d        float64 `mapstructure:"live_weight_7d"`
	CardWeight30d       float64 `mapstructure:"card_weight_30d"`
}

func (a ChannelArgs) withDefaults() ChannelArgs {
	if a.DefaultLiveRatio30d <= 0 {
		a.DefaultLiveRatio30d = 0.3
	}
	if a.DefaultLiveRatio7d <= 0 {
		a.DefaultLiveRatio7d = 0.3
	}
	if a.DefaultCardRatio30d <= 0 {
		a.DefaultCardRatio30d = 0.2
	}
	if a.LiveWeight30d <= 0 {
		a.LiveWeight30d = 0.03
	}
	if a.LiveWeight7d <= 0 {
		a.LiveWeight7d = 0.02
	}
	if a.CardWeight30d <= 0 {
		a.CardWeight30d = 0.05
	}
	return a
}

// ConversionArgs controls the admission filter and conversion score.
type ConversionArgs struct {
	StrictThreshold  float64 `mapstructure:"strict_threshold"`
	RelaxedThreshold float64 `mapstructure:"relaxed_threshold"`
	Cap              float64 `mapstructure:"cap"`     // upper bound of the linear mapping
	Neutral          float64 `mapstructure:"neutral"` // assumed rate when the column is absent
}

func (a ConversionArgs) withDefaults() ConversionArgs {
	if a.StrictThreshold <= 0 {
		a.StrictThreshold = 0.02
	}
	if a.RelaxedThreshold <= 0 {
		a.RelaxedThreshold = 0.01
	}
	if a.Cap <= 0 {
		a.Cap = 0.2
	}
	if a.Neutral <= 0 {
		a.Neutral = 0.04
	}
	return a
}

// Options aggregates all scorer parameters.
type Options struct {
	Volume     VolumeArgs
	Commission CommissionArgs
	Rank       RankArgs
	Growth     GrowthArgs
	Channel    ChannelArgs
	Conversion ConversionArgs
}

// WithDefaults fills every unset parameter with its standard value.
func (o Options) WithDefaults() Options {
	o.Volume = o.Volume.withDefaults()
	o.Commission = o.Commission.withDefaults()
	o.Rank = o.Rank.withDefaults()
	o.Growth = o.Growth.withDefaults()
	o.Channel = o.Channel.withDefaults()
	o.Conversion = o.Conversion.withDefaults()
	return o
}
