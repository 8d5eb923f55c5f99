package weights

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecomtop/topsel/internal/schema"
)

func resolvedSet(fields ...schema.Field) map[schema.Field]bool {
	out := make(map[schema.Field]bool, len(fields))
	for _, f := range fields {
		out[f] = true
	}
	return out
}

func TestBase(t *testing.T) {
	base := Base()
	require.NoError(t, base.Validate())
	require.InDelta(t, 0.12, base[Sales30d], 1e-12)
	require.InDelta(t, 0.15, base[Commission], 1e-12)
	require.Len(t, base, len(Dimensions))
}

func TestValidate(t *testing.T) {
	t.Run("missing dimension", func(t *testing.T) {
		v := Base()
		delete(v, Rank)
		require.ErrorContains(t, v.Validate(), "missing dimension")
	})

	t.Run("negative weight", func(t *testing.T) {
		v := Base()
		v[Rank] = -0.01
		v[Growth] += 0.13
		require.ErrorContains(t, v.Validate(), "negative")
	})

	t.Run("bad sum", func(t *testing.T) {
		v := Base()
		v[Rank] += 0.01
		require.ErrorContains(t, v.Validate(), "sums to")
	})

	t.Run("unknown extra dimension", func(t *testing.T) {
		v := Base()
		v["bogus"] = 0
		require.ErrorContains(t, v.Validate(), "expected 12 dimensions")
	})
}

func TestAllocate(t *testing.T) {
	both := resolvedSet(schema.Sales7d, schema.GMV7d, schema.Sales30d, schema.GMV30d)
	only30 := resolvedSet(schema.Sales30d, schema.GMV30d)
	only7 := resolvedSet(schema.Sales7d, schema.GMV7d)

	t.Run("scenario A keeps weights unchanged", func(t *testing.T) {
		v, sc, err := Allocate(Base(), both)
		require.NoError(t, err)
		require.Equal(t, ScenarioA, sc)
		require.Equal(t, Base(), v)
	})

	t.Run("scenario B folds 7d mass into the 30d pair", func(t *testing.T) {
		v, sc, err := Allocate(Base(), only30)
		require.NoError(t, err)
		require.Equal(t, ScenarioB, sc)
		require.InDelta(t, 0.21, v[Sales30d], 1e-9)
		require.InDelta(t, 0.14, v[GMV30d], 1e-9)
		require.Zero(t, v[Sales7d])
		require.Zero(t, v[GMV7d])
		require.InDelta(t, 1.0, v.Sum(), SumTolerance)
	})

	t.Run("scenario C folds 30d mass into the 7d pair", func(t *testing.T) {
		v, sc, err := Allocate(Base(), only7)
		require.NoError(t, err)
		require.Equal(t, ScenarioC, sc)
		require.InDelta(t, 0.08+0.20*(0.08/0.15), v[Sales7d], 1e-9)
		require.InDelta(t, 0.07+0.20*(0.07/0.15), v[GMV7d], 1e-9)
		require.Zero(t, v[Sales30d])
		require.Zero(t, v[GMV30d])
		require.InDelta(t, 1.0, v.Sum(), SumTolerance)
	})

	t.Run("a pair needs both members", func(t *testing.T) {
		v, sc, err := Allocate(Base(), resolvedSet(schema.Sales30d, schema.GMV30d, schema.Sales7d))
		require.NoError(t, err)
		require.Equal(t, ScenarioB, sc)
		require.Zero(t, v[Sales7d])
	})

	t.Run("scenario D is an error", func(t *testing.T) {
		_, sc, err := Allocate(Base(), resolvedSet(schema.ProductName, schema.Commission))
		require.ErrorIs(t, err, ErrInsufficientData)
		require.Equal(t, ScenarioD, sc)
	})

	t.Run("base is never mutated", func(t *testing.T) {
		base := Base()
		_, _, err := Allocate(base, only30)
		require.NoError(t, err)
		require.Equal(t, Base(), base)
	})
}

func TestApplyHolidayBoost(t *testing.T) {
	t.Run("prefers the 7d sales weight", func(t *testing.T) {
		v := ApplyHolidayBoost(Base(), 0.02)
		require.InDelta(t, 0.10, v[Sales7d], 1e-9)
		require.InDelta(t, 1.0, v.Sum(), SumTolerance)

		// Everything else rescales by the same factor.
		scale := (1 - 0.10) / (1 - 0.08)
		require.InDelta(t, 0.12*scale, v[Sales30d], 1e-9)
		require.InDelta(t, 0.15*scale, v[Commission], 1e-9)
	})

	t.Run("falls back to the 30d sales weight", func(t *testing.T) {
		base, _, err := Allocate(Base(), resolvedSet(schema.Sales30d, schema.GMV30d))
		require.NoError(t, err)

		v := ApplyHolidayBoost(base, 0.02)
		require.InDelta(t, 0.23, v[Sales30d], 1e-9)
		require.Zero(t, v[Sales7d])
		require.InDelta(t, 1.0, v.Sum(), SumTolerance)
	})

	t.Run("input vector untouched", func(t *testing.T) {
		base := Base()
		ApplyHolidayBoost(base, 0.02)
		require.Equal(t, Base(), base)
	})
}
