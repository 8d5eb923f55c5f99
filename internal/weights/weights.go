// Package weights computes the per-batch scoring weight vector. The vector
// always sums to 1.0 after allocation; batches lacking both the 7-day and
// 30-day sales/GMV pairs cannot be scored at all.
package weights

import (
	"errors"
	"fmt"
	"math"

	"github.com/ecomtop/topsel/internal/schema"
)

// Dimension names one of the 12 scoring dimensions.
type Dimension string

const (
	Sales30d   Dimension = "sales_30d"
	GMV30d     Dimension = "gmv_30d"
	Sales7d    Dimension = "sales_7d"
	GMV7d      Dimension = "gmv_7d"
	Commission Dimension = "commission"
	Influencer Dimension = "influencer"
	Rank       Dimension = "rank"
	Growth     Dimension = "growth"
	Channel    Dimension = "channel"
	Conversion Dimension = "conversion"
	LiveGMV    Dimension = "live_gmv"
	CardGMV    Dimension = "card_gmv"
)

// Dimensions lists all scoring dimensions in a fixed order.
var Dimensions = []Dimension{
	Sales30d, GMV30d, Sales7d, GMV7d,
	Commission, Influencer, Rank, Growth,
	Channel, Conversion, LiveGMV, CardGMV,
}

// Vector maps dimensions to non-negative fractional weights.
type Vector map[Dimension]float64

// Base returns the default weight configuration. It sums to exactly 1.0.
func Base() Vector {
	return Vector{
		Sales30d:   0.12,
		GMV30d:     0.08,
		Sales7d:    0.08,
		GMV7d:      0.07,
		Commission: 0.15,
		Influencer: 0.10,
		Rank:       0.12,
		Growth:     0.08,
		Channel:    0.05,
		Conversion: 0.05,
		LiveGMV:    0.05,
		CardGMV:    0.05,
	}
}

// Sum returns the total weight mass.
func (v Vector) Sum() float64 {
	total := 0.0
	for _, w := range v {
		total += w
	}
	return total
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for d, w := range v {
		out[d] = w
	}
	return out
}

// SumTolerance is the permitted deviation from 1.0 for a weight vector.
const SumTolerance = 1e-6

// Validate checks that every dimension is present with a non-negative
// weight and the vector sums to 1.0 within tolerance.
func (v Vector) Validate() error {
	for _, d := range Dimensions {
		w, ok := v[d]
		if !ok {
			return fmt.Errorf("weights: missing dimension %q", d)
		}
		if w < 0 {
			return fmt.Errorf("weights: dimension %q is negative (%v)", d, w)
		}
	}
	if len(v) != len(Dimensions) {
		return fmt.Errorf("weights: expected %d dimensions, got %d", len(Dimensions), len(v))
	}
	if s := v.Sum(); math.Abs(s-1.0) > SumTolerance {
		return fmt.Errorf("weights: vector sums to %.6f, want 1.0", s)
	}
	return nil
}

// ErrInsufficientData marks a batch that lacks both the 7-day and 30-day
// sales/GMV field pairs (Scenario D) and cannot be scored.
var ErrInsufficientData = errors.New("weights: no usable sales/GMV fields (need sales_7d+gmv_7d or sales_30d+gmv_30d)")

// Scenario identifies the field-availability case that drove allocation.
type Scenario string

const (
	ScenarioA Scenario = "A" // both pairs present, weights unchanged
	ScenarioB Scenario = "B" // only 30-day pair, 7-day mass folded in
	ScenarioC Scenario = "C" // only 7-day pair, 30-day mass folded in
	ScenarioD Scenario = "D" // neither pair, unscorable
)

// Allocate redistributes base weights according to which sales/GMV field
// pairs the batch actually resolved. The returned vector is a fresh copy;
// base is never mutated. Scenario D returns ErrInsufficientData.
func Allocate(base Vector, resolved map[schema.Field]bool) (Vector, Scenario, error) {
	v := base.Clone()

	has7d := resolved[schema.Sales7d] && resolved[schema.GMV7d]
	has30d := resolved[schema.Sales30d] && resolved[schema.GMV30d]

	switch {
	case has7d && has30d:
		return v, ScenarioA, nil

	case has30d:
		shift(v, Sales7d, GMV7d, Sales30d, GMV30d)
		return v, ScenarioB, nil

	case has7d:
		shift(v, Sales30d, GMV30d, Sales7d, GMV7d)
		return v, ScenarioC, nil

	default:
		return nil, ScenarioD, ErrInsufficientData
	}
}

// shift moves the combined weight of the two "from" dimensions onto the two
// "to" dimensions, split proportionally to their current relative share.
func shift(v Vector, fromA, fromB, toA, toB Dimension) {
	mass := v[fromA] + v[fromB]
	current := v[toA] + v[toB]
	if current > 0 {
		v[toA] += mass * (v[toA] / current)
		v[toB] += mass * (v[toB] / current)
	}
	v[fromA] = 0
	v[fromB] = 0
}

// ApplyHolidayBoost raises the active sales weight (preferring the 7-day
// one) by boost and rescales all other weights proportionally so the vector
// still sums to 1.0. A vector with no positive sales weight is returned
// unchanged.
func ApplyHolidayBoost(v Vector, boost float64) Vector {
	out := v.Clone()

	var target Dimension
	switch {
	case out[Sales7d] > 0:
		target = Sales7d
	case out[Sales30d] > 0:
		target = Sales30d
	default:
		return out
	}

	out[target] += boost

	others := 0.0
	for d, w := range out {
		if d != target {
			others += w
		}
	}
	if others <= 0 {
		return out
	}

	scale := (1 - out[target]) / others
	for d := range out {
		if d != target {
			out[d] *= scale
		}
	}
	return out
}
