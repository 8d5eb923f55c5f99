// Package config defines the scoring profile: weights, alias table,
// holidays, selection and scorer overrides. All tables that used to be
// ambient globals live here as explicit, immutable configuration handed to
// each component.
package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/ecomtop/topsel/internal/holiday"
	"github.com/ecomtop/topsel/internal/resolve"
	"github.com/ecomtop/topsel/internal/scoring"
	"github.com/ecomtop/topsel/internal/weights"
)

// Profile is the on-disk scoring configuration. Every section is optional;
// omitted sections use built-in defaults.
type Profile struct {
	Weights   map[weights.Dimension]float64 `yaml:"weights,omitempty"`
	Holiday   HolidaySection                `yaml:"holiday,omitempty"`
	Selection SelectionSection              `yaml:"selection,omitempty"`
	Aliases   []resolve.AliasEntry          `yaml:"aliases,omitempty"`
	Scorers   []ScorerSection               `yaml:"scorers,omitempty"`
}

// HolidaySection configures boost-mode detection.
type HolidaySection struct {
	Enabled    *bool    `yaml:"enabled,omitempty"`
	WindowDays int      `yaml:"window_days,omitempty"`
	Boost      float64  `yaml:"boost,omitempty"`
	Dates      []string `yaml:"dates,omitempty"` // "MM-DD"
}

// SelectionSection configures the final cut.
type SelectionSection struct {
	Top int `yaml:"top,omitempty"`
}

// ScorerSection overrides one scorer's parameters. The config map is
// decoded into the matching typed args struct.
type ScorerSection struct {
	Name       string         `yaml:"name"`
	Parameters map[string]any `yaml:"config,omitempty"`
}

// DefaultHolidayBoost is the weight increment applied in holiday mode.
const DefaultHolidayBoost = 0.02

// Default returns the built-in profile.
func Default() *Profile {
	return &Profile{}
}

// Load reads and validates a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the profile's internal consistency.
func (p *Profile) Validate() error {
	if len(p.Weights) > 0 {
		if err := p.Vector().Validate(); err != nil {
			return err
		}
		for d := range p.Weights {
			if !knownDimension(d) {
				return fmt.Errorf("unknown weight dimension %q", d)
			}
		}
	}
	for _, s := range p.Holiday.Dates {
		if _, err := holiday.ParseMonthDay(s); err != nil {
			return err
		}
	}
	if p.Holiday.WindowDays < 0 {
		return fmt.Errorf("holiday window_days must not be negative, got %d", p.Holiday.WindowDays)
	}
	if p.Selection.Top < 0 {
		return fmt.Errorf("selection top must not be negative, got %d", p.Selection.Top)
	}
	if _, err := p.ScoringOptions(); err != nil {
		return err
	}
	return nil
}

// Vector returns the configured base weight vector, or weights.Base when
// the profile does not override it.
func (p *Profile) Vector() weights.Vector {
	if len(p.Weights) == 0 {
		return weights.Base()
	}
	v := make(weights.Vector, len(p.Weights))
	for d, w := range p.Weights {
		v[d] = w
	}
	return v
}

// AliasTable returns the configured alias table, or the built-in one.
func (p *Profile) AliasTable() []resolve.AliasEntry {
	if len(p.Aliases) == 0 {
		return resolve.DefaultAliases()
	}
	return p.Aliases
}

// Detector builds the holiday detector from the profile.
func (p *Profile) Detector() (*holiday.Detector, error) {
	var dates []holiday.Date
	for _, s := range p.Holiday.Dates {
		d, err := holiday.ParseMonthDay(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return holiday.NewDetector(dates, p.Holiday.WindowDays), nil
}

// HolidayEnabled reports whether boost mode may activate at all.
func (p *Profile) HolidayEnabled() bool {
	return p.Holiday.Enabled == nil || *p.Holiday.Enabled
}

// Boost returns the holiday weight increment.
func (p *Profile) Boost() float64 {
	if p.Holiday.Boost > 0 {
		return p.Holiday.Boost
	}
	return DefaultHolidayBoost
}

// Top returns the output row cap.
func (p *Profile) Top() int {
	if p.Selection.Top > 0 {
		return p.Selection.Top
	}
	return 50
}

// ScoringOptions decodes the per-scorer overrides into typed options.
func (p *Profile) ScoringOptions() (scoring.Options, error) {
	var opts scoring.Options
	for _, s := range p.Scorers {
		var target any
		switch s.Name {
		case "volume":
			target = &opts.Volume
		case "commission":
			target = &opts.Commission
		case "rank":
			target = &opts.Rank
		case "growth":
			target = &opts.Growth
		case "channel":
			target = &opts.Channel
		case "conversion":
			target = &opts.Conversion
		default:
			return opts, fmt.Errorf("unknown scorer %q", s.Name)
		}
		if err := mapstructure.Decode(s.Parameters, target); err != nil {
			return opts, fmt.Errorf("scorer %q: %w", s.Name, err)
		}
	}
	return opts.WithDefaults(), nil
}

func knownDimension(d weights.Dimension) bool {
	for _, k := range weights.Dimensions {
		if k == d {
			return true
		}
	}
	return false
}
