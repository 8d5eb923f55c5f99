package config

import (
	"fmt"
	"os"
)

// defaultYAML is the starter profile written by `topsel init`. It spells
// out every default so the file is self-documenting.
const defaultYAML = `# topsel scoring profile
#
# Weights must cover all 12 dimensions and sum to 1.0. The allocator
# redistributes them per batch when the 7-day or 30-day sales/GMV pair is
# missing from the source data.
weights:
  sales_30d: 0.12
  gmv_30d: 0.08
  sales_7d: 0.08
  gmv_7d: 0.07
  commission: 0.15
  influencer: 0.10
  rank: 0.12
  growth: 0.08
  channel: 0.05
  conversion: 0.05
  live_gmv: 0.05
  card_gmv: 0.05

holiday:
  enabled: true
  window_days: 45
  boost: 0.02
  dates: ["01-01", "02-14", "03-08", "06-01", "09-15", "10-01", "12-25"]

selection:
  top: 50

# Per-scorer parameter overrides, e.g.:
# scorers:
#   - name: commission
#     config:
#       linear_cap: 0.25
#   - name: conversion
#     config:
#       strict_threshold: 0.02
#       relaxed_threshold: 0.01
`

// WriteDefault writes the starter profile to path. It refuses to overwrite
// an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	return os.WriteFile(path, []byte(defaultYAML), 0o644)
}
