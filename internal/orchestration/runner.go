// Package orchestration runs the scoring pipeline: per file it resolves
// fields, normalizes cells, allocates weights, scores rows, and finally
// merges all files into one deduplicated top-N selection. Files are
// independent, so they may be processed in parallel; only the final merge
// is a serialization point.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecomtop/topsel/internal/config"
	"github.com/ecomtop/topsel/internal/dataset"
	"github.com/ecomtop/topsel/internal/holiday"
	"github.com/ecomtop/topsel/internal/metadata"
	"github.com/ecomtop/topsel/internal/normalize"
	"github.com/ecomtop/topsel/internal/resolve"
	"github.com/ecomtop/topsel/internal/schema"
	"github.com/ecomtop/topsel/internal/scoring"
	"github.com/ecomtop/topsel/internal/selection"
	"github.com/ecomtop/topsel/internal/weights"
)

// ErrNoUsableData means no input file produced any scorable rows, so no
// output can be written.
var ErrNoUsableData = errors.New("no usable data in any input file")

// Runner drives the pipeline for one invocation.
type Runner struct {
	profile  *config.Profile
	clock    func() time.Time
	parallel bool
	workers  int
	top      int
	boost    bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock injects the processing-time source used when a batch carries no
// parsable reference date.
func WithClock(clock func() time.Time) Option {
	return func(r *Runner) { r.clock = clock }
}

// WithParallel enables concurrent file processing with the given worker
// count (<=0 selects the default of 4).
func WithParallel(workers int) Option {
	return func(r *Runner) {
		r.parallel = true
		r.workers = workers
	}
}

// WithTop overrides the profile's output row cap.
func WithTop(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.top = n
		}
	}
}

// WithHolidayBoost toggles holiday weight boosting regardless of profile.
func WithHolidayBoost(enabled bool) Option {
	return func(r *Runner) { r.boost = enabled }
}

// NewRunner builds a Runner over a validated profile.
func NewRunner(profile *config.Profile, opts ...Option) *Runner {
	r := &Runner{
		profile: profile,
		clock:   time.Now,
		top:     profile.Top(),
		boost:   profile.HolidayEnabled(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// FileResult is the outcome of scoring one input file.
type FileResult struct {
	Path          string
	Scenario      weights.Scenario
	HolidayMode   bool
	DaysToHoliday int
	FilterTier    scoring.FilterTier
	RowsIn        int
	RowsKept      int
	UnparsedCells int
	Records       []selection.ScoredRecord
}

// SkippedFile records a file excluded from the batch with the reason.
type SkippedFile struct {
	Path   string
	Reason string
}

// BatchResult aggregates an entire invocation.
type BatchResult struct {
	Files    []FileResult
	Skipped  []SkippedFile
	Selected []selection.ScoredRecord
}

// RunDir globs dir for tabular files and scores them.
func (r *Runner) RunDir(ctx context.Context, dir string) (*BatchResult, error) {
	files, err := dataset.Glob(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV or XLSX files found in %s", dir)
	}
	return r.Run(ctx, files)
}

// Run scores the given files and merges them into the final selection.
// Files that cannot be scored are skipped with a warning; Run fails with
// ErrNoUsableData only when every file is unusable.
func (r *Runner) Run(ctx context.Context, files []string) (*BatchResult, error) {
	results := make([]*FileResult, len(files))
	skipReasons := make([]string, len(files))

	process := func(i int) {
		res, err := r.processFile(files[i])
		if err != nil {
			skipReasons[i] = err.Error()
			slog.Warn("skipping file", "path", files[i], "reason", err)
			return
		}
		results[i] = res
	}

	if r.parallel && len(files) > 1 {
		workers := r.workers
		if workers <= 0 {
			workers = 4
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				process(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			process(i)
		}
	}

	batch := &BatchResult{}
	var combined []selection.ScoredRecord
	for i, res := range results {
		if res == nil {
			batch.Skipped = append(batch.Skipped, SkippedFile{Path: files[i], Reason: skipReasons[i]})
			continue
		}
		batch.Files = append(batch.Files, *res)
		combined = append(combined, res.Records...)
	}

	if len(combined) == 0 {
		return batch, ErrNoUsableData
	}

	batch.Selected = selection.TopN(combined, r.top)
	return batch, nil
}

// processFile runs the full single-file pipeline. The steps are strictly
// ordered: resolution and normalization feed the batch-level weight
// allocation, which must precede row scoring.
func (r *Runner) processFile(path string) (*FileResult, error) {
	table, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%s has no data rows", filepath.Base(path))
	}

	mapping := resolve.Columns(table.Columns, r.profile.AliasTable())
	resolved := mapping.Resolved()

	fileInfo := metadata.FromFilename(filepath.Base(path))

	records := make([]schema.Record, len(table.Rows))
	unparsed := 0
	for i, row := range table.Rows {
		rec, n := normalize.Record(row, mapping)
		backfill(rec, resolved, fileInfo)
		records[i] = rec
		unparsed += n
	}
	if unparsed > 0 {
		slog.Warn("unparsable numeric cells kept as text and treated as missing",
			"path", path, "cells", unparsed)
	}

	vec, scenario, err := weights.Allocate(r.profile.Vector(), resolved)
	if err != nil {
		return nil, err
	}

	detector, err := r.profile.Detector()
	if err != nil {
		return nil, err
	}
	ref := holiday.ParseReference(records[0].Text(schema.FileDate), r.clock())
	days := detector.DaysToNearest(ref)
	holidayMode := r.boost && detector.Active(ref)

	if holidayMode {
		vec = weights.ApplyHolidayBoost(vec, r.profile.Boost())
	}

	kept := records
	tier := scoring.TierAbsent
	opts, err := r.profile.ScoringOptions()
	if err != nil {
		return nil, err
	}
	if scoring.ConversionPresent(records, resolved) {
		kept, tier = scoring.FilterConversion(records, opts.Conversion)
	}

	scores := scoring.Score(kept, resolved, vec, holidayMode, opts)
	scored := selection.Totals(kept, scores, vec)

	slog.Info("scored file",
		"path", path,
		"rows_in", len(records),
		"rows_kept", len(kept),
		"scenario", scenario,
		"holiday_mode", holidayMode,
		"days_to_holiday", days,
		"filter_tier", tier,
	)

	return &FileResult{
		Path:          path,
		Scenario:      scenario,
		HolidayMode:   holidayMode,
		DaysToHoliday: days,
		FilterTier:    tier,
		RowsIn:        len(records),
		RowsKept:      len(kept),
		UnparsedCells: unparsed,
		Records:       scored,
	}, nil
}

// backfill fills fields the table itself could not provide from filename
// metadata. Only fields with no resolved source column are touched, and
// only for rows where the cell is still null.
func backfill(rec schema.Record, resolved map[schema.Field]bool, info metadata.FileInfo) {
	set := func(f schema.Field, text string) {
		if text == "" || resolved[f] || !rec[f].IsNull() {
			return
		}
		rec[f] = schema.Text(text)
	}

	if info.Known() {
		set(schema.FileDate, info.FileDate)
		set(schema.SnapshotTag, info.SnapshotTag)
	}
	set(schema.DataPeriod, info.DataPeriod)
	set(schema.RankType, info.RankType)
}
