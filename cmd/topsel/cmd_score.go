package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecomtop/topsel/internal/config"
	"github.com/ecomtop/topsel/internal/orchestration"
	"github.com/ecomtop/topsel/internal/reporting"
)

var (
	scoreInDir      string
	scoreOutDir     string
	scoreConfigPath string
	scoreTop        int
	scoreParallel   bool
	scoreWorkers    int
	scoreNoHoliday  bool
	scoreGzip       bool
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score every listing in a directory of exports",
		Long: `Score all CSV/XLSX files in the input directory and write one combined
result file with the top listings, de-duplicated by product URL.

Files lacking both the 7-day and 30-day sales/GMV pairs cannot be scored;
they are skipped with a warning and the rest of the batch continues.`,
		Args: cobra.NoArgs,
		RunE: scoreCommandE,
	}

	cmd.Flags().StringVar(&scoreInDir, "in", "", "Input directory with cleaned export files (required)")
	cmd.Flags().StringVar(&scoreOutDir, "out", "", "Output directory for the combined result (required)")
	cmd.Flags().StringVar(&scoreConfigPath, "config", "", "Scoring profile YAML (default: built-in profile)")
	cmd.Flags().IntVar(&scoreTop, "top", 0, "Number of listings to keep (default from profile: 50)")
	cmd.Flags().BoolVar(&scoreParallel, "parallel", false, "Process files concurrently")
	cmd.Flags().IntVar(&scoreWorkers, "workers", 0, "Number of concurrent workers (default: 4, requires --parallel)")
	cmd.Flags().BoolVar(&scoreNoHoliday, "no-holiday-boost", false, "Disable the holiday weight boost")
	cmd.Flags().BoolVar(&scoreGzip, "gzip", false, "Gzip the output file")

	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func scoreCommandE(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(scoreConfigPath)
	if err != nil {
		return err
	}

	opts := []orchestration.Option{}
	if scoreParallel {
		opts = append(opts, orchestration.WithParallel(scoreWorkers))
	}
	if scoreTop > 0 {
		opts = append(opts, orchestration.WithTop(scoreTop))
	}
	if scoreNoHoliday {
		opts = append(opts, orchestration.WithHolidayBoost(false))
	}

	runner := orchestration.NewRunner(profile, opts...)
	batch, err := runner.RunDir(cmd.Context(), scoreInDir)
	if err != nil {
		if errors.Is(err, orchestration.ErrNoUsableData) {
			if batch != nil {
				reporting.WriteSummary(cmd.OutOrStdout(), batch, false)
			}
			return &NoDataError{Message: fmt.Sprintf("no output written: %v", err)}
		}
		return err
	}

	path, err := reporting.WriteCSV(batch.Selected, scoreOutDir, scoreGzip)
	if err != nil {
		return err
	}

	fancy := term.IsTerminal(int(os.Stdout.Fd()))
	reporting.WriteSummary(cmd.OutOrStdout(), batch, fancy)
	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to: %s\n", path)

	return nil
}

func loadProfile(path string) (*config.Profile, error) {
	if path == "" {
		return config.Default(), nil
	}
	profile, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring profile: %w", err)
	}
	return profile, nil
}
