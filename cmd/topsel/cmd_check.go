package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/ecomtop/topsel/internal/dataset"
	"github.com/ecomtop/topsel/internal/resolve"
	"github.com/ecomtop/topsel/internal/schema"
	"github.com/ecomtop/topsel/internal/weights"
)

var checkConfigPath string

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report field coverage for export files",
		Long: `Check which canonical fields each file's columns resolve to, which are
missing, and which weight scenario the file would be scored under. Useful
before a scoring run to see whether an export is usable at all.`,
		Args: cobra.MinimumNArgs(1),
		RunE: checkCommandE,
	}

	cmd.Flags().StringVar(&checkConfigPath, "config", "", "Scoring profile YAML (default: built-in profile)")

	return cmd
}

func checkCommandE(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(checkConfigPath)
	if err != nil {
		return err
	}
	table := profile.AliasTable()
	out := cmd.OutOrStdout()

	for _, path := range args {
		t, err := dataset.Load(path)
		if err != nil {
			return err
		}

		mapping := resolve.Columns(t.Columns, table)
		resolved := mapping.Resolved()

		fmt.Fprintf(out, "%s: %d columns, %d rows\n", path, len(t.Columns), len(t.Rows))

		width := 0
		for _, col := range t.Columns {
			if w := runewidth.StringWidth(col); w > width {
				width = w
			}
		}
		for _, col := range t.Columns {
			pad := strings.Repeat(" ", width-runewidth.StringWidth(col))
			if field, ok := mapping[col]; ok {
				fmt.Fprintf(out, "  %s%s -> %s\n", col, pad, field)
			} else {
				fmt.Fprintf(out, "  %s%s -> (dropped)\n", col, pad)
			}
		}

		if missing := mapping.Missing(); len(missing) > 0 {
			names := make([]string, len(missing))
			for i, f := range missing {
				names[i] = string(f)
			}
			fmt.Fprintf(out, "  missing: %s\n", strings.Join(names, ", "))
		}

		fmt.Fprintf(out, "  %s\n\n", scenarioSummary(resolved, profile.Vector()))
	}

	return nil
}

func scenarioSummary(resolved map[schema.Field]bool, base weights.Vector) string {
	_, scenario, err := weights.Allocate(base, resolved)
	if err != nil {
		return "scenario D: not scorable (no sales/GMV field pair)"
	}
	switch scenario {
	case weights.ScenarioA:
		return "scenario A: both sales/GMV pairs present"
	case weights.ScenarioB:
		return "scenario B: 30-day data only, 7-day weights reallocated"
	default:
		return "scenario C: 7-day data only, 30-day weights reallocated"
	}
}
