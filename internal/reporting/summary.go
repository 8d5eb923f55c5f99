package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ecomtop/topsel/internal/orchestration"
	"github.com/ecomtop/topsel/internal/schema"
)

// WriteSummary renders a human-readable run summary. fancy enables the
// aligned top-listings table (intended for terminals); otherwise only the
// per-file lines are printed. Product names are CJK-heavy, so alignment
// uses display width, not rune count.
func WriteSummary(w io.Writer, batch *orchestration.BatchResult, fancy bool) {
	for _, f := range batch.Files {
		mode := "standard"
		if f.HolidayMode {
			mode = "holiday"
		}
		fmt.Fprintf(w, "%s: kept %d/%d rows (scenario %s, %s mode, filter %s)\n",
			f.Path, f.RowsKept, f.RowsIn, f.Scenario, mode, f.FilterTier)
	}
	for _, s := range batch.Skipped {
		fmt.Fprintf(w, "%s: skipped (%s)\n", s.Path, s.Reason)
	}
	fmt.Fprintf(w, "selected %d listings\n", len(batch.Selected))

	if !fancy || len(batch.Selected) == 0 {
		return
	}

	nameWidth := runewidth.StringWidth("product")
	shown := batch.Selected
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, r := range shown {
		if w := runewidth.StringWidth(r.Record.Text(schema.ProductName)); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Fprintf(w, "\n  #  %s  score\n", pad("product", nameWidth))
	fmt.Fprintf(w, "  -  %s  -----\n", strings.Repeat("-", nameWidth))
	for i, r := range shown {
		fmt.Fprintf(w, "%3d  %s  %.4f\n", i+1, pad(r.Record.Text(schema.ProductName), nameWidth), r.Total)
	}
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}
