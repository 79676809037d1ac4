// Package report renders command summaries for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/practicelog/internal/convert"
	"github.com/julianstephens/practicelog/internal/expand"
	"github.com/julianstephens/practicelog/internal/validation"
)

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "- %s %s\n", labelStyle.Render(label+":"), value)
}

// Conversion prints the summary of a convert run and the per-piece breakdown
func Conversion(w io.Writer, s convert.Summary) {
	fmt.Fprintln(w, titleStyle.Render("Conversion complete!"))
	line(w, "Unique pieces", humanize.Comma(int64(s.Pieces)))
	line(w, "Activities", humanize.Comma(int64(s.Activities)))
	line(w, "Date range", fmt.Sprintf("%s to %s", s.First, s.Last))
	line(w, "Output written to", fmt.Sprintf("%s (%s)", s.Output, humanize.Bytes(uint64(max(s.Bytes, 0)))))

	if discarded := s.Stats.TotalDiscarded(); discarded > 0 {
		var parts []string
		for _, reason := range convert.DiscardReasons {
			if n := s.Stats.Discarded[reason]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s=%d", reason, n))
			}
		}
		line(w, "Discarded cells", fmt.Sprintf("%s (%s)", humanize.Comma(int64(discarded)), strings.Join(parts, ", ")))
	}
	if s.Stats.RowsSkipped > 0 {
		line(w, "Skipped rows", warningStyle.Render(fmt.Sprintf("%d without a piece name", s.Stats.RowsSkipped)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Pieces found:"))

	rows := make([][]string, 0, len(s.Breakdown))
	for _, p := range s.Breakdown {
		rows = append(rows, []string{p.Piece, strconv.Itoa(p.Practices), strconv.Itoa(p.Performances)})
	}
	fmt.Fprintln(w, newTable([]string{"Piece", "Practices", "Performances"}, rows).Render())
}

// Expansion prints the summary of an expand or shift run
func Expansion(w io.Writer, output string, opts expand.Options, stats expand.Stats) {
	years := make([]string, len(opts.Targets))
	for i, y := range opts.Targets {
		years[i] = strconv.Itoa(y)
	}

	fmt.Fprintln(w, titleStyle.Render("Expansion complete!"))
	line(w, "Source year", strconv.Itoa(opts.Source))
	line(w, "Target years", strings.Join(years, ", "))
	line(w, "Rows read", humanize.Comma(int64(stats.RowsRead)))
	line(w, "Rows written", humanize.Comma(int64(stats.RowsWritten)))
	if stats.Unchanged > 0 {
		line(w, "Passed through", warningStyle.Render(fmt.Sprintf("%d rows did not start with %d", stats.Unchanged, opts.Source)))
	}
	line(w, "Output written to", output)
}

// Check prints the outcome of validating an activity log
func Check(w io.Writer, path string, res validation.ValidationResult) {
	fmt.Fprintln(w, titleStyle.Render("Checked "+path))
	line(w, "Importable activities", humanize.Comma(int64(res.Activities)))
	line(w, "Unique pieces", humanize.Comma(int64(len(res.Pieces))))
	fmt.Fprintln(w)

	switch {
	case !res.HasConflicts():
		fmt.Fprintln(w, okStyle.Render("✓ "+res.FormatReport()))
	case res.HasErrors():
		fmt.Fprint(w, dangerStyle.Render(res.FormatReport()))
		fmt.Fprintln(w)
	default:
		fmt.Fprint(w, warningStyle.Render(res.FormatReport()))
		fmt.Fprintln(w)
	}
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case col > 0:
				return numberCellStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
}
