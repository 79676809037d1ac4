package convert

import (
	"errors"
	"sort"
	"strings"

	"github.com/julianstephens/practicelog/internal/logger"
	"github.com/julianstephens/practicelog/internal/models"
	"github.com/julianstephens/practicelog/internal/textnorm"
)

// ErrNoActivities is returned when no cell of the export decodes to an activity
var ErrNoActivities = errors.New("no activities produced")

// DiscardReason says why a cell produced no activity
type DiscardReason string

const (
	DiscardEmpty         DiscardReason = "empty"
	DiscardNoHeader      DiscardReason = "no_header"
	DiscardNonDateHeader DiscardReason = "non_date_header"
	DiscardUndecodable   DiscardReason = "undecodable"
)

// DiscardReasons lists every reason in report order
var DiscardReasons = []DiscardReason{
	DiscardEmpty,
	DiscardNoHeader,
	DiscardNonDateHeader,
	DiscardUndecodable,
}

// Options tune a conversion
type Options struct {
	// NormalizeNames canonicalizes piece names with textnorm.PieceName
	NormalizeNames bool
}

// Stats records how much of the export was read and why input was dropped
type Stats struct {
	RowsRead    int
	RowsSkipped int
	Discarded   map[DiscardReason]int
}

// TotalDiscarded returns the number of cells dropped for any reason
func (s Stats) TotalDiscarded() int {
	total := 0
	for _, n := range s.Discarded {
		total += n
	}
	return total
}

// Result is the outcome of converting a sheet
type Result struct {
	// Activities sorted by timestamp, ties in sheet order
	Activities []models.ActivityRow
	// Pieces holds every distinct piece name seen, sorted
	Pieces []string
	Stats  Stats
}

// Convert walks every (row, column) cell of the sheet and emits one activity
// per cell that is non-empty, sits under a date column and decodes.
func Convert(sheet *Sheet, opts Options) Result {
	res := Result{
		Stats: Stats{
			RowsRead:    len(sheet.Records) + sheet.BlankRows,
			RowsSkipped: sheet.BlankRows,
			Discarded:   make(map[DiscardReason]int),
		},
	}
	if sheet.Overflow > 0 {
		res.Stats.Discarded[DiscardNoHeader] = sheet.Overflow
		logger.Debug("Discarded cells past the last header column", "count", sheet.Overflow)
	}

	seen := make(map[string]bool)
	for _, rec := range sheet.Records {
		piece := rec.PieceName
		if opts.NormalizeNames {
			piece = textnorm.PieceName(piece)
			if piece == "" {
				res.Stats.RowsSkipped++
				logger.Debug("Skipped row with blank normalized name", "raw", rec.PieceName)
				continue
			}
		}
		if !seen[piece] {
			seen[piece] = true
			res.Pieces = append(res.Pieces, piece)
		}

		for _, cell := range rec.Cells {
			code := strings.TrimSpace(cell.Code)
			if code == "" {
				res.Stats.Discarded[DiscardEmpty]++
				continue
			}

			date, ok := ParseHeaderDate(cell.DateKey)
			if !ok {
				res.Stats.Discarded[DiscardNonDateHeader]++
				logger.Debug("Discarded cell under non-date column", "piece", piece, "column", cell.DateKey, "code", code)
				continue
			}

			decoded, ok := Decode(code)
			if !ok {
				res.Stats.Discarded[DiscardUndecodable]++
				logger.Debug("Discarded undecodable cell", "piece", piece, "date", date, "code", code)
				continue
			}

			res.Activities = append(res.Activities, models.NewActivityRow(date, piece, decoded))
		}
	}

	SortActivities(res.Activities)
	sort.Strings(res.Pieces)
	return res
}

// SortActivities orders rows by timestamp. The timestamp layout is fixed
// width, so string order is chronological; equal timestamps keep their order.
func SortActivities(rows []models.ActivityRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp < rows[j].Timestamp
	})
}
