package convert

import (
	"github.com/julianstephens/practicelog/internal/models"
)

// Summary is the report printed after a conversion
type Summary struct {
	Pieces     int
	Activities int
	First      string
	Last       string
	Breakdown  []models.PieceSummary
	Stats      Stats
	Output     string
	Bytes      int64
}

// Summarize aggregates a result per piece. It fails with ErrNoActivities
// when there is no date range to report.
func Summarize(res Result) (Summary, error) {
	if len(res.Activities) == 0 {
		return Summary{}, ErrNoActivities
	}

	counts := make(map[string]*models.PieceSummary, len(res.Pieces))
	breakdown := make([]models.PieceSummary, len(res.Pieces))
	for i, piece := range res.Pieces {
		breakdown[i].Piece = piece
		counts[piece] = &breakdown[i]
	}

	first, last := res.Activities[0].Timestamp, res.Activities[0].Timestamp
	for _, a := range res.Activities {
		if a.Timestamp < first {
			first = a.Timestamp
		}
		if a.Timestamp > last {
			last = a.Timestamp
		}

		ps, ok := counts[a.Piece]
		if !ok {
			continue
		}
		switch a.Type {
		case models.ActivityPractice:
			ps.Practices++
		case models.ActivityPerformance:
			ps.Performances++
		}
	}

	return Summary{
		Pieces:     len(res.Pieces),
		Activities: len(res.Activities),
		First:      first,
		Last:       last,
		Breakdown:  breakdown,
		Stats:      res.Stats,
	}, nil
}
