package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/practicelog/internal/constants"
)

// ActivityType is the kind of session recorded for a piece
type ActivityType string

const (
	ActivityPractice    ActivityType = "PRACTICE"
	ActivityPerformance ActivityType = "PERFORMANCE"
)

// ParseActivityType returns the ActivityType named by s
func ParseActivityType(s string) (ActivityType, error) {
	switch ActivityType(s) {
	case ActivityPractice, ActivityPerformance:
		return ActivityType(s), nil
	default:
		return "", fmt.Errorf("invalid activity type %q", s)
	}
}

// MaxLevel returns the highest level the tracker app accepts for the type
func (t ActivityType) MaxLevel() int {
	if t == ActivityPerformance {
		return constants.MaxPerformanceLevel
	}
	return constants.MaxPracticeLevel
}

// DecodedActivity is the meaning of one activity code cell.
type DecodedActivity struct {
	Type            ActivityType
	Level           int
	PerformanceType string
}

// Cell is one (date column, code) pair of a wide row.
type Cell struct {
	DateKey string
	Code    string
}

// WideRecord is one piece row of the spreadsheet export.
type WideRecord struct {
	PieceName string
	Cells     []Cell
}

// ActivityRow is one line of the long-format activity log.
type ActivityRow struct {
	Timestamp       string // YYYY-MM-DD HH:MM:SS
	Length          int    // minutes, constants.UntrackedLength when unknown
	Type            ActivityType
	Piece           string
	Level           int
	PerformanceType string
	Notes           string
}

// NewActivityRow builds the output row for a decoded cell on the given date (YYYY-MM-DD)
func NewActivityRow(date, piece string, decoded DecodedActivity) ActivityRow {
	return ActivityRow{
		Timestamp:       date + " " + constants.ActivityTimeOfDay,
		Length:          constants.UntrackedLength,
		Type:            decoded.Type,
		Piece:           piece,
		Level:           decoded.Level,
		PerformanceType: decoded.PerformanceType,
	}
}

// Record returns the row as CSV fields in constants.LongHeader order
func (r ActivityRow) Record() []string {
	return []string{
		r.Timestamp,
		strconv.Itoa(r.Length),
		string(r.Type),
		r.Piece,
		strconv.Itoa(r.Level),
		r.PerformanceType,
		r.Notes,
	}
}

// PieceSummary holds per-piece activity counts for the conversion report
type PieceSummary struct {
	Piece        string
	Practices    int
	Performances int
}
