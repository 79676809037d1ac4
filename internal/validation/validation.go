package validation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/practicelog/internal/constants"
	"github.com/julianstephens/practicelog/internal/models"
	"github.com/julianstephens/practicelog/internal/textnorm"
)

// ErrInvalidHeader is returned when the first six columns are not the activity log header
var ErrInvalidHeader = errors.New("invalid CSV header format")

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictColumnCount        ConflictType = "invalid_column_count"
	ConflictInvalidDateTime    ConflictType = "invalid_datetime"
	ConflictInvalidLength      ConflictType = "invalid_length"
	ConflictInvalidType        ConflictType = "invalid_activity_type"
	ConflictEmptyPiece         ConflictType = "empty_piece_name"
	ConflictInvalidLevel       ConflictType = "invalid_level"
	ConflictLevelOutOfRange    ConflictType = "level_out_of_range"
	ConflictNearDuplicatePiece ConflictType = "near_duplicate_piece"
)

// requiredColumns is how many leading columns the tracker app reads; Notes is optional
const requiredColumns = 6

// Conflict represents a problem found in the activity log
type Conflict struct {
	Type        ConflictType
	Description string
	Line        int      // record number, header is 1 (0 when not tied to a line)
	Items       []string // piece names involved
}

// IsWarning reports whether the conflict would still let the line import
func (c Conflict) IsWarning() bool {
	return c.Type == ConflictNearDuplicatePiece
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
	// Activities counts lines that would import
	Activities int
	// Pieces holds the normalized names of importable lines, sorted
	Pieces []string
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors returns true if any line would be rejected on import
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if !c.IsWarning() {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks long-format activity logs against the tracker app's import rules
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHeader checks the leading columns of the header row
func (v *Validator) ValidateHeader(header []string) error {
	if len(header) < requiredColumns {
		return ErrInvalidHeader
	}
	for i := 0; i < requiredColumns; i++ {
		if header[i] != constants.LongHeader[i] {
			return ErrInvalidHeader
		}
	}
	return nil
}

// ValidateLog reads an activity log and reports every line the app would
// reject. Only the first problem on a line is reported.
func (v *Validator) ValidateLog(r io.Reader) (ValidationResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return ValidationResult{}, ErrInvalidHeader
	}
	if err != nil {
		return ValidationResult{}, fmt.Errorf("failed to read header: %w", err)
	}
	if err := v.ValidateHeader(header); err != nil {
		return ValidationResult{}, err
	}

	result := ValidationResult{Conflicts: []Conflict{}}
	spellings := make(map[string]map[string]bool)

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		if conflict, ok := v.ValidateRow(row, line); !ok {
			result.Conflicts = append(result.Conflicts, conflict)
			continue
		}

		result.Activities++
		raw := row[constants.ColPiece]
		name := textnorm.PieceName(raw)
		if spellings[name] == nil {
			spellings[name] = make(map[string]bool)
		}
		spellings[name][raw] = true
	}

	for name, raws := range spellings {
		result.Pieces = append(result.Pieces, name)
		if len(raws) < 2 {
			continue
		}
		items := make([]string, 0, len(raws))
		for raw := range raws {
			items = append(items, raw)
		}
		sort.Strings(items)
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNearDuplicatePiece,
			Description: fmt.Sprintf("Piece %q is spelled %d ways: %s", name, len(items), quoteAll(items)),
			Items:       items,
		})
	}
	sort.Strings(result.Pieces)
	sort.SliceStable(result.Conflicts, func(i, j int) bool {
		ci, cj := result.Conflicts[i], result.Conflicts[j]
		if ci.Line != cj.Line {
			// line-level conflicts first, in file order
			return ci.Line != 0 && (cj.Line == 0 || ci.Line < cj.Line)
		}
		return ci.Description < cj.Description
	})

	return result, nil
}

// ValidateRow checks one data record. It returns false and the first
// conflict found when the app would skip the line.
func (v *Validator) ValidateRow(row []string, line int) (Conflict, bool) {
	fail := func(t ConflictType, format string, args ...interface{}) (Conflict, bool) {
		return Conflict{
			Type:        t,
			Description: fmt.Sprintf("Line %d: ", line) + fmt.Sprintf(format, args...),
			Line:        line,
		}, false
	}

	if len(row) < requiredColumns {
		return fail(ConflictColumnCount, "Invalid number of columns")
	}

	if _, err := time.Parse(constants.DateTimeFormat, row[constants.ColDateTime]); err != nil {
		return fail(ConflictInvalidDateTime, "Invalid datetime format '%s' (expected: yyyy-MM-dd HH:mm:ss)", row[constants.ColDateTime])
	}

	if _, err := strconv.Atoi(row[constants.ColLength]); err != nil {
		return fail(ConflictInvalidLength, "Invalid minutes value '%s'", row[constants.ColLength])
	}

	activityType, err := models.ParseActivityType(row[constants.ColActivityType])
	if err != nil {
		return fail(ConflictInvalidType, "Invalid activity type '%s'", row[constants.ColActivityType])
	}

	if textnorm.PieceName(row[constants.ColPiece]) == "" {
		return fail(ConflictEmptyPiece, "Empty piece name")
	}

	level, err := strconv.Atoi(row[constants.ColLevel])
	if err != nil {
		return fail(ConflictInvalidLevel, "Invalid level '%s'", row[constants.ColLevel])
	}

	if level < constants.MinLevel || level > activityType.MaxLevel() {
		return fail(ConflictLevelOutOfRange, "Invalid %s level %d (must be %d-%d)",
			strings.ToLower(string(activityType)), level, constants.MinLevel, activityType.MaxLevel())
	}

	return Conflict{}, true
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}
