package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/practicelog/internal/models"
)

// ErrEmptyInput is returned when the wide export has no header row
var ErrEmptyInput = errors.New("input has no header row")

// Sheet is the wide export held in memory: date labels from the header and
// one record per piece row.
type Sheet struct {
	// Labels holds header columns 1..N, trimmed. Labels[i] heads Cells[i].
	Labels  []string
	Records []models.WideRecord

	// BlankRows counts data rows dropped for having no piece name
	BlankRows int
	// Overflow counts non-empty cells in columns past the end of the header
	Overflow int
}

// ReadSheet parses a wide export. Column 0 of the header is ignored; column 0
// of every other row is the piece name.
func ReadSheet(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	sheet := &Sheet{}
	for _, label := range header[min(1, len(header)):] {
		sheet.Labels = append(sheet.Labels, strings.TrimSpace(label))
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			sheet.BlankRows++
			continue
		}

		rec := models.WideRecord{PieceName: strings.TrimSpace(row[0])}
		for i, code := range row[1:] {
			if i >= len(sheet.Labels) {
				if strings.TrimSpace(code) != "" {
					sheet.Overflow++
				}
				continue
			}
			rec.Cells = append(rec.Cells, models.Cell{DateKey: sheet.Labels[i], Code: code})
		}
		sheet.Records = append(sheet.Records, rec)
	}

	return sheet, nil
}
