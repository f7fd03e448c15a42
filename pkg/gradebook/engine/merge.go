package engine

import (
	"strconv"
	"strings"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// UnifiedTable is the merged grade table across all grade-data sheets.
// Rows keep (sheet order, then intra-sheet row order) so detail tables
// display in a stable order. The table is built once per loaded workbook
// and never mutated afterwards.
type UnifiedTable struct {
	Rows []models.GradeRow `json:"rows"`
	// Dropped counts rows excluded for missing a required field.
	Dropped int `json:"dropped"`
	// DroppedBySheet breaks the drop count down by originating sheet.
	DroppedBySheet map[string]int `json:"dropped_by_sheet,omitempty"`
}

// parseNumber parses a cell as a float. Empty cells are not numbers.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// fieldValues resolves one raw row to canonical field -> trimmed cell text.
// When several raw headers map to the same canonical field, the first
// non-empty cell in header order wins.
func fieldValues(sheet models.TabularSheet, row models.RawRow, aliases AliasTable) map[string]string {
	out := make(map[string]string, len(sheet.Headers))
	for _, h := range sheet.Headers {
		field := CanonicalName(h, aliases)
		v := strings.TrimSpace(row[h])
		if out[field] == "" {
			out[field] = v
		}
	}
	return out
}

// Merge stacks normalized rows from every grade-data sheet into one
// UnifiedTable. Missing optional fields take their defaults (OutOf ->
// defaultOutOf, others empty); rows missing any required field (Student ID,
// Course, Assessment, or a numeric Score) are dropped and counted, never
// fatal. The Sheet field records each row's originating sheet.
func Merge(wb models.Workbook, cls Classification, aliases AliasTable, defaultOutOf float64) UnifiedTable {
	table := UnifiedTable{DroppedBySheet: make(map[string]int)}

	for _, name := range cls.GradeSheets {
		sheet, ok := wb.Sheet(name)
		if !ok {
			continue
		}
		for _, raw := range sheet.Rows {
			fields := fieldValues(sheet, raw, aliases)

			score, scoreOK := parseNumber(fields[FieldScore])
			if fields[FieldStudentID] == "" || fields[FieldCourse] == "" ||
				fields[FieldAssessment] == "" || !scoreOK {
				table.Dropped++
				table.DroppedBySheet[name]++
				continue
			}

			outOf, ok := parseNumber(fields[FieldOutOf])
			if !ok {
				outOf = defaultOutOf
			}

			row := models.GradeRow{
				StudentID:  fields[FieldStudentID],
				Course:     fields[FieldCourse],
				Assessment: fields[FieldAssessment],
				Score:      score,
				OutOf:      outOf,
				Term:       fields[FieldTerm],
				FirstName:  fields[FieldFirstName],
				LastName:   fields[FieldLastName],
				Secret:     fields[FieldSecret],
				Sheet:      name,
			}
			if w, ok := parseNumber(fields[FieldWeight]); ok {
				row.Weight = &w
			}
			table.Rows = append(table.Rows, row)
		}
	}
	return table
}
