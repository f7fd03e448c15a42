// Package engine implements the grade-aggregation pipeline: header
// normalization, sheet classification, row merging, authentication, and
// per-course scoring. It operates on already-parsed tabular data and
// performs no I/O.
package engine

import (
	"strings"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// Canonical field names used internally regardless of the workbook's
// original header text.
const (
	FieldStudentID  = "Student ID"
	FieldAccessCode = "Access Code"
	FieldFirstName  = "First Name"
	FieldLastName   = "Last Name"
	FieldCourse     = "Course"
	FieldTerm       = "Term"
	FieldAssessment = "Assessment"
	FieldScore      = "Score"
	FieldOutOf      = "Out Of"
	FieldWeight     = "Weight %"
	FieldSecret     = "Secret"
)

// defaultSynonyms maps normalized header spellings to canonical field names.
// The canonical spellings themselves are included so that normalization is
// idempotent.
var defaultSynonyms = map[string]string{
	"student id":      FieldStudentID,
	"id":              FieldStudentID,
	"sid":             FieldStudentID,
	"student_number":  FieldStudentID,
	"student num":     FieldStudentID,
	"studentno":       FieldStudentID,
	"student#":        FieldStudentID,
	"access code":     FieldAccessCode,
	"code":            FieldAccessCode,
	"login code":      FieldAccessCode,
	"passcode":        FieldAccessCode,
	"access_code":     FieldAccessCode,
	"first name":      FieldFirstName,
	"first":           FieldFirstName,
	"given":           FieldFirstName,
	"last name":       FieldLastName,
	"last":            FieldLastName,
	"family":          FieldLastName,
	"surname":         FieldLastName,
	"course":          FieldCourse,
	"class":           FieldCourse,
	"section":         FieldCourse,
	"term":            FieldTerm,
	"semester":        FieldTerm,
	"session":         FieldTerm,
	"assessment":      FieldAssessment,
	"assignment":      FieldAssessment,
	"quiz":            FieldAssessment,
	"test":            FieldAssessment,
	"task":            FieldAssessment,
	"name":            FieldAssessment,
	"score":           FieldScore,
	"mark":            FieldScore,
	"points":          FieldScore,
	"grade":           FieldScore,
	"out of":          FieldOutOf,
	"max":             FieldOutOf,
	"total":           FieldOutOf,
	"points possible": FieldOutOf,
	"denominator":     FieldOutOf,
	"weight":          FieldWeight,
	"weight %":        FieldWeight,
	"%":               FieldWeight,
	"percent":         FieldWeight,
	"percentage":      FieldWeight,
	"secret":          FieldSecret,
	"pin":             FieldSecret,
	"dob_last4":       FieldSecret,
}

// AliasTable maps a normalized raw header to a canonical field name.
// It is built from the workbook's alias sheet and is empty when no such
// sheet exists.
type AliasTable map[string]string

// normalizeKey lowercases and trims a header for comparison.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// resolveCanonical maps an alias-sheet Value to its canonical display form.
// A value that is itself a known synonym resolves through the synonym table;
// anything else is kept verbatim (trimmed) so aliases can introduce custom
// pass-through columns.
func resolveCanonical(value string) string {
	if c, ok := defaultSynonyms[normalizeKey(value)]; ok {
		return c
	}
	return strings.TrimSpace(value)
}

// BuildAliasTable reads an alias sheet with Key and Value columns into an
// AliasTable. Key is the raw header as it appears in the workbook, Value the
// canonical name it should map to. Rows missing either cell are skipped.
func BuildAliasTable(sheet models.TabularSheet) AliasTable {
	keyHeader, valueHeader := "", ""
	for _, h := range sheet.Headers {
		switch normalizeKey(h) {
		case "key":
			keyHeader = h
		case "value":
			valueHeader = h
		}
	}

	aliases := make(AliasTable)
	if keyHeader == "" || valueHeader == "" {
		return aliases
	}
	for _, row := range sheet.Rows {
		k := normalizeKey(row[keyHeader])
		v := row[valueHeader]
		if k == "" || strings.TrimSpace(v) == "" {
			continue
		}
		aliases[k] = resolveCanonical(v)
	}
	return aliases
}

// CanonicalName maps one raw header to its canonical field name. Alias-table
// entries win over the built-in synonyms; a header with no mapping passes
// through trimmed but otherwise verbatim so downstream rows retain extra
// columns.
func CanonicalName(header string, aliases AliasTable) string {
	k := normalizeKey(header)
	if c, ok := aliases[k]; ok {
		return c
	}
	if c, ok := defaultSynonyms[k]; ok {
		return c
	}
	return strings.TrimSpace(header)
}

// NormalizeHeaders maps each raw header of a sheet to its canonical field
// name. The result maps raw header text to canonical name for every header.
func NormalizeHeaders(headers []string, aliases AliasTable) map[string]string {
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		out[h] = CanonicalName(h, aliases)
	}
	return out
}
