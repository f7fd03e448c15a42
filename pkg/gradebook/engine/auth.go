package engine

import (
	"strings"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// RejectReason identifies why authentication was rejected. The distinct
// codes are for the caller; user-facing messages should stay generic so an
// attacker cannot tell an unknown ID from a wrong code.
type RejectReason string

const (
	// ReasonUnknownStudent means the ID is absent from the credentials sheet.
	ReasonUnknownStudent RejectReason = "unknown_student"
	// ReasonBadAccessCode means the supplied access code did not match.
	ReasonBadAccessCode RejectReason = "bad_access_code"
	// ReasonBadSecret means the supplied per-row secret did not match.
	ReasonBadSecret RejectReason = "bad_secret"
)

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	Granted bool `json:"granted"`
	// Courses is the distinct set of courses the student has rows in, in
	// first-seen unified-table order.
	Courses []string `json:"courses"`
	// MultipleCourses reports that the caller must supply a course
	// selection before detail rows can be shown.
	MultipleCourses bool `json:"multiple_courses"`
}

// ExtractCredentials reads the credentials sheet into credential records.
// Rows without a Student ID are skipped; both fields are trimmed but the
// access code is otherwise kept exactly as stored, leading zeros included.
func ExtractCredentials(sheet models.TabularSheet, aliases AliasTable) []models.Credential {
	var creds []models.Credential
	for _, raw := range sheet.Rows {
		fields := fieldValues(sheet, raw, aliases)
		if fields[FieldStudentID] == "" {
			continue
		}
		creds = append(creds, models.Credential{
			StudentID:  fields[FieldStudentID],
			AccessCode: fields[FieldAccessCode],
		})
	}
	return creds
}

// DistinctCourses returns the distinct courses the student has rows in,
// in first-seen table order.
func DistinctCourses(rows []models.GradeRow, studentID string) []string {
	id := normalizeKey(studentID)
	seen := make(map[string]bool)
	var courses []string
	for _, r := range rows {
		if normalizeKey(r.StudentID) != id || seen[r.Course] {
			continue
		}
		seen[r.Course] = true
		courses = append(courses, r.Course)
	}
	return courses
}

// firstSecret returns the first non-empty Secret among the student's rows in
// table order. That value is authoritative even if later rows disagree.
func firstSecret(rows []models.GradeRow, studentID string) string {
	id := normalizeKey(studentID)
	for _, r := range rows {
		if normalizeKey(r.StudentID) == id && r.Secret != "" {
			return r.Secret
		}
	}
	return ""
}

// Authenticate validates a (student ID, access code, secret) tuple against
// the credentials records and the unified grade table. A nil or empty creds
// slice means no credentials source exists: the access-code gate is skipped
// and the secret gate, when a matching row carries one, is the sole check.
// The returned reason is empty exactly when access is granted.
func Authenticate(creds []models.Credential, rows []models.GradeRow, studentID, accessCode, secret string) (AuthResult, RejectReason) {
	id := normalizeKey(studentID)

	if len(creds) > 0 {
		var match *models.Credential
		for i := range creds {
			if normalizeKey(creds[i].StudentID) == id {
				match = &creds[i]
				break
			}
		}
		if match == nil {
			return AuthResult{}, ReasonUnknownStudent
		}
		if match.AccessCode != strings.TrimSpace(accessCode) {
			return AuthResult{}, ReasonBadAccessCode
		}
	}

	if stored := firstSecret(rows, studentID); stored != "" {
		if stored != strings.TrimSpace(secret) {
			return AuthResult{}, ReasonBadSecret
		}
	}

	courses := DistinctCourses(rows, studentID)
	return AuthResult{
		Granted:         true,
		Courses:         courses,
		MultipleCourses: len(courses) > 1,
	}, ""
}
