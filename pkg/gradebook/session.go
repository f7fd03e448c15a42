package gradebook

import (
	"github.com/necbot/gradebook-go/pkg/gradebook/engine"
	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// Gradebook is the session context object derived from one loaded workbook:
// alias table, sheet classification, credential records, and the unified
// grade table. It is built once per load, is immutable afterwards, and never
// writes anything back to its source.
type Gradebook struct {
	opts           Options
	aliases        engine.AliasTable
	classification engine.Classification
	credentials    []models.Credential
	table          engine.UnifiedTable
}

// LoadReport describes what a workbook load produced, for the teacher-facing
// setup surface: which sheet played which role and how many rows survived.
type LoadReport struct {
	AliasSheet       string         `json:"alias_sheet,omitempty"`
	CredentialsSheet string         `json:"credentials_sheet,omitempty"`
	GradeSheets      []string       `json:"grade_sheets"`
	Rows             int            `json:"rows"`
	Dropped          int            `json:"dropped"`
	DroppedBySheet   map[string]int `json:"dropped_by_sheet,omitempty"`
}

// QueryResult is one student's view: per-course summaries plus detail rows
// in stable (sheet, row) order. Recomputed on each query, never stored.
type QueryResult struct {
	Summaries []models.CourseSummary `json:"summaries"`
	Details   []models.GradeRow      `json:"details"`
	// NoGrades marks an empty, valid result: the login was fine but no
	// grade rows exist for the student.
	NoGrades bool `json:"no_grades,omitempty"`
}

// Build assembles a Gradebook from already-parsed tabular data. It performs
// no I/O; use Load or LoadReader to go from an .xlsx file.
func Build(wb models.Workbook, opts Options) *Gradebook {
	aliases := engine.AliasTable{}
	params := engine.ClassifyParams{
		AliasSheetName:       opts.AliasSheet(),
		CredentialSheetNames: opts.CredentialSheets(),
	}

	// The alias table must exist before classification so aliased headers
	// count toward credentials detection.
	cls := engine.Classify(wb, aliases, params)
	if cls.AliasSheet != "" {
		if sheet, ok := wb.Sheet(cls.AliasSheet); ok {
			aliases = engine.BuildAliasTable(sheet)
			cls = engine.Classify(wb, aliases, params)
		}
	}

	var creds []models.Credential
	if cls.CredentialsSheet != "" {
		if sheet, ok := wb.Sheet(cls.CredentialsSheet); ok {
			creds = engine.ExtractCredentials(sheet, aliases)
		}
	}

	return &Gradebook{
		opts:           opts,
		aliases:        aliases,
		classification: cls,
		credentials:    creds,
		table:          engine.Merge(wb, cls, aliases, opts.OutOfDefault()),
	}
}

// Classification returns the sheet role assignment.
func (g *Gradebook) Classification() engine.Classification {
	return g.classification
}

// HasCredentials reports whether a credentials source exists. When false the
// gradebook runs in the degraded Student-ID(+Secret)-only mode; that is a
// recognized state, not an error.
func (g *Gradebook) HasCredentials() bool {
	return len(g.credentials) > 0
}

// Rows returns the unified grade table rows in stable (sheet, row) order.
func (g *Gradebook) Rows() []models.GradeRow {
	return g.table.Rows
}

// LoadReport returns sheet roles and row/drop counts for the load.
func (g *Gradebook) LoadReport() LoadReport {
	return LoadReport{
		AliasSheet:       g.classification.AliasSheet,
		CredentialsSheet: g.classification.CredentialsSheet,
		GradeSheets:      g.classification.GradeSheets,
		Rows:             len(g.table.Rows),
		Dropped:          g.table.Dropped,
		DroppedBySheet:   g.table.DroppedBySheet,
	}
}

// Authenticate validates the student's login tuple. On rejection the error
// is an *AuthError carrying the reason code.
func (g *Gradebook) Authenticate(studentID, accessCode, secret string) (engine.AuthResult, error) {
	res, reason := engine.Authenticate(g.credentials, g.table.Rows, studentID, accessCode, secret)
	if reason != "" {
		return engine.AuthResult{}, &AuthError{Reason: reason}
	}
	return res, nil
}

// Query returns the student's per-course summaries and detail rows. When the
// student spans multiple courses and no course is given, it returns an
// *AmbiguousCourseError carrying the distinct course set instead of details.
// An empty result with NoGrades set is normal, not an error.
func (g *Gradebook) Query(studentID, course string) (QueryResult, error) {
	if course == "" {
		if courses := engine.DistinctCourses(g.table.Rows, studentID); len(courses) > 1 {
			return QueryResult{}, &AmbiguousCourseError{Courses: courses}
		}
	}
	summaries, details := engine.Summarize(g.table.Rows, studentID, course)
	return QueryResult{
		Summaries: summaries,
		Details:   details,
		NoGrades:  len(details) == 0,
	}, nil
}

// CourseStats returns cohort statistics per course for the instructor view.
func (g *Gradebook) CourseStats() []models.CourseStats {
	return engine.CourseStats(g.table.Rows)
}
