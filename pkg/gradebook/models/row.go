package models

// GradeRow represents a single assessment record in canonical form.
type GradeRow struct {
	// StudentID identifies the student (required).
	StudentID string `json:"student_id"`
	// Course is the course the assessment belongs to (required).
	Course string `json:"course"`
	// Assessment names the assessment (required).
	Assessment string `json:"assessment"`
	// Score is the points earned (required).
	Score float64 `json:"score"`
	// OutOf is the maximum points; defaults to 100 when the column is absent.
	OutOf float64 `json:"out_of"`
	// Weight is the contribution weight in percent, nil when unweighted.
	Weight *float64 `json:"weight,omitempty"`
	// Term is the term or semester (optional, display only).
	Term string `json:"term,omitempty"`
	// FirstName is the student's first name (optional, display only).
	FirstName string `json:"first_name,omitempty"`
	// LastName is the student's last name (optional, display only).
	LastName string `json:"last_name,omitempty"`
	// Secret is a per-row PIN enabling the secret gate (optional).
	Secret string `json:"secret,omitempty"`
	// Sheet records the originating sheet name for traceability.
	Sheet string `json:"sheet"`
}

// Percent returns the row score as a percentage of OutOf.
// An OutOf of zero is treated as the 100-point default.
func (r GradeRow) Percent() float64 {
	outOf := r.OutOf
	if outOf == 0 {
		outOf = 100
	}
	return r.Score / outOf * 100
}
