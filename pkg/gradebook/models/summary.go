package models

// Basis identifies how a course summary score was computed.
type Basis string

const (
	// BasisWeighted means the score is a Weight-%-weighted average.
	BasisWeighted Basis = "weighted"
	// BasisPoints means the score is total points over total possible.
	BasisPoints Basis = "points"
	// BasisNone means no score could be computed for the course.
	BasisNone Basis = "none"
)

// CourseSummary represents the computed overall score for one course.
type CourseSummary struct {
	// Course is the course name.
	Course string `json:"course"`
	// ScorePct is the overall percentage; meaningless when Basis is none.
	ScorePct float64 `json:"score_pct"`
	// Basis records how ScorePct was computed.
	Basis Basis `json:"basis"`
	// Assessments is the number of detail rows in the course.
	Assessments int `json:"assessments"`
}

// CourseStats represents cohort statistics for one course, computed over
// each enrolled student's overall course percentage.
type CourseStats struct {
	Course    string  `json:"course"`
	Students  int     `json:"students"`
	MeanPct   float64 `json:"mean_pct"`
	MedianPct float64 `json:"median_pct"`
	StdDevPct float64 `json:"stddev_pct"`
	MinPct    float64 `json:"min_pct"`
	MaxPct    float64 `json:"max_pct"`
}
