package engine

import (
	"sort"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// courseTotal computes the overall percentage for one course's rows.
// When any row carries a weight, the score is the weighted average over the
// weighted rows only; unweighted rows in the same course do not contribute.
// Otherwise the score is total points over total possible. A course whose
// weights sum to zero, or whose point denominator is zero, has no score.
func courseTotal(rows []models.GradeRow) (float64, models.Basis) {
	weighted := false
	for _, r := range rows {
		if r.Weight != nil {
			weighted = true
			break
		}
	}

	if weighted {
		var contrib, weightSum float64
		for _, r := range rows {
			if r.Weight == nil {
				continue
			}
			outOf := r.OutOf
			if outOf == 0 {
				outOf = 100
			}
			contrib += r.Score / outOf * *r.Weight
			weightSum += *r.Weight
		}
		if weightSum == 0 {
			return 0, models.BasisNone
		}
		return contrib / weightSum * 100, models.BasisWeighted
	}

	var scoreSum, outOfSum float64
	for _, r := range rows {
		scoreSum += r.Score
		outOfSum += r.OutOf
	}
	if outOfSum == 0 {
		return 0, models.BasisNone
	}
	return scoreSum / outOfSum * 100, models.BasisPoints
}

// Summarize filters the unified table to the student's rows (and, when
// course is non-empty, to that exact course) and returns per-course
// summaries plus the matching detail rows. Details keep unified-table order;
// summaries are sorted by course name for stable display. An empty result
// is a normal outcome meaning no grades were found.
func Summarize(rows []models.GradeRow, studentID, course string) ([]models.CourseSummary, []models.GradeRow) {
	id := normalizeKey(studentID)

	var details []models.GradeRow
	byCourse := make(map[string][]models.GradeRow)
	for _, r := range rows {
		if normalizeKey(r.StudentID) != id {
			continue
		}
		if course != "" && r.Course != course {
			continue
		}
		details = append(details, r)
		byCourse[r.Course] = append(byCourse[r.Course], r)
	}

	summaries := make([]models.CourseSummary, 0, len(byCourse))
	for name, courseRows := range byCourse {
		pct, basis := courseTotal(courseRows)
		summaries = append(summaries, models.CourseSummary{
			Course:      name,
			ScorePct:    pct,
			Basis:       basis,
			Assessments: len(courseRows),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Course < summaries[j].Course
	})
	return summaries, details
}
