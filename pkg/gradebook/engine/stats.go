package engine

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// CourseStats computes cohort statistics per course: the mean, median,
// standard deviation, minimum and maximum of each enrolled student's
// overall course percentage. Students whose course has no computable score
// are excluded. Intended for the instructor-facing inspect surface, not the
// student view.
func CourseStats(rows []models.GradeRow) []models.CourseStats {
	type key struct{ course, student string }
	grouped := make(map[key][]models.GradeRow)
	for _, r := range rows {
		k := key{r.Course, normalizeKey(r.StudentID)}
		grouped[k] = append(grouped[k], r)
	}

	percents := make(map[string][]float64)
	for k, courseRows := range grouped {
		pct, basis := courseTotal(courseRows)
		if basis == models.BasisNone {
			continue
		}
		percents[k.course] = append(percents[k.course], pct)
	}

	out := make([]models.CourseStats, 0, len(percents))
	for course, data := range percents {
		mean, _ := stats.Mean(data)
		median, _ := stats.Median(data)
		stddev, _ := stats.StandardDeviation(data)
		min, _ := stats.Min(data)
		max, _ := stats.Max(data)
		out = append(out, models.CourseStats{
			Course:    course,
			Students:  len(data),
			MeanPct:   mean,
			MedianPct: median,
			StdDevPct: stddev,
			MinPct:    min,
			MaxPct:    max,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Course < out[j].Course })
	return out
}
