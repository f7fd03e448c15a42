package engine

import (
	"math"
	"testing"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

func weightedRow(id, course, name string, score, outOf, weight float64) models.GradeRow {
	return models.GradeRow{
		StudentID: id, Course: course, Assessment: name,
		Score: score, OutOf: outOf, Weight: &weight,
	}
}

func pointsRow(id, course, name string, score, outOf float64) models.GradeRow {
	return models.GradeRow{
		StudentID: id, Course: course, Assessment: name,
		Score: score, OutOf: outOf,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeWeighted(t *testing.T) {
	rows := []models.GradeRow{
		weightedRow("s1", "Math", "Quiz 1", 8, 10, 50),
		weightedRow("s1", "Math", "Quiz 2", 18, 20, 50),
	}

	summaries, details := Summarize(rows, "s1", "")
	if len(summaries) != 1 || len(details) != 2 {
		t.Fatalf("expected 1 summary and 2 details, got %d/%d", len(summaries), len(details))
	}
	s := summaries[0]
	if s.Basis != models.BasisWeighted {
		t.Errorf("expected weighted basis, got %q", s.Basis)
	}
	// (0.8*50 + 0.9*50) / 100 = 85%
	if !approx(s.ScorePct, 85) {
		t.Errorf("expected 85%%, got %v", s.ScorePct)
	}
}

func TestSummarizePoints(t *testing.T) {
	rows := []models.GradeRow{
		pointsRow("s1", "Math", "Quiz 1", 8, 10),
		pointsRow("s1", "Math", "Quiz 2", 18, 20),
	}

	summaries, _ := Summarize(rows, "s1", "")
	s := summaries[0]
	if s.Basis != models.BasisPoints {
		t.Errorf("expected points basis, got %q", s.Basis)
	}
	// (8+18)/(10+20) = 86.67%
	if !approx(s.ScorePct, 26.0/30.0*100) {
		t.Errorf("expected 86.67%%, got %v", s.ScorePct)
	}
}

func TestSummarizeWeightedExcludesUnweightedRows(t *testing.T) {
	rows := []models.GradeRow{
		weightedRow("s1", "Math", "Quiz 1", 8, 10, 100),
		pointsRow("s1", "Math", "Extra Credit", 0, 10), // no weight: excluded from score
	}

	summaries, details := Summarize(rows, "s1", "")
	if !approx(summaries[0].ScorePct, 80) {
		t.Errorf("expected 80%% from the weighted row alone, got %v", summaries[0].ScorePct)
	}
	if summaries[0].Assessments != 2 || len(details) != 2 {
		t.Errorf("unweighted row must still appear in details")
	}
}

func TestSummarizeZeroWeightsNoData(t *testing.T) {
	rows := []models.GradeRow{
		weightedRow("s1", "Math", "Quiz 1", 8, 10, 0),
		weightedRow("s1", "Math", "Quiz 2", 9, 10, 0),
	}

	summaries, _ := Summarize(rows, "s1", "")
	if summaries[0].Basis != models.BasisNone {
		t.Errorf("expected no-data basis when weights sum to zero, got %q", summaries[0].Basis)
	}
}

func TestSummarizeCourseFilter(t *testing.T) {
	rows := []models.GradeRow{
		pointsRow("s1", "Math", "Quiz 1", 8, 10),
		pointsRow("s1", "History", "Essay", 70, 100),
		pointsRow("s2", "Math", "Quiz 1", 9, 10),
	}

	summaries, details := Summarize(rows, "s1", "History")
	if len(summaries) != 1 || summaries[0].Course != "History" {
		t.Fatalf("expected only History, got %+v", summaries)
	}
	if len(details) != 1 || details[0].Assessment != "Essay" {
		t.Errorf("expected only the History detail row, got %+v", details)
	}

	// Course filter is exact, not case-insensitive.
	summaries, _ = Summarize(rows, "s1", "history")
	if len(summaries) != 0 {
		t.Errorf("expected exact course match only, got %+v", summaries)
	}
}

func TestSummarizeNoGradesFound(t *testing.T) {
	summaries, details := Summarize(testRows(), "ghost", "")
	if len(summaries) != 0 || len(details) != 0 {
		t.Errorf("expected empty result for unknown student, got %d/%d", len(summaries), len(details))
	}
}

func TestSummarizeDetailOrderAndSummarySort(t *testing.T) {
	rows := []models.GradeRow{
		pointsRow("s1", "Zoology", "Quiz 1", 8, 10),
		pointsRow("s1", "Algebra", "Quiz 1", 9, 10),
		pointsRow("s1", "Zoology", "Quiz 2", 7, 10),
	}

	summaries, details := Summarize(rows, "s1", "")
	// Details keep unified-table order.
	if details[0].Course != "Zoology" || details[1].Course != "Algebra" || details[2].Course != "Zoology" {
		t.Errorf("details reordered: %+v", details)
	}
	// Summaries sort by course name.
	if summaries[0].Course != "Algebra" || summaries[1].Course != "Zoology" {
		t.Errorf("summaries not sorted by course: %+v", summaries)
	}
}

func TestCourseStats(t *testing.T) {
	rows := []models.GradeRow{
		pointsRow("s1", "Math", "Quiz 1", 8, 10),  // 80%
		pointsRow("s2", "Math", "Quiz 1", 6, 10),  // 60%
		pointsRow("s3", "Math", "Quiz 1", 10, 10), // 100%
		pointsRow("s1", "History", "Essay", 70, 100),
	}

	stats := CourseStats(rows)
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 courses, got %d", len(stats))
	}
	if stats[0].Course != "History" || stats[1].Course != "Math" {
		t.Fatalf("expected courses sorted, got %+v", stats)
	}
	math3 := stats[1]
	if math3.Students != 3 {
		t.Errorf("expected 3 students in Math, got %d", math3.Students)
	}
	if !approx(math3.MeanPct, 80) || !approx(math3.MedianPct, 80) {
		t.Errorf("expected mean/median 80, got %v/%v", math3.MeanPct, math3.MedianPct)
	}
	if !approx(math3.MinPct, 60) || !approx(math3.MaxPct, 100) {
		t.Errorf("expected min 60 max 100, got %v/%v", math3.MinPct, math3.MaxPct)
	}
}
