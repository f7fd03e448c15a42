package engine

import (
	"testing"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

func TestMerge(t *testing.T) {
	wb := models.Workbook{Sheets: []models.TabularSheet{
		newSheet("credentials", []string{"Student ID", "Access Code"},
			[]string{"s1", "0042"},
		),
		newSheet("Quizzes", []string{"Student ID", "Course", "Assessment", "Score", "Out Of", "Weight %"},
			[]string{"s1", "Math", "Quiz 1", "8", "10", "50"},
			[]string{"s1", "Math", "Quiz 2", "18", "20", ""},
			[]string{"", "Math", "Quiz 3", "5", "10", ""},       // no student id: dropped
			[]string{"s2", "Math", "Quiz 1", "n/a", "10", ""},   // non-numeric score: dropped
			[]string{"s2", "", "Quiz 1", "7", "10", ""},         // no course: dropped
		),
		newSheet("Exams", []string{"Student ID", "Course", "Assessment", "Score"},
			[]string{"s1", "Math", "Final", "90"},
		),
	}}
	cls := Classify(wb, nil, DefaultClassifyParams())

	table := Merge(wb, cls, nil, 100)
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 merged rows, got %d", len(table.Rows))
	}
	if table.Dropped != 3 {
		t.Errorf("expected 3 dropped rows, got %d", table.Dropped)
	}
	if table.DroppedBySheet["Quizzes"] != 3 {
		t.Errorf("expected 3 drops in Quizzes, got %d", table.DroppedBySheet["Quizzes"])
	}

	// Sheet order, then intra-sheet row order.
	wantAssessments := []string{"Quiz 1", "Quiz 2", "Final"}
	for i, want := range wantAssessments {
		if table.Rows[i].Assessment != want {
			t.Errorf("row %d: expected assessment %q, got %q", i, want, table.Rows[i].Assessment)
		}
	}

	// Provenance and defaults.
	if table.Rows[0].Sheet != "Quizzes" || table.Rows[2].Sheet != "Exams" {
		t.Errorf("provenance tags wrong: %q, %q", table.Rows[0].Sheet, table.Rows[2].Sheet)
	}
	if table.Rows[2].OutOf != 100 {
		t.Errorf("expected Out Of to default to 100, got %v", table.Rows[2].OutOf)
	}
	if table.Rows[0].Weight == nil || *table.Rows[0].Weight != 50 {
		t.Errorf("expected weight 50 on first row, got %v", table.Rows[0].Weight)
	}
	if table.Rows[1].Weight != nil {
		t.Errorf("expected nil weight on unweighted row, got %v", *table.Rows[1].Weight)
	}
}

func TestMergeExcludesCredentialsAndAliases(t *testing.T) {
	wb := models.Workbook{Sheets: []models.TabularSheet{
		newSheet("_aliases", []string{"Key", "Value"},
			[]string{"Paper", "Assessment"},
		),
		// Looks like grade data but is the credentials source.
		newSheet("login", []string{"Student ID", "Access Code", "Course", "Assessment", "Score"},
			[]string{"s1", "0042", "Math", "Quiz 1", "8"},
		),
		newSheet("Grades", []string{"Student ID", "Course", "Paper", "Score"},
			[]string{"s1", "Math", "Essay", "80"},
		),
	}}
	aliasSheet, _ := wb.Sheet("_aliases")
	aliases := BuildAliasTable(aliasSheet)
	cls := Classify(wb, aliases, DefaultClassifyParams())

	table := Merge(wb, cls, aliases, 100)
	if len(table.Rows) != 1 {
		t.Fatalf("expected only the Grades sheet to merge, got %d rows", len(table.Rows))
	}
	if table.Rows[0].Assessment != "Essay" {
		t.Errorf("expected aliased Paper column to become Assessment, got %q", table.Rows[0].Assessment)
	}
	if table.Dropped != 0 {
		t.Errorf("expected no drops, got %d", table.Dropped)
	}
}

func TestMergeTrimsAndKeepsSecret(t *testing.T) {
	wb := models.Workbook{Sheets: []models.TabularSheet{
		newSheet("Grades", []string{"Student ID", "Course", "Assessment", "Score", "Secret", "Term"},
			[]string{"  s1  ", " Math ", "Quiz 1", " 8 ", "1234", "Fall"},
		),
	}}
	cls := Classify(wb, nil, DefaultClassifyParams())

	table := Merge(wb, cls, nil, 100)
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row.StudentID != "s1" || row.Course != "Math" {
		t.Errorf("expected trimmed fields, got %q / %q", row.StudentID, row.Course)
	}
	if row.Score != 8 {
		t.Errorf("expected score 8, got %v", row.Score)
	}
	if row.Secret != "1234" || row.Term != "Fall" {
		t.Errorf("optional fields wrong: secret=%q term=%q", row.Secret, row.Term)
	}
}
