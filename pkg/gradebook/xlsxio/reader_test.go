package xlsxio

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Student ID")
	f.SetCellValue(sheet, "B1", "Score")
	f.SetCellValue(sheet, "A2", "s1")
	f.SetCellValue(sheet, "B2", 85)
	f.SetCellValue(sheet, "A3", "s2")
	f.SetCellValue(sheet, "B3", 90.5)

	f.NewSheet("Extra")
	f.SetCellValue("Extra", "A1", "Course")
	f.SetCellValue("Extra", "A2", "Math")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if len(wb.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "Sheet1" || wb.Sheets[1].Name != "Extra" {
		t.Errorf("sheet order wrong: %q, %q", wb.Sheets[0].Name, wb.Sheets[1].Name)
	}

	s1 := wb.Sheets[0]
	if len(s1.Headers) != 2 || s1.Headers[0] != "Student ID" {
		t.Fatalf("unexpected headers: %v", s1.Headers)
	}
	if len(s1.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(s1.Rows))
	}
	if s1.Rows[0]["Student ID"] != "s1" || s1.Rows[0]["Score"] != "85" {
		t.Errorf("unexpected first row: %v", s1.Rows[0])
	}
	if s1.Rows[1]["Score"] != "90.5" {
		t.Errorf("expected cell text 90.5, got %q", s1.Rows[1]["Score"])
	}
}

func TestTabulate(t *testing.T) {
	sheet := tabulate("Grades", [][]string{
		{},                               // leading empty row
		{"Student ID", "", "Score"},      // blank header column ignored
		{"s1", "ignored", "85"},
		{"", "", ""},                     // empty row skipped
		{"s2"},                           // ragged row padded
	})

	if len(sheet.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %v", sheet.Headers)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows[0]["Score"] != "85" {
		t.Errorf("expected score 85, got %q", sheet.Rows[0]["Score"])
	}
	if sheet.Rows[1]["Student ID"] != "s2" || sheet.Rows[1]["Score"] != "" {
		t.Errorf("ragged row handled wrong: %v", sheet.Rows[1])
	}
}

func TestTabulateEmptySheet(t *testing.T) {
	sheet := tabulate("Blank", nil)
	if len(sheet.Headers) != 0 || len(sheet.Rows) != 0 {
		t.Errorf("expected empty sheet, got %v", sheet)
	}
}
