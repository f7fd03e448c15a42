// Package xlsxio reads .xlsx workbooks into the tabular form the engine
// consumes: ordered sheets, first non-empty row as headers, remaining rows
// as raw header to cell text maps.
package xlsxio

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/necbot/gradebook-go/pkg/gradebook/models"
)

// ReadFile reads the workbook at path.
func ReadFile(path string) (models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Workbook{}, err
	}
	defer f.Close()
	return readWorkbook(f), nil
}

// Read reads a workbook from an .xlsx byte stream.
func Read(r io.Reader) (models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Workbook{}, err
	}
	defer f.Close()
	return readWorkbook(f), nil
}

func readWorkbook(f *excelize.File) models.Workbook {
	var wb models.Workbook
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			// A sheet that cannot be read degrades to an empty sheet;
			// the load itself never aborts.
			rows = nil
		}
		wb.Sheets = append(wb.Sheets, tabulate(name, rows))
	}
	return wb
}

// tabulate turns raw cell rows into a TabularSheet. The first row with any
// non-empty cell becomes the header row; columns with blank headers are
// ignored; rows that are empty across all headed columns are skipped.
func tabulate(name string, rows [][]string) models.TabularSheet {
	sheet := models.TabularSheet{Name: name}

	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return sheet
	}

	headerCols := make([]int, 0, len(rows[headerIdx]))
	for col, h := range rows[headerIdx] {
		if h == "" {
			continue
		}
		sheet.Headers = append(sheet.Headers, h)
		headerCols = append(headerCols, col)
	}

	for _, row := range rows[headerIdx+1:] {
		raw := make(models.RawRow, len(sheet.Headers))
		hasData := false
		for i, col := range headerCols {
			v := ""
			if col < len(row) {
				v = row[col]
			}
			raw[sheet.Headers[i]] = v
			if v != "" {
				hasData = true
			}
		}
		if hasData {
			sheet.Rows = append(sheet.Rows, raw)
		}
	}
	return sheet
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
