// Package models defines data structures for gradebook workbooks.
package models

// RawRow maps a sheet's raw header text to the cell value in one row.
type RawRow map[string]string

// TabularSheet represents one sheet as already-parsed tabular data.
type TabularSheet struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name"`
	// Headers are the raw column headers in left-to-right order.
	Headers []string `json:"headers"`
	// Rows are the data rows below the header row, in sheet order.
	Rows []RawRow `json:"rows"`
}

// Workbook represents a workbook as an ordered list of tabular sheets.
type Workbook struct {
	// Sheets are in workbook order. Order matters for classification
	// and for stable row ordering in the unified grade table.
	Sheets []TabularSheet `json:"sheets"`
}

// Sheet returns the sheet with the given name, or false if absent.
func (w Workbook) Sheet(name string) (TabularSheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return TabularSheet{}, false
}
