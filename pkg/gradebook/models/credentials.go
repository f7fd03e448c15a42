package models

// Credential represents one entry of the credentials sheet.
type Credential struct {
	// StudentID as stored in the workbook, whitespace-trimmed.
	StudentID string `json:"student_id"`
	// AccessCode is compared exactly, including leading zeros.
	AccessCode string `json:"-"`
}
