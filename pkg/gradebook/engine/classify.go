package engine

import "github.com/necbot/gradebook-go/pkg/gradebook/models"

// SheetKind is the classification assigned to a sheet.
type SheetKind string

const (
	// KindAliases marks the alias sheet.
	KindAliases SheetKind = "aliases"
	// KindCredentials marks the single credentials sheet.
	KindCredentials SheetKind = "credentials"
	// KindGradeData marks a sheet whose rows feed the unified grade table.
	KindGradeData SheetKind = "grade_data"
)

// ClassifyParams holds the sheet-name conventions used for classification.
type ClassifyParams struct {
	// AliasSheetName is the literal name of the alias sheet.
	AliasSheetName string
	// CredentialSheetNames are names (case-insensitive) that designate the
	// credentials sheet outright.
	CredentialSheetNames []string
}

// DefaultClassifyParams returns the default sheet-name conventions.
func DefaultClassifyParams() ClassifyParams {
	return ClassifyParams{
		AliasSheetName:       "_aliases",
		CredentialSheetNames: []string{"credentials", "login"},
	}
}

// Classification assigns every sheet of a workbook to exactly one role.
type Classification struct {
	// AliasSheet is the alias sheet name, empty when the workbook has none.
	AliasSheet string `json:"alias_sheet,omitempty"`
	// CredentialsSheet is the single credentials sheet, empty when none was
	// found (the engine then degrades to Student-ID-only authentication).
	CredentialsSheet string `json:"credentials_sheet,omitempty"`
	// CredentialsByName reports whether the credentials sheet was picked by
	// its name rather than detected by its columns.
	CredentialsByName bool `json:"credentials_by_name,omitempty"`
	// GradeSheets are all remaining sheets, in workbook order.
	GradeSheets []string `json:"grade_sheets"`
}

// Kind returns the role assigned to the named sheet.
func (c Classification) Kind(name string) SheetKind {
	if c.AliasSheet != "" && name == c.AliasSheet {
		return KindAliases
	}
	if c.CredentialsSheet != "" && name == c.CredentialsSheet {
		return KindCredentials
	}
	return KindGradeData
}

// hasCredentialColumns reports whether the normalized headers include both
// Student ID and Access Code.
func hasCredentialColumns(headers []string, aliases AliasTable) bool {
	hasID, hasCode := false, false
	for _, h := range headers {
		switch CanonicalName(h, aliases) {
		case FieldStudentID:
			hasID = true
		case FieldAccessCode:
			hasCode = true
		}
	}
	return hasID && hasCode
}

// Classify assigns a role to every sheet. Rules, in order: the sheet named
// as the alias sheet; a sheet named after one of the credential sheet names
// (case-insensitive); failing that, the first sheet in workbook order whose
// normalized headers include both Student ID and Access Code. At most one
// sheet is classified as credentials; everything else is grade data. The
// function is total and deterministic over the ordered sheet list.
func Classify(wb models.Workbook, aliases AliasTable, params ClassifyParams) Classification {
	var c Classification

	for _, sheet := range wb.Sheets {
		if c.AliasSheet == "" && normalizeKey(sheet.Name) == normalizeKey(params.AliasSheetName) {
			c.AliasSheet = sheet.Name
		}
	}

	for _, sheet := range wb.Sheets {
		if sheet.Name == c.AliasSheet {
			continue
		}
		for _, cred := range params.CredentialSheetNames {
			if normalizeKey(sheet.Name) == normalizeKey(cred) {
				c.CredentialsSheet = sheet.Name
				c.CredentialsByName = true
				break
			}
		}
		if c.CredentialsSheet != "" {
			break
		}
	}

	if c.CredentialsSheet == "" {
		for _, sheet := range wb.Sheets {
			if sheet.Name == c.AliasSheet {
				continue
			}
			if hasCredentialColumns(sheet.Headers, aliases) {
				c.CredentialsSheet = sheet.Name
				break
			}
		}
	}

	for _, sheet := range wb.Sheets {
		if sheet.Name == c.AliasSheet || sheet.Name == c.CredentialsSheet {
			continue
		}
		c.GradeSheets = append(c.GradeSheets, sheet.Name)
	}
	return c
}
