// Package gradebook turns a multi-sheet gradebook workbook into a queryable,
// session-scoped view of one student's grades: header normalization, sheet
// classification, row merging, authentication, and per-course scoring.
package gradebook

// Options configures how a workbook is interpreted.
type Options struct {
	// AliasSheetName is the name of the header-alias sheet.
	// If empty, defaults to "_aliases".
	AliasSheetName string
	// CredentialSheetNames are sheet names (case-insensitive) that designate
	// the credentials sheet. If nil, defaults to "credentials" and "login".
	CredentialSheetNames []string
	// DefaultOutOf is the maximum points assumed when the Out Of column is
	// absent or blank. If nil, defaults to 100.
	DefaultOutOf *float64
}

// DefaultOptions returns default workbook options.
func DefaultOptions() Options {
	return Options{}
}

// AliasSheet returns the effective alias sheet name.
func (o Options) AliasSheet() string {
	if o.AliasSheetName != "" {
		return o.AliasSheetName
	}
	return "_aliases"
}

// CredentialSheets returns the effective credential sheet names.
func (o Options) CredentialSheets() []string {
	if o.CredentialSheetNames != nil {
		return o.CredentialSheetNames
	}
	return []string{"credentials", "login"}
}

// OutOfDefault returns the effective Out Of default.
func (o Options) OutOfDefault() float64 {
	if o.DefaultOutOf != nil {
		return *o.DefaultOutOf
	}
	return 100
}
