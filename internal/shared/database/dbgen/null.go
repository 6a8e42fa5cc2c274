package dbgen

import "database/sql"

// NewNullString treats the empty string as NULL. Hand-written companion to the
// generated code; sqlc keeps it because the file name does not end in .sql.go.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
