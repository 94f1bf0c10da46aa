package util

import (
	"database/sql"
	"time"
)

// StringToNullString maps "" to NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// TimeToNullTime maps the zero time to NULL.
func TimeToNullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// BoolToSmallInt encodes a flag for SMALLINT / NUMBER(1) columns, which both
// Postgres and Oracle accept.
func BoolToSmallInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
