package repository

import (
	"database/sql"
	"time"
)

// scanTime reads an optional date column. Malformed values scan as nil
// instead of failing the row.
func scanTime(col sql.NullString, layout string) *time.Time {
	if !col.Valid || col.String == "" {
		return nil
	}
	parsed, err := time.Parse(layout, col.String)
	if err != nil {
		return nil
	}
	return &parsed
}

// storeTime renders an optional time as a bind argument, NULL when unset.
func storeTime(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// storeString renders an optional string as a bind argument, NULL when
// unset. Used for the rep's manager link.
func storeString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// SQLite has no bool column type; done/checked flags are stored as 0 or 1.
func storeBool(b bool) int {
	if b {
		return 1
	}
	return 0
}

func scanBool(i int) bool {
	return i != 0
}
