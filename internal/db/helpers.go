package db

import (
	"database/sql"
)

// QueryRower is the subset of *sql.DB the schema probes need, so
// sqlmock connections work unchanged.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero maps the zero id to NULL so optional foreign keys stay
// unset instead of pointing at a nonexistent row 0.
func NullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables reports which of the given tables are absent from the
// connected schema. Used by the db-check endpoint.
func MissingTables(q QueryRower, tables ...string) []string {
	missing := []string{}
	for _, t := range tables {
		if !HasTable(q, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
