package ordering

import (
	"database/sql"
	"fmt"
)

// ListingPromotedExpr selects the promoted group of the listings table.
const ListingPromotedExpr = "is_featured=1 OR is_new=1"

// Allocator derives order_index values for one orderable collection.
// It holds no counter: every allocation is a fresh min/max query, so
// multiple server instances cannot drift apart.
type Allocator struct {
	DB    *sql.DB
	Table string
	// PromotedExpr is the SQL predicate selecting the promoted group,
	// e.g. "is_featured=1 OR is_new=1". Empty means the collection has
	// no promoted group and every row is appended at the end.
	PromotedExpr string
}

// Allocate returns the order index for a newly created row or for a row
// whose group membership just changed. An explicit admin-chosen index
// wins, clamped to >= 0. Promoted rows get one less than the current
// promoted minimum (0 when none exist, yielding -1); regular rows get
// one more than the current regular maximum (-1 when none, yielding 0).
// Indices are signed in storage.
func (a Allocator) Allocate(explicit *int, promote bool) (int, error) {
	if explicit != nil {
		if *explicit < 0 {
			return 0, nil
		}
		return *explicit, nil
	}

	if promote && a.PromotedExpr != "" {
		var min sql.NullInt64
		query := fmt.Sprintf(`SELECT MIN(order_index) FROM %s WHERE %s`, a.Table, a.PromotedExpr)
		if err := a.DB.QueryRow(query).Scan(&min); err != nil {
			return 0, fmt.Errorf("allocate promoted index for %s: %w", a.Table, err)
		}
		if !min.Valid {
			min.Int64 = 0
		}
		return int(min.Int64) - 1, nil
	}

	query := fmt.Sprintf(`SELECT MAX(order_index) FROM %s`, a.Table)
	if a.PromotedExpr != "" {
		query += fmt.Sprintf(" WHERE NOT (%s)", a.PromotedExpr)
	}
	var max sql.NullInt64
	if err := a.DB.QueryRow(query).Scan(&max); err != nil {
		return 0, fmt.Errorf("allocate index for %s: %w", a.Table, err)
	}
	if !max.Valid {
		max.Int64 = -1
	}
	return int(max.Int64) + 1, nil
}
