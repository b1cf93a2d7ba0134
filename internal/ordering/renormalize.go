package ordering

import (
	"database/sql"
)

// Renormalize re-sequences a collection's order_index values to small
// contiguous integers, promoted group first, without changing relative
// order. Long-lived systems otherwise drift toward very negative
// promoted indices as every promotion decrements the minimum. Returns
// the number of rows whose index actually changed.
func Renormalize(db *sql.DB, table, promotedExpr string) (int, error) {
	query := `SELECT id FROM ` + table
	if promotedExpr != "" {
		query += ` ORDER BY (` + promotedExpr + `) DESC, order_index ASC, id ASC`
	} else {
		query += ` ORDER BY order_index ASC, id ASC`
	}

	rows, err := db.Query(query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	changed := 0
	for pos, id := range ids {
		res, err := db.Exec(`UPDATE `+table+` SET order_index=? WHERE id=? AND order_index<>?`, pos, id, pos)
		if err != nil {
			return changed, err
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			changed++
		}
	}
	return changed, nil
}
