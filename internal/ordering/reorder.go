package ordering

import (
	"database/sql"
	"fmt"
	"strings"

	"aqarhub/internal/domain"
)

// Reorderer persists a client-submitted full permutation of one
// collection after a drag-and-drop. The submitted slice order defines
// the new sequential indices 0..n-1.
type Reorderer struct {
	DB    *sql.DB
	Table string
}

// Apply validates that every id resolves to an existing row, then
// writes the new indices. Membership failures reject the whole batch
// before anything is mutated. Row updates are issued independently:
// when some fail the result is a PartialBatchError with the failure
// count, and rows already written stay written.
func (r Reorderer) Apply(ids []int64) error {
	if len(ids) == 0 {
		return domain.ValidationError{Field: "ids", Msg: "reorder batch is empty"}
	}
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return domain.ValidationError{Field: "ids", Msg: fmt.Sprintf("duplicate id %d in reorder batch", id)}
		}
		seen[id] = true
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.DB.Query(`SELECT id FROM `+r.Table+` WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return domain.InternalError{Msg: "failed to load " + r.Table + " rows", Err: err}
	}
	defer rows.Close()

	found := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return domain.InternalError{Msg: "failed to scan " + r.Table + " id", Err: err}
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return domain.InternalError{Msg: "failed to load " + r.Table + " rows", Err: err}
	}

	missing := []int64{}
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.NotFoundError{Resource: fmt.Sprintf("%s ids %v", r.Table, missing)}
	}

	failed := 0
	var lastErr error
	for pos, id := range ids {
		if _, err := r.DB.Exec(`UPDATE `+r.Table+` SET order_index=? WHERE id=?`, pos, id); err != nil {
			failed++
			lastErr = err
		}
	}
	if failed > 0 {
		return domain.PartialBatchError{Failed: failed, Total: len(ids), Err: lastErr}
	}
	return nil
}
