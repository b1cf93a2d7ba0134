package repositories

import (
	"database/sql"
	"strings"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain/models"
)

const areaColumns = `
	id,
	COALESCE(name_en,''),
	COALESCE(name_ar,''),
	COALESCE(slug,''),
	is_active,
	order_index,
	created_at,
	updated_at`

// AreaRepository wraps DB access for the areas table.
type AreaRepository struct {
	DB *sql.DB
}

func (r AreaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanArea(row interface{ Scan(...any) error }) (models.Area, error) {
	var a models.Area
	err := row.Scan(
		&a.ID,
		&a.NameEN,
		&a.NameAR,
		&a.Slug,
		&a.IsActive,
		&a.OrderIndex,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// List returns areas in display order, optionally only active ones.
func (r AreaRepository) List(activeOnly bool) ([]models.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas`
	if activeOnly {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY order_index ASC, id ASC`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Area{}
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AreaRepository) GetByID(id int64) (models.Area, error) {
	if id <= 0 {
		return models.Area{}, sql.ErrNoRows
	}
	return scanArea(r.db().QueryRow(`SELECT `+areaColumns+` FROM areas WHERE id=? LIMIT 1`, id))
}

func (r AreaRepository) SlugExists(slug string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM areas WHERE slug=? AND id<>?`, slug, excludeID).Scan(&n)
	return n > 0, err
}

func (r AreaRepository) Insert(a models.Area) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO areas (name_en, name_ar, slug, is_active, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())`,
		a.NameEN, a.NameAR, a.Slug, a.IsActive, a.OrderIndex)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r AreaRepository) Update(a models.Area) error {
	sets := []string{"name_en=?", "name_ar=?"}
	args := []any{a.NameEN, a.NameAR}
	if strings.TrimSpace(a.Slug) != "" {
		sets = append(sets, "slug=?")
		args = append(args, a.Slug)
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, a.ID)
	_, err := r.db().Exec(`UPDATE areas SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r AreaRepository) SetActive(id int64, active bool) error {
	_, err := r.db().Exec(`UPDATE areas SET is_active=?, updated_at=NOW() WHERE id=?`, active, id)
	return err
}

func (r AreaRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM areas WHERE id=?`, id)
	return err
}
