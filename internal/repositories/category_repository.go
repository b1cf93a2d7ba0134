package repositories

import (
	"database/sql"
	"strings"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain/models"
)

const categoryColumns = `
	id,
	COALESCE(name_en,''),
	COALESCE(name_ar,''),
	COALESCE(slug,''),
	COALESCE(description_en,''),
	COALESCE(description_ar,''),
	order_index,
	created_at,
	updated_at`

// CategoryRepository wraps DB access for the categories table.
type CategoryRepository struct {
	DB *sql.DB
}

func (r CategoryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanCategory(row interface{ Scan(...any) error }) (models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID,
		&c.NameEN,
		&c.NameAR,
		&c.Slug,
		&c.DescriptionEN,
		&c.DescriptionAR,
		&c.OrderIndex,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// List returns all categories in display order.
func (r CategoryRepository) List() ([]models.Category, error) {
	rows, err := r.db().Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY order_index ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CategoryRepository) GetByID(id int64) (models.Category, error) {
	if id <= 0 {
		return models.Category{}, sql.ErrNoRows
	}
	return scanCategory(r.db().QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id=? LIMIT 1`, id))
}

func (r CategoryRepository) SlugExists(slug string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM categories WHERE slug=? AND id<>?`, slug, excludeID).Scan(&n)
	return n > 0, err
}

func (r CategoryRepository) Insert(c models.Category) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO categories
			(name_en, name_ar, slug, description_en, description_ar, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		c.NameEN, c.NameAR, c.Slug, c.DescriptionEN, c.DescriptionAR, c.OrderIndex)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites the mutable columns; slug only when non-empty.
func (r CategoryRepository) Update(c models.Category) error {
	sets := []string{"name_en=?", "name_ar=?", "description_en=?", "description_ar=?"}
	args := []any{c.NameEN, c.NameAR, c.DescriptionEN, c.DescriptionAR}
	if strings.TrimSpace(c.Slug) != "" {
		sets = append(sets, "slug=?")
		args = append(args, c.Slug)
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, c.ID)
	_, err := r.db().Exec(`UPDATE categories SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r CategoryRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM categories WHERE id=?`, id)
	return err
}
