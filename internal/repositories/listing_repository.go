package repositories

import (
	"database/sql"
	"strings"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/db"
	"aqarhub/internal/domain/models"
)

const listingColumns = `
	id,
	COALESCE(title_en,''),
	COALESCE(title_ar,''),
	COALESCE(slug,''),
	COALESCE(description_en,''),
	COALESCE(description_ar,''),
	COALESCE(price,0),
	COALESCE(category_id,0),
	COALESCE(area_id,0),
	COALESCE(status,'draft'),
	is_featured,
	is_new,
	order_index,
	COALESCE(cover_url,''),
	created_at,
	updated_at`

// ListingRepository wraps DB access for the listings table.
type ListingRepository struct {
	DB *sql.DB
}

func (r ListingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanListing(row interface{ Scan(...any) error }) (models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID,
		&l.TitleEN,
		&l.TitleAR,
		&l.Slug,
		&l.DescriptionEN,
		&l.DescriptionAR,
		&l.Price,
		&l.CategoryID,
		&l.AreaID,
		&l.Status,
		&l.IsFeatured,
		&l.IsNew,
		&l.OrderIndex,
		&l.CoverURL,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// List returns listings matching the filter in display order plus the
// unpaginated total.
func (r ListingRepository) List(f models.ListingFilter) ([]models.Listing, int, error) {
	where := []string{}
	args := []any{}

	if f.Status != "" {
		where = append(where, "status=?")
		args = append(args, f.Status)
	}
	if f.CategoryID > 0 {
		where = append(where, "category_id=?")
		args = append(args, f.CategoryID)
	}
	if f.AreaID > 0 {
		where = append(where, "area_id=?")
		args = append(args, f.AreaID)
	}
	if f.MinPrice > 0 {
		where = append(where, "price>=?")
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where = append(where, "price<=?")
		args = append(args, f.MaxPrice)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, "(title_en LIKE ? OR title_ar LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	if f.Featured {
		where = append(where, "(is_featured=1 OR is_new=1)")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM listings`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + listingColumns + ` FROM listings` + clause + ` ORDER BY order_index ASC, id ASC`
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.PageSize, (page-1)*f.PageSize)
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}

func (r ListingRepository) GetByID(id int64) (models.Listing, error) {
	if id <= 0 {
		return models.Listing{}, sql.ErrNoRows
	}
	return scanListing(r.db().QueryRow(`SELECT `+listingColumns+` FROM listings WHERE id=? LIMIT 1`, id))
}

func (r ListingRepository) GetBySlug(slug string) (models.Listing, error) {
	if strings.TrimSpace(slug) == "" {
		return models.Listing{}, sql.ErrNoRows
	}
	return scanListing(r.db().QueryRow(`SELECT `+listingColumns+` FROM listings WHERE slug=? LIMIT 1`, slug))
}

// SlugExists checks uniqueness, optionally excluding the row itself.
func (r ListingRepository) SlugExists(slug string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM listings WHERE slug=? AND id<>?`, slug, excludeID).Scan(&n)
	return n > 0, err
}

// Insert stores a new listing. Category and area are optional; id 0
// becomes NULL so the foreign keys stay satisfiable.
func (r ListingRepository) Insert(l models.Listing) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO listings
			(title_en, title_ar, slug, description_en, description_ar, price,
			 category_id, area_id, status, is_featured, is_new, order_index,
			 cover_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		l.TitleEN, l.TitleAR, l.Slug,
		db.NullIfEmpty(l.DescriptionEN), db.NullIfEmpty(l.DescriptionAR), l.Price,
		db.NullIfZero(l.CategoryID), db.NullIfZero(l.AreaID),
		l.Status, l.IsFeatured, l.IsNew, l.OrderIndex,
		l.CoverURL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies only fields present in the patch. Flag changes and the
// accompanying order_index land in the same statement so readers never
// see the flags without the reindex.
func (r ListingRepository) Update(id int64, p models.ListingPatch) error {
	sets := []string{}
	args := []any{}
	add := func(column string, val any) {
		sets = append(sets, column+"=?")
		args = append(args, val)
	}

	if p.TitleEN != nil {
		add("title_en", *p.TitleEN)
	}
	if p.TitleAR != nil {
		add("title_ar", *p.TitleAR)
	}
	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.DescriptionEN != nil {
		add("description_en", db.NullIfEmpty(*p.DescriptionEN))
	}
	if p.DescriptionAR != nil {
		add("description_ar", db.NullIfEmpty(*p.DescriptionAR))
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.CategoryID != nil {
		add("category_id", db.NullIfZero(*p.CategoryID))
	}
	if p.AreaID != nil {
		add("area_id", db.NullIfZero(*p.AreaID))
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.IsFeatured != nil {
		add("is_featured", *p.IsFeatured)
	}
	if p.IsNew != nil {
		add("is_new", *p.IsNew)
	}
	if p.OrderIndex != nil {
		add("order_index", *p.OrderIndex)
	}
	if p.CoverURL != nil {
		add("cover_url", *p.CoverURL)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE listings SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r ListingRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM listings WHERE id=?`, id)
	return err
}

func (r ListingRepository) CountByCategory(categoryID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM listings WHERE category_id=?`, categoryID).Scan(&n)
	return n, err
}

func (r ListingRepository) CountByArea(areaID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM listings WHERE area_id=?`, areaID).Scan(&n)
	return n, err
}

// Images lists stored media for a listing in gallery order.
func (r ListingRepository) Images(listingID int64) ([]models.ListingImage, error) {
	rows, err := r.db().Query(`
		SELECT id, listing_id, COALESCE(object_key,''), COALESCE(url,''), COALESCE(sort_order,0)
		FROM listing_images WHERE listing_id=? ORDER BY sort_order ASC, id ASC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ListingImage{}
	for rows.Next() {
		var img models.ListingImage
		if err := rows.Scan(&img.ID, &img.ListingID, &img.ObjectKey, &img.URL, &img.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r ListingRepository) GetImage(id int64) (models.ListingImage, error) {
	var img models.ListingImage
	err := r.db().QueryRow(`
		SELECT id, listing_id, COALESCE(object_key,''), COALESCE(url,''), COALESCE(sort_order,0)
		FROM listing_images WHERE id=? LIMIT 1`, id).
		Scan(&img.ID, &img.ListingID, &img.ObjectKey, &img.URL, &img.SortOrder)
	return img, err
}

func (r ListingRepository) InsertImage(img models.ListingImage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO listing_images (listing_id, object_key, url, sort_order)
		VALUES (?, ?, ?, ?)`,
		img.ListingID, img.ObjectKey, img.URL, img.SortOrder)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ListingRepository) DeleteImage(id int64) error {
	_, err := r.db().Exec(`DELETE FROM listing_images WHERE id=?`, id)
	return err
}
