package services

import (
	"testing"
	"time"

	"aqarhub/internal/domain"
	"aqarhub/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateCategoryDerivesSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories WHERE slug=`).
		WithArgs("villas", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery(`SELECT MAX\(order_index\) FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
	mock.ExpectExec(`INSERT INTO categories`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := CategoryService{Repo: repositories.CategoryRepository{DB: db}, DB: db}
	c, err := svc.Create(CategoryInput{NameEN: "Villas"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if c.Slug != "villas" {
		t.Fatalf("slug = %q, want villas", c.Slug)
	}
	if c.OrderIndex != 0 {
		t.Fatalf("order index = %d, want 0", c.OrderIndex)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// a "villas" row already exists; the second create must fail and
	// nothing may be inserted
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories WHERE slug=`).
		WithArgs("villas", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	svc := CategoryService{Repo: repositories.CategoryRepository{DB: db}, DB: db}
	_, err = svc.Create(CategoryInput{NameEN: "Villas"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("duplicate create touched the table: %v", err)
	}
}

func TestCreateCategoryRejectsUnsluggableName(t *testing.T) {
	svc := CategoryService{}
	if _, err := svc.Create(CategoryInput{NameEN: "!!!"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for symbol-only name, got %v", err)
	}
	if _, err := svc.Create(CategoryInput{}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM categories WHERE id=`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name_en", "name_ar", "slug", "description_en", "description_ar",
			"order_index", "created_at", "updated_at",
		}).AddRow(3, "Villas", "فلل", "villas", "", "", 0, now, now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listings WHERE category_id=`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	svc := CategoryService{
		Repo:        repositories.CategoryRepository{DB: db},
		ListingRepo: repositories.ListingRepository{DB: db},
		DB:          db,
	}
	err = svc.Delete(3)
	if !domain.IsReferential(err) {
		t.Fatalf("expected referential error, got %v", err)
	}
	// the category row must remain untouched: no DELETE was expected
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("delete mutated rows despite dependents: %v", err)
	}
}
