package services

import (
	"fmt"
	"testing"
	"time"

	"aqarhub/internal/domain"
	"aqarhub/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func listingRow(id int64, slug string, featured, isNew bool, orderIndex int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title_en", "title_ar", "slug", "description_en", "description_ar",
		"price", "category_id", "area_id", "status", "is_featured", "is_new",
		"order_index", "cover_url", "created_at", "updated_at",
	}).AddRow(id, "Listing", "", slug, "", "", 100.0, 0, 0, "active", featured, isNew, orderIndex, "", now, now)
}

func TestCreateListingsAppendSequentially(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ListingService{Repo: repositories.ListingRepository{DB: db}, DB: db}

	// three regular creations land on 0, 1, 2
	titles := []string{"First Flat", "Second Flat", "Third Flat"}
	for i, title := range titles {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listings WHERE slug=`).
			WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
		maxRows := sqlmock.NewRows([]string{"max"})
		if i == 0 {
			maxRows.AddRow(nil)
		} else {
			maxRows.AddRow(i - 1)
		}
		mock.ExpectQuery(`SELECT MAX\(order_index\) FROM listings WHERE NOT`).
			WillReturnRows(maxRows)
		mock.ExpectExec(`INSERT INTO listings`).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))

		l, err := svc.Create(ListingInput{TitleEN: title, Price: 100, Status: "active"})
		if err != nil {
			t.Fatalf("create %d error: %v", i, err)
		}
		if l.OrderIndex != i {
			t.Fatalf("create %d: order index = %d, want %d", i, l.OrderIndex, i)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFeatureToggleMovesListingAboveRegularRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ListingService{Repo: repositories.ListingRepository{DB: db}, DB: db}

	// listing 2 sits at index 1 unpromoted; no promoted rows exist yet,
	// so promotion must land on -1 and the flags + index go out in one
	// UPDATE
	mock.ExpectQuery(`FROM listings WHERE id=`).
		WithArgs(int64(2)).
		WillReturnRows(listingRow(2, "second-flat", false, false, 1))
	mock.ExpectQuery(`SELECT MIN\(order_index\) FROM listings`).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))
	mock.ExpectExec(`UPDATE listings SET is_featured=\?, is_new=\?, order_index=\?, updated_at=NOW\(\) WHERE id=\?`).
		WithArgs(true, false, -1, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM listings WHERE id=`).
		WithArgs(int64(2)).
		WillReturnRows(listingRow(2, "second-flat", true, false, -1))

	featured := true
	updated, err := svc.SetFlags(2, &featured, nil)
	if err != nil {
		t.Fatalf("set flags error: %v", err)
	}
	if updated.OrderIndex != -1 {
		t.Fatalf("order index = %d, want -1", updated.OrderIndex)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleIsNewKeepsIndexWhileStillPromoted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ListingService{Repo: repositories.ListingRepository{DB: db}, DB: db}

	// featured stays true, so dropping is_new keeps the row promoted:
	// no allocator query, no order_index in the UPDATE
	mock.ExpectQuery(`FROM listings WHERE id=`).
		WithArgs(int64(5)).
		WillReturnRows(listingRow(5, "penthouse", true, true, -3))
	mock.ExpectExec(`UPDATE listings SET is_featured=\?, is_new=\?, updated_at=NOW\(\) WHERE id=\?`).
		WithArgs(true, false, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM listings WHERE id=`).
		WithArgs(int64(5)).
		WillReturnRows(listingRow(5, "penthouse", true, false, -3))

	off := false
	updated, err := svc.SetFlags(5, nil, &off)
	if err != nil {
		t.Fatalf("set flags error: %v", err)
	}
	if updated.OrderIndex != -3 {
		t.Fatalf("order index moved to %d, want -3", updated.OrderIndex)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetFlagsNoopWhenValuesUnchanged(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ListingService{Repo: repositories.ListingRepository{DB: db}, DB: db}

	mock.ExpectQuery(`FROM listings WHERE id=`).
		WithArgs(int64(7)).
		WillReturnRows(listingRow(7, "studio", true, false, -2))

	featured := true
	if _, err := svc.SetFlags(7, &featured, nil); err != nil {
		t.Fatalf("set flags error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("noop toggle issued writes: %v", err)
	}
}

func TestCreateListingSurfacesRefCheckFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// the category existence probe fails outright; that must surface as
	// an internal error, never pass as a validated reference
	mock.ExpectQuery(`FROM categories WHERE id=`).
		WithArgs(int64(8)).
		WillReturnError(fmt.Errorf("connection reset"))

	svc := ListingService{
		Repo:         repositories.ListingRepository{DB: db},
		CategoryRepo: repositories.CategoryRepository{DB: db},
		DB:           db,
	}
	_, err = svc.Create(ListingInput{TitleEN: "Flat", Price: 10, Status: "active", CategoryID: 8})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateListingRejectsBadInput(t *testing.T) {
	svc := ListingService{}
	_, err := svc.Create(ListingInput{Price: -5, Status: "weird"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var verr domain.ValidationError
	if !asValidation(err, &verr) {
		t.Fatalf("wrong error type: %T", err)
	}
	fields := verr.FieldMap()
	for _, f := range []string{"title_en", "price", "status"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("missing field error for %s in %v", f, fields)
		}
	}
}

func asValidation(err error, target *domain.ValidationError) bool {
	v, ok := err.(domain.ValidationError)
	if ok {
		*target = v
	}
	return ok
}
