package repositories

import (
	"testing"

	"aqarhub/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInsertListingWithoutRefsWritesNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// no category/area chosen and no descriptions: the optional columns
	// must go out as NULL, not as 0 or "", or the foreign keys reject
	// the row
	mock.ExpectExec(`INSERT INTO listings`).
		WithArgs("Studio", "", "studio", nil, nil, 100.0,
			nil, nil, "active", false, false, 0, "").
		WillReturnResult(sqlmock.NewResult(11, 1))

	r := ListingRepository{DB: db}
	id, err := r.Insert(models.Listing{
		TitleEN:    "Studio",
		Slug:       "studio",
		Price:      100,
		Status:     "active",
		OrderIndex: 0,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d, want 11", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateListingClearsOptionalRefs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// an edit that unassigns category and area patches both back to NULL
	mock.ExpectExec(`UPDATE listings SET category_id=\?, area_id=\?, updated_at=NOW\(\) WHERE id=\?`).
		WithArgs(nil, nil, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	var none int64
	r := ListingRepository{DB: db}
	if err := r.Update(4, models.ListingPatch{CategoryID: &none, AreaID: &none}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
