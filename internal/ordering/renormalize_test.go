package ordering

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRenormalizeResequencesPromotedFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// rows already come back promoted-first in display order
	mock.ExpectQuery(`SELECT id FROM listings ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9).AddRow(4).AddRow(1).AddRow(2))

	// indices -17 and 3 move; 1 and 2 already hold their slot
	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(0, int64(9), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(1, int64(4), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(3, int64(2), 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := Renormalize(db, "listings", ListingPromotedExpr)
	if err != nil {
		t.Fatalf("renormalize error: %v", err)
	}
	if changed != 2 {
		t.Fatalf("changed = %d, want 2", changed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
