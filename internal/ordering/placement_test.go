package ordering

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReindexSkippedWhenGroupUnchanged(t *testing.T) {
	a := Allocator{Table: "listings", PromotedExpr: ListingPromotedExpr}

	// toggling is_new while is_featured stays true keeps the row promoted;
	// no query may run and order_index stays untouched
	idx, err := a.ReindexOnFlagChange(true, true, true, false)
	if err != nil {
		t.Fatalf("reindex error: %v", err)
	}
	if idx != nil {
		t.Fatalf("expected no reindex, got %d", *idx)
	}

	// both regular before and after
	idx, err = a.ReindexOnFlagChange(false, false, false, false)
	if err != nil || idx != nil {
		t.Fatalf("expected no reindex for unchanged regular row, got %v / %v", idx, err)
	}
}

func TestReindexOnPromotion(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// currently promoted rows bottom out at -2
	mock.ExpectQuery(`SELECT MIN\(order_index\) FROM listings`).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(-2))

	a := Allocator{DB: db, Table: "listings", PromotedExpr: ListingPromotedExpr}
	idx, err := a.ReindexOnFlagChange(false, false, true, false)
	if err != nil {
		t.Fatalf("reindex error: %v", err)
	}
	if idx == nil || *idx != -3 {
		t.Fatalf("promotion index = %v, want -3", idx)
	}
}

func TestReindexOnDemotion(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT MAX\(order_index\) FROM listings`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(4))

	a := Allocator{DB: db, Table: "listings", PromotedExpr: ListingPromotedExpr}
	idx, err := a.ReindexOnFlagChange(true, false, false, false)
	if err != nil {
		t.Fatalf("reindex error: %v", err)
	}
	if idx == nil || *idx != 5 {
		t.Fatalf("demotion index = %v, want 5", idx)
	}
}
