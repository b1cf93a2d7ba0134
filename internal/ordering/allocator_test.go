package ordering

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAllocatePromotedBelowCurrentMinimum(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// promoted rows carry indices {-3, -1, 0}
	mock.ExpectQuery(`SELECT MIN\(order_index\) FROM listings`).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(-3))

	a := Allocator{DB: db, Table: "listings", PromotedExpr: ListingPromotedExpr}
	idx, err := a.Allocate(nil, true)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	if idx != -4 {
		t.Fatalf("promoted index = %d, want -4", idx)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAllocatePromotedWithNoPromotedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT MIN\(order_index\) FROM listings`).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))

	a := Allocator{DB: db, Table: "listings", PromotedExpr: ListingPromotedExpr}
	idx, err := a.Allocate(nil, true)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	if idx != -1 {
		t.Fatalf("first promotion index = %d, want -1", idx)
	}
}

func TestAllocateRegularAfterCurrentMaximum(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// non-promoted rows carry indices {0, 2, 5}
	mock.ExpectQuery(`SELECT MAX\(order_index\) FROM listings`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(5))

	a := Allocator{DB: db, Table: "listings", PromotedExpr: ListingPromotedExpr}
	idx, err := a.Allocate(nil, false)
	if err != nil {
		t.Fatalf("allocate error: %v", err)
	}
	if idx != 6 {
		t.Fatalf("regular index = %d, want 6", idx)
	}
}

func TestAllocateIntoEmptyCollectionStartsAtZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	for want := 0; want < 3; want++ {
		mock.ExpectQuery(`SELECT MAX\(order_index\) FROM categories`).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(maxOrNil(want - 1)))

		a := Allocator{DB: db, Table: "categories"}
		idx, err := a.Allocate(nil, false)
		if err != nil {
			t.Fatalf("allocate error: %v", err)
		}
		if idx != want {
			t.Fatalf("append index = %d, want %d", idx, want)
		}
	}
}

func maxOrNil(max int) any {
	if max < 0 {
		return nil
	}
	return max
}

func TestAllocateExplicitIndexClamped(t *testing.T) {
	a := Allocator{Table: "listings"}

	seven := 7
	if idx, err := a.Allocate(&seven, false); err != nil || idx != 7 {
		t.Fatalf("explicit index = %d (err %v), want 7", idx, err)
	}

	negative := -5
	if idx, err := a.Allocate(&negative, true); err != nil || idx != 0 {
		t.Fatalf("clamped index = %d (err %v), want 0", idx, err)
	}
}

func TestAllocatePropagatesQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT MIN\(order_index\) FROM listings`).
		WillReturnError(fmt.Errorf("connection reset"))

	a := Allocator{DB: db, Table: "listings", PromotedExpr: ListingPromotedExpr}
	if _, err := a.Allocate(nil, true); err == nil {
		t.Fatal("expected allocation error, got nil")
	}
}
