package ordering

import (
	"fmt"
	"testing"

	"aqarhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReorderAppliesFullPermutation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ids := []int64{30, 10, 50, 20, 40}

	idRows := sqlmock.NewRows([]string{"id"})
	for _, id := range ids {
		idRows.AddRow(id)
	}
	mock.ExpectQuery(`SELECT id FROM listings WHERE id IN`).
		WillReturnRows(idRows)

	for pos, id := range ids {
		mock.ExpectExec(`UPDATE listings SET order_index=`).
			WithArgs(pos, id).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	r := Reorderer{DB: db, Table: "listings"}
	if err := r.Apply(ids); err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReorderRejectsUnknownIDWithoutMutating(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// id 99 does not exist in the collection
	mock.ExpectQuery(`SELECT id FROM categories WHERE id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	r := Reorderer{DB: db, Table: "categories"}
	err = r.Apply([]int64{1, 99, 2})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	// no UPDATE was expected; any mutation would fail ExpectationsWereMet
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("batch mutated rows despite unknown id: %v", err)
	}
}

func TestReorderRejectsDuplicatesAndEmptyBatch(t *testing.T) {
	r := Reorderer{Table: "areas"}
	if err := r.Apply(nil); !domain.IsValidation(err) {
		t.Fatalf("empty batch: expected validation error, got %v", err)
	}
	if err := r.Apply([]int64{1, 2, 1}); !domain.IsValidation(err) {
		t.Fatalf("duplicate id: expected validation error, got %v", err)
	}
}

func TestReorderCountsFailedRowsWithoutRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ids := []int64{7, 8, 9}
	idRows := sqlmock.NewRows([]string{"id"})
	for _, id := range ids {
		idRows.AddRow(id)
	}
	mock.ExpectQuery(`SELECT id FROM listings WHERE id IN`).WillReturnRows(idRows)

	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(0, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(1, int64(8)).
		WillReturnError(fmt.Errorf("lock wait timeout"))
	mock.ExpectExec(`UPDATE listings SET order_index=`).WithArgs(2, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := Reorderer{DB: db, Table: "listings"}
	err = r.Apply(ids)
	if !domain.IsPartialBatch(err) {
		t.Fatalf("expected partial batch error, got %v", err)
	}
	var pb domain.PartialBatchError
	if !asPartial(err, &pb) || pb.Failed != 1 || pb.Total != 3 {
		t.Fatalf("unexpected failure accounting: %+v", pb)
	}
	// the two successful updates were issued regardless
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func asPartial(err error, target *domain.PartialBatchError) bool {
	pb, ok := err.(domain.PartialBatchError)
	if ok {
		*target = pb
	}
	return ok
}
