package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("driver_storage").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("driver_storage"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	if !HasTable(context.Background(), conn, "driver_storage") {
		t.Fatalf("expected driver_storage to exist")
	}
	if HasTable(context.Background(), conn, "missing") {
		t.Fatalf("expected missing table to be absent")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
