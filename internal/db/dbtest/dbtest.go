package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/granada-backend/internal/db"
)

var memoryDBCounter atomic.Int64

// NewSQLite открывает изолированную in-memory SQLite базу с применёнными миграциями.
// Используется тестами репозиториев и HTTP слоя.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	name := fmt.Sprintf("file:granada_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", memoryDBCounter.Add(1))
	conn, err := db.Open(context.Background(), db.DriverSQLite, name)
	if err != nil {
		t.Fatalf("dbtest: не удалось открыть sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.RunMigrations(context.Background(), conn); err != nil {
		t.Fatalf("dbtest: не удалось применить миграции: %v", err)
	}

	return conn
}
