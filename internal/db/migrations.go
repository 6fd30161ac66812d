package db

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// MigrationsFor возвращает встроенные миграции для драйвера.
func MigrationsFor(driver string) (fs.FS, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
		return fs.Sub(migrationFiles, "migrations/"+driver)
	default:
		return nil, fmt.Errorf("migrations: нет миграций для драйвера %q", driver)
	}
}
