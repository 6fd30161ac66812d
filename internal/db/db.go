package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Поддерживаемые драйверы базы данных.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open создаёт подключение к базе с заданным драйвером и DSN.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: не удалось подключиться: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		// SQLite сериализует запись сам; одно соединение нужно и для :memory:,
		// иначе каждое новое соединение увидит пустую базу.
		conn.SetMaxOpenConns(1)
	default:
		conn.SetMaxOpenConns(100)
		conn.SetMaxIdleConns(25)
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	return conn, nil
}

// RunMigrations выполняет SQL файлы из встроенного каталога миграций драйвера.
func RunMigrations(ctx context.Context, conn *sqlx.DB) error {
	migrationsFS, err := MigrationsFor(conn.DriverName())
	if err != nil {
		return err
	}
	return ApplyMigrations(ctx, conn, migrationsFS)
}

// ApplyMigrations выполняет по порядку ещё не применённые *.sql файлы из migrationsFS.
func ApplyMigrations(ctx context.Context, conn *sqlx.DB, migrationsFS fs.FS) error {
	// Создаём таблицу для отслеживания выполненных миграций
	if err := initMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("migrations: не удалось инициализировать таблицу миграций: %w", err)
	}

	entries, err := fs.ReadDir(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("migrations: не удалось прочитать каталог миграций: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		migrationName := entry.Name()

		// Проверяем, была ли миграция уже выполнена
		alreadyApplied, err := isMigrationApplied(ctx, conn, migrationName)
		if err != nil {
			return fmt.Errorf("migrations: не удалось проверить статус миграции %s: %w", migrationName, err)
		}

		if alreadyApplied {
			continue
		}

		if err := applyMigration(ctx, conn, migrationsFS, migrationName); err != nil {
			return err
		}
	}

	return nil
}

// initMigrationsTable создаёт таблицу для отслеживания выполненных миграций.
func initMigrationsTable(ctx context.Context, conn *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := conn.ExecContext(ctx, query)
	return err
}

// isMigrationApplied проверяет, была ли миграция уже выполнена.
func isMigrationApplied(ctx context.Context, conn *sqlx.DB, migrationName string) (bool, error) {
	var count int
	query := conn.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE name = ?`)
	if err := conn.GetContext(ctx, &count, query, migrationName); err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyMigration читает и выполняет конкретный SQL файл в транзакции.
func applyMigration(ctx context.Context, conn *sqlx.DB, migrationsFS fs.FS, migrationName string) error {
	sqlBytes, err := fs.ReadFile(migrationsFS, migrationName)
	if err != nil {
		return fmt.Errorf("migrations: не удалось прочитать миграцию %s: %w", migrationName, err)
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrations: не удалось начать транзакцию для миграции %s: %w", migrationName, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("migrations: не удалось выполнить миграцию %s: %w", migrationName, err)
	}

	// Отмечаем миграцию как выполненную
	if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO schema_migrations (name) VALUES (?)`), migrationName); err != nil {
		return fmt.Errorf("migrations: не удалось отметить миграцию %s как выполненную: %w", migrationName, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrations: не удалось зафиксировать транзакцию для миграции %s: %w", migrationName, err)
	}

	return nil
}
