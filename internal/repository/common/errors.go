package common

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrAlreadyExists - общая ошибка нарушения уникальности для всех репозиториев.
var ErrAlreadyExists = errors.New("entity already exists")

// pgUniqueViolation - код ошибки PostgreSQL unique_violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation определяет нарушение уникального ограничения для PostgreSQL и SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
		return strings.Contains(strings.ToLower(sqliteErr.Error()), "unique constraint failed")
	}

	return false
}

// UniqueConstraint возвращает имя нарушенного ограничения или колонки, если его удаётся определить.
func UniqueConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		// "UNIQUE constraint failed: users.username"
		return sqliteErr.Error()
	}

	return ""
}
