package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// defaultChunk - сколько строк уходит в один INSERT.
const defaultChunk = 100

// Table описывает таблицу и колонки, которые сканируются в модель.
type Table struct {
	Name     string
	Columns  string
	NotFound error
}

// FindOne читает одну строку table, где field = value.
// sql.ErrNoRows превращается в table.NotFound.
func FindOne[T any](ctx context.Context, q sqlx.ExtContext, table Table, field string, value any) (*T, error) {
	query := q.Rebind("SELECT " + table.Columns + " FROM " + table.Name + " WHERE " + field + " = ?")

	var row T
	err := sqlx.GetContext(ctx, q, &row, query, value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, table.NotFound
	case err != nil:
		return nil, fmt.Errorf("%s: find by %s: %w", table.Name, field, err)
	}
	return &row, nil
}

// InsertRows вставляет rows в table пачками по chunk строк.
// Каждая строка должна содержать значения для всех columns.
func InsertRows(ctx context.Context, q sqlx.ExtContext, table string, columns []string, rows [][]any, chunk int) error {
	if chunk <= 0 {
		chunk = defaultChunk
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	prefix := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES "

	for start := 0; start < len(rows); start += chunk {
		end := min(start+chunk, len(rows))

		groups := make([]string, 0, end-start)
		args := make([]any, 0, (end-start)*len(columns))
		for i, row := range rows[start:end] {
			if len(row) != len(columns) {
				return fmt.Errorf("%s: строка %d: ожидалось %d значений, получено %d", table, start+i, len(columns), len(row))
			}
			groups = append(groups, placeholder)
			args = append(args, row...)
		}

		if _, err := q.ExecContext(ctx, q.Rebind(prefix+strings.Join(groups, ", ")), args...); err != nil {
			return fmt.Errorf("%s: insert: %w", table, err)
		}
	}

	return nil
}

// InTx выполняет fn в транзакции. Ошибка или паника fn откатывают её.
func InTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
