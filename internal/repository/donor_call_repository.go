package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/repository/common"
)

// DonorCallRepository хранит конкурсы и их теги/ключевые слова в дочерних таблицах.
type DonorCallRepository struct {
	db *sqlx.DB
}

// NewDonorCallRepository создаёт репозиторий конкурсов.
func NewDonorCallRepository(db *sqlx.DB) *DonorCallRepository {
	return &DonorCallRepository{db: db}
}

// setRow - строка donor_call_tags / donor_call_keywords.
type setRow struct {
	DonorCallID int64  `db:"donor_call_id"`
	Position    int    `db:"position"`
	Value       string `db:"value"`
}

// Create сохраняет конкурс вместе с тегами и ключевыми словами в одной транзакции.
// Значения должны быть уже нормализованы и без дублей.
func (r *DonorCallRepository) Create(ctx context.Context, call *models.DonorCall) error {
	return common.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			INSERT INTO donor_calls (title, description)
			VALUES (?, ?)
			RETURNING id
		`)
		if err := tx.QueryRowxContext(ctx, query, call.Title, call.Description).Scan(&call.ID); err != nil {
			return fmt.Errorf("donor call repository: create %w", err)
		}

		if err := insertSet(ctx, tx, "donor_call_tags", call.ID, call.SDGTags); err != nil {
			return err
		}
		return insertSet(ctx, tx, "donor_call_keywords", call.ID, call.Keywords)
	})
}

var setColumns = []string{"donor_call_id", "position", "value"}

func insertSet(ctx context.Context, tx *sqlx.Tx, table string, callID int64, values []string) error {
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{callID, i, v}
	}
	if err := common.InsertRows(ctx, tx, table, setColumns, rows, 0); err != nil {
		return fmt.Errorf("donor call repository: %w", err)
	}
	return nil
}

// List возвращает все конкурсы в порядке id. Теги и ключевые слова подгружаются
// двумя запросами на всю выборку, без N+1.
func (r *DonorCallRepository) List(ctx context.Context) ([]models.DonorCall, error) {
	calls := []models.DonorCall{}
	if err := r.db.SelectContext(ctx, &calls, `SELECT id, title, description FROM donor_calls ORDER BY id`); err != nil {
		return nil, fmt.Errorf("donor call repository: list %w", err)
	}
	if len(calls) == 0 {
		return calls, nil
	}

	tags, err := r.loadSet(ctx, "donor_call_tags")
	if err != nil {
		return nil, err
	}
	keywords, err := r.loadSet(ctx, "donor_call_keywords")
	if err != nil {
		return nil, err
	}

	for i := range calls {
		calls[i].SDGTags = orEmpty(tags[calls[i].ID])
		calls[i].Keywords = orEmpty(keywords[calls[i].ID])
	}

	return calls, nil
}

func (r *DonorCallRepository) loadSet(ctx context.Context, table string) (map[int64][]string, error) {
	var rows []setRow
	query := `SELECT donor_call_id, position, value FROM ` + table + ` ORDER BY donor_call_id, position`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("donor call repository: load %s %w", table, err)
	}

	byCall := make(map[int64][]string)
	for _, row := range rows {
		byCall[row.DonorCallID] = append(byCall[row.DonorCallID], row.Value)
	}
	return byCall, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
