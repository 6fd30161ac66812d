package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/repository/common"
)

// ErrProposalNotFound возвращается, когда заявка не найдена.
var ErrProposalNotFound = errors.New("proposal not found")

var proposalsTable = common.Table{
	Name:     "proposals",
	Columns:  "id, owner_id, topic, content",
	NotFound: ErrProposalNotFound,
}

// ProposalRepository хранит сгенерированные заявки.
type ProposalRepository struct {
	db *sqlx.DB
}

// NewProposalRepository создаёт репозиторий заявок.
func NewProposalRepository(db *sqlx.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create сохраняет заявку и проставляет ей ID.
func (r *ProposalRepository) Create(ctx context.Context, p *models.Proposal) error {
	query := r.db.Rebind(`
		INSERT INTO proposals (owner_id, topic, content)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	if err := r.db.QueryRowxContext(ctx, query, p.OwnerID, p.Topic, p.Content).Scan(&p.ID); err != nil {
		return fmt.Errorf("proposal repository: create %w", err)
	}

	return nil
}

// FindByID возвращает заявку по ID или ErrProposalNotFound.
func (r *ProposalRepository) FindByID(ctx context.Context, id int64) (*models.Proposal, error) {
	return common.FindOne[models.Proposal](ctx, r.db, proposalsTable, "id", id)
}

// ListByOwner возвращает заявки пользователя, новые первыми.
func (r *ProposalRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Proposal, error) {
	proposals := []models.Proposal{}
	query := r.db.Rebind(`SELECT ` + proposalsTable.Columns + ` FROM proposals WHERE owner_id = ? ORDER BY id DESC`)
	if err := r.db.SelectContext(ctx, &proposals, query, ownerID); err != nil {
		return nil, fmt.Errorf("proposal repository: list by owner %w", err)
	}
	return proposals, nil
}
