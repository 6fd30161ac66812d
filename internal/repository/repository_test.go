package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/granada-backend/internal/db/dbtest"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/repository/common"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	repo := NewUserRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"}))

	err := repo.Create(ctx, &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	err = repo.Create(ctx, &models.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	repo := NewUserRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &models.User{Username: "race", Email: "race@example.com", PasswordHash: "h"})
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrAlreadyExists):
			conflicts++
		default:
			t.Fatalf("неожиданная ошибка: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
}

func TestProposalRepository_CRUD(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	users := NewUserRepository(conn)
	proposals := NewProposalRepository(conn)
	ctx := context.Background()

	owner := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, owner))

	first := &models.Proposal{OwnerID: owner.ID, Topic: "Clean Water", Content: "Proposal for Clean Water."}
	second := &models.Proposal{OwnerID: owner.ID, Topic: "Solar", Content: "Proposal for Solar."}
	require.NoError(t, proposals.Create(ctx, first))
	require.NoError(t, proposals.Create(ctx, second))

	got, err := proposals.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)

	list, err := proposals.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	_, err = proposals.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrProposalNotFound)
}

func TestProposalRepository_RejectsUnknownOwner(t *testing.T) {
	proposals := NewProposalRepository(dbtest.NewSQLite(t))

	err := proposals.Create(context.Background(), &models.Proposal{OwnerID: 42, Topic: "t", Content: "c"})
	assert.Error(t, err)
}

func TestDonorCallRepository_RoundTripPreservesOrder(t *testing.T) {
	repo := NewDonorCallRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	water := &models.DonorCall{
		Title:       "Water Fund",
		Description: "Rural water access",
		SDGTags:     []string{"3", "13"},
		Keywords:    []string{"Water", "Climate Change", "water"},
	}
	empty := &models.DonorCall{Title: "Open Call", SDGTags: []string{}, Keywords: []string{}}
	require.NoError(t, repo.Create(ctx, water))
	require.NoError(t, repo.Create(ctx, empty))

	calls, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, calls, 2)

	assert.Equal(t, water.ID, calls[0].ID)
	assert.Equal(t, []string{"3", "13"}, calls[0].SDGTags)
	assert.Equal(t, []string{"Water", "Climate Change", "water"}, calls[0].Keywords)
	assert.Equal(t, "Rural water access", calls[0].Description)

	assert.Equal(t, empty.ID, calls[1].ID)
	assert.Equal(t, []string{}, calls[1].SDGTags)
	assert.Equal(t, []string{}, calls[1].Keywords)
}

func TestDonorCallRepository_DuplicateTagRollsBack(t *testing.T) {
	repo := NewDonorCallRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	err := repo.Create(ctx, &models.DonorCall{Title: "Broken", SDGTags: []string{"3", "3"}})
	require.Error(t, err)

	calls, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestDonorCallRepository_EmptyList(t *testing.T) {
	repo := NewDonorCallRepository(dbtest.NewSQLite(t))

	calls, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, calls)
	assert.Empty(t, calls)
}
