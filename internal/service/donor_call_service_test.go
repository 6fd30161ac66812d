package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
)

type mockDonorCallRepo struct {
	mock.Mock
}

func (m *mockDonorCallRepo) Create(ctx context.Context, call *models.DonorCall) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *mockDonorCallRepo) List(ctx context.Context) ([]models.DonorCall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DonorCall), args.Error(1)
}

func TestDonorCallService_CreateNormalizes(t *testing.T) {
	repo := new(mockDonorCallRepo)
	svc := NewDonorCallService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.DonorCall")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.DonorCall).ID = 10
		}).
		Return(nil)

	call, err := svc.Create(ctx, DonorCallInput{
		Title:       " <i>Water</i> Fund ",
		Description: "Grants for wells",
		SDGTags:     []string{"3", " 13", "3"},
		Keywords:    []string{"Water", " Climate Change ", "UNICEF", "Water", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), call.ID)
	assert.Equal(t, "Water Fund", call.Title)
	assert.Equal(t, []string{"3", "13"}, call.SDGTags)
	assert.Equal(t, []string{"Water", "Climate Change", "UNICEF"}, call.Keywords)
	repo.AssertExpectations(t)
}

func TestDonorCallService_CreateValidation(t *testing.T) {
	repo := new(mockDonorCallRepo)
	svc := NewDonorCallService(repo)

	_, err := svc.Create(context.Background(), DonorCallInput{Title: ""})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Create(context.Background(), DonorCallInput{Title: "ok", Keywords: []string{strings.Repeat("k", 51)}})
	assert.True(t, apperror.IsValidation(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDonorCallService_CreateStoreError(t *testing.T) {
	repo := new(mockDonorCallRepo)
	ctx := context.Background()
	repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

	_, err := NewDonorCallService(repo).Create(ctx, DonorCallInput{Title: "Water Fund"})
	assert.Equal(t, apperror.ErrCodeDatabaseError, apperror.CodeOf(err))
}

func TestDonorCallService_List(t *testing.T) {
	repo := new(mockDonorCallRepo)
	ctx := context.Background()
	expected := []models.DonorCall{{ID: 1, Title: "Water", SDGTags: []string{"6"}, Keywords: []string{}}}
	repo.On("List", ctx).Return(expected, nil)

	calls, err := NewDonorCallService(repo).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, calls)
}
