package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
)

type mockCoordinatorRepo struct {
	coordinators map[string]models.Coordinator
}

func (m *mockCoordinatorRepo) Create(ctx context.Context, coordinator *models.Coordinator) error {
	if m.coordinators == nil {
		m.coordinators = make(map[string]models.Coordinator)
	}
	if coordinator.ID == "" {
		coordinator.ID = "coord-new"
	}
	m.coordinators[coordinator.ID] = *coordinator
	return nil
}

func (m *mockCoordinatorRepo) FindByID(ctx context.Context, id string) (*models.Coordinator, error) {
	if c, ok := m.coordinators[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func TestCoordinatorServiceCreate(t *testing.T) {
	repo := &mockCoordinatorRepo{}
	svc := NewCoordinatorService(repo, validator.New(), zap.NewNop())

	coordinator, err := svc.Create(context.Background(), CreateCoordinatorRequest{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", coordinator.Name)
	assert.Contains(t, repo.coordinators, coordinator.ID)
}

func TestCoordinatorServiceCreateRequiresName(t *testing.T) {
	svc := NewCoordinatorService(&mockCoordinatorRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateCoordinatorRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCoordinatorServiceGetNotFound(t *testing.T) {
	svc := NewCoordinatorService(&mockCoordinatorRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
