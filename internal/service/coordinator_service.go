package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
)

type coordinatorRepository interface {
	Create(ctx context.Context, coordinator *models.Coordinator) error
	FindByID(ctx context.Context, id string) (*models.Coordinator, error)
}

// CreateCoordinatorRequest describes coordinator registration payload.
type CreateCoordinatorRequest struct {
	Name string `json:"nombre" validate:"required"`
}

// CoordinatorService manages the coordinator registry.
type CoordinatorService struct {
	repo      coordinatorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCoordinatorService constructs CoordinatorService.
func NewCoordinatorService(repo coordinatorRepository, validate *validator.Validate, logger *zap.Logger) *CoordinatorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoordinatorService{repo: repo, validator: validate, logger: logger}
}

// Create registers a new coordinator.
func (s *CoordinatorService) Create(ctx context.Context, req CreateCoordinatorRequest) (*models.Coordinator, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid coordinator payload")
	}
	coordinator := &models.Coordinator{Name: req.Name}
	if err := s.repo.Create(ctx, coordinator); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create coordinator")
	}
	return coordinator, nil
}

// Get returns a coordinator by ID.
func (s *CoordinatorService) Get(ctx context.Context, id string) (*models.Coordinator, error) {
	coordinator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "coordinador no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load coordinator")
	}
	return coordinator, nil
}
