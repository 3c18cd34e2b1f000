package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edubot/edubot-api/internal/models"
)

// CoordinatorRepository handles persistence of coordinators.
type CoordinatorRepository struct {
	db *sqlx.DB
}

// NewCoordinatorRepository constructs the repository.
func NewCoordinatorRepository(db *sqlx.DB) *CoordinatorRepository {
	return &CoordinatorRepository{db: db}
}

// Create persists a new coordinator record.
func (r *CoordinatorRepository) Create(ctx context.Context, coordinator *models.Coordinator) error {
	if coordinator.ID == "" {
		coordinator.ID = uuid.NewString()
	}
	if coordinator.CreatedAt.IsZero() {
		coordinator.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO coordinadores (id, nombre, created_at) VALUES (:id, :nombre, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, coordinator); err != nil {
		return fmt.Errorf("create coordinator: %w", err)
	}
	return nil
}

// FindByID returns a coordinator by ID.
func (r *CoordinatorRepository) FindByID(ctx context.Context, id string) (*models.Coordinator, error) {
	const query = `SELECT id, nombre, created_at FROM coordinadores WHERE id = $1`
	var coordinator models.Coordinator
	if err := r.db.GetContext(ctx, &coordinator, query, id); err != nil {
		return nil, err
	}
	return &coordinator, nil
}
