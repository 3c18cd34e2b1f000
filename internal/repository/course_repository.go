package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edubot/edubot-api/internal/models"
)

// CourseRepository handles persistence of courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create persists a new course. The caller decides the initial state.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now
	const query = `INSERT INTO cursos (codigo, nombre, cupo, semestre, estado, created_at, updated_at)
        VALUES (:codigo, :nombre, :cupo, :semestre, :estado, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// List returns courses filtered by semester and state, in insertion order.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	var conditions []string
	var args []interface{}

	if filter.Semester > 0 {
		conditions = append(conditions, fmt.Sprintf("semestre = $%d", len(args)+1))
		args = append(args, filter.Semester)
	}
	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("estado = $%d", len(args)+1))
		args = append(args, filter.State)
	}

	query := "SELECT codigo, nombre, cupo, semestre, estado, created_at, updated_at FROM cursos"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByCode returns a course by its code.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	const query = `SELECT codigo, nombre, cupo, semestre, estado, created_at, updated_at FROM cursos WHERE codigo = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, code); err != nil {
		return nil, err
	}
	return &course, nil
}

// TransitionState moves a pending course to the target state. It returns
// false when the course was not pending, so a concurrent or repeated
// transition is reported rather than silently applied.
func (r *CourseRepository) TransitionState(ctx context.Context, code string, target models.CourseState) (bool, error) {
	const query = `UPDATE cursos SET estado = $2, updated_at = $3 WHERE codigo = $1 AND estado = $4`
	res, err := r.db.ExecContext(ctx, query, code, target, time.Now().UTC(), models.CourseStatePending)
	if err != nil {
		return false, fmt.Errorf("transition course state: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transition course state: %w", err)
	}
	return affected == 1, nil
}
