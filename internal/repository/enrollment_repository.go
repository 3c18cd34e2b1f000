package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edubot/edubot-api/internal/models"
)

// AdmissionFunc decides whether an enrollment may be inserted given the
// locked course row, the current active enrollment count and whether the
// student already holds an active enrollment. Returning an error aborts
// the transaction.
type AdmissionFunc func(course models.Course, enrolled int, duplicate bool) error

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts an enrollment inside a single transaction. The course
// row is locked FOR UPDATE before counting seats so concurrent attempts
// against the last open seat serialize and exactly one wins.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment, admit AdmissionFunc) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}
	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentStatusActive
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin enrollment tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var course models.Course
	const lockQuery = `SELECT codigo, nombre, cupo, semestre, estado, created_at, updated_at FROM cursos WHERE codigo = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &course, lockQuery, enrollment.CourseCode); err != nil {
		return err
	}

	var enrolled int
	const countQuery = `SELECT COUNT(*) FROM inscripciones WHERE curso_codigo = $1 AND estado = $2`
	if err := tx.GetContext(ctx, &enrolled, countQuery, enrollment.CourseCode, models.EnrollmentStatusActive); err != nil {
		return fmt.Errorf("count enrollments: %w", err)
	}

	duplicate := false
	var one int
	const dupQuery = `SELECT 1 FROM inscripciones WHERE estudiante_id = $1 AND curso_codigo = $2 AND estado = $3 LIMIT 1`
	if err := tx.GetContext(ctx, &one, dupQuery, enrollment.StudentID, enrollment.CourseCode, models.EnrollmentStatusActive); err != nil {
		if err != sql.ErrNoRows {
			return fmt.Errorf("check duplicate enrollment: %w", err)
		}
	} else {
		duplicate = true
	}

	if admit != nil {
		if err := admit(course, enrolled, duplicate); err != nil {
			return err
		}
	}

	const insertQuery = `INSERT INTO inscripciones (id, estudiante_id, curso_codigo, fecha_inscripcion, estado)
        VALUES (:id, :estudiante_id, :curso_codigo, :fecha_inscripcion, :estado)`
	if _, err := tx.NamedExecContext(ctx, insertQuery, enrollment); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit enrollment: %w", err)
	}
	return nil
}

// FindByID returns an enrollment by its ID.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	const query = `SELECT id, estudiante_id, curso_codigo, fecha_inscripcion, estado FROM inscripciones WHERE id = $1`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// CountActiveByCourse returns the number of active enrollments for a course.
func (r *EnrollmentRepository) CountActiveByCourse(ctx context.Context, courseCode string) (int, error) {
	const query = `SELECT COUNT(*) FROM inscripciones WHERE curso_codigo = $1 AND estado = $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, courseCode, models.EnrollmentStatusActive); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}

// ListByStudent returns a student's enrollments with course context.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentDetail, error) {
	const query = `SELECT i.id, i.estudiante_id, i.curso_codigo, i.fecha_inscripcion, i.estado,
        e.nombre AS estudiante_nombre, c.nombre AS curso_nombre, c.semestre
        FROM inscripciones i
        LEFT JOIN estudiantes e ON e.id = i.estudiante_id
        LEFT JOIN cursos c ON c.codigo = i.curso_codigo
        WHERE i.estudiante_id = $1
        ORDER BY i.fecha_inscripcion`
	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, query, studentID); err != nil {
		return nil, fmt.Errorf("list student enrollments: %w", err)
	}
	return enrollments, nil
}

// ListByCourse returns the enrollments recorded against a course.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseCode string) ([]models.EnrollmentDetail, error) {
	const query = `SELECT i.id, i.estudiante_id, i.curso_codigo, i.fecha_inscripcion, i.estado,
        e.nombre AS estudiante_nombre, c.nombre AS curso_nombre, c.semestre
        FROM inscripciones i
        LEFT JOIN estudiantes e ON e.id = i.estudiante_id
        LEFT JOIN cursos c ON c.codigo = i.curso_codigo
        WHERE i.curso_codigo = $1
        ORDER BY i.fecha_inscripcion`
	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, query, courseCode); err != nil {
		return nil, fmt.Errorf("list course enrollments: %w", err)
	}
	return enrollments, nil
}

// UpdateStatus updates the status of an enrollment. It returns false when
// the enrollment does not exist.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) (bool, error) {
	const query = `UPDATE inscripciones SET estado = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return false, fmt.Errorf("update enrollment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update enrollment status: %w", err)
	}
	return affected == 1, nil
}
