package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/internal/repository"
	"github.com/edubot/edubot-api/pkg/database"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
)

const (
	enrollRetryAttempts = 3
	enrollRetryDelay    = 100 * time.Millisecond
)

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment, admit repository.AdmissionFunc) error
	FindByID(ctx context.Context, id string) (*models.Enrollment, error)
	CountActiveByCourse(ctx context.Context, courseCode string) (int, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentDetail, error)
	ListByCourse(ctx context.Context, courseCode string) ([]models.EnrollmentDetail, error)
	UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) (bool, error)
}

type courseReader interface {
	FindByCode(ctx context.Context, code string) (*models.Course, error)
}

type enrollmentNotifier interface {
	EnrollmentCreated(student models.Student, course models.Course)
	EnrollmentCancelled(studentID, courseCode string)
}

// EnrollRequest describes enrollment creation payload.
type EnrollRequest struct {
	StudentID          string `json:"estudiante_id" validate:"required"`
	CourseCode         string `json:"curso_codigo" validate:"required"`
	MeetsPrerequisites *bool  `json:"cumple_prerrequisitos"`
}

// EnrollmentService orchestrates the enrollment ledger.
type EnrollmentService struct {
	repo          enrollmentRepository
	courses       courseReader
	students      studentReader
	notifications enrollmentNotifier
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, courses courseReader, students studentReader, notifications enrollmentNotifier, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, courses: courses, students: students, notifications: notifications, validator: validate, logger: logger}
}

// Enroll registers a student in a course. Capacity and approval state are
// enforced inside the repository transaction; connectivity failures are
// retried a bounded number of times, business rejections never are.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "estudiante no encontrado")
		}
		return nil, s.storeError(err, "failed to load student")
	}
	if !student.Active {
		return nil, appErrors.Clone(appErrors.ErrValidation, "el estudiante no está activo")
	}

	enrollment := &models.Enrollment{
		StudentID:  req.StudentID,
		CourseCode: req.CourseCode,
		EnrolledAt: time.Now().UTC(),
		Status:     models.EnrollmentStatusActive,
	}

	var admitted models.Course
	admit := func(course models.Course, enrolled int, duplicate bool) error {
		if duplicate {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("el estudiante ya está inscrito en %s", course.Code))
		}
		admission := Admissibility(course, enrolled, req.MeetsPrerequisites)
		if !admission.CanEnroll {
			if !admission.Approved {
				return appErrors.Clone(appErrors.ErrInvalidState, reasonNotApproved)
			}
			return appErrors.Clone(appErrors.ErrCapacity, reasonNoSeats)
		}
		admitted = course
		return nil
	}

	err = database.Retry(ctx, enrollRetryAttempts, enrollRetryDelay, func(ctx context.Context) error {
		return s.repo.Create(ctx, enrollment, admit)
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curso no encontrado")
		}
		return nil, s.storeError(err, "failed to create enrollment")
	}

	if s.notifications != nil {
		s.notifications.EnrollmentCreated(*student, admitted)
	}
	s.logger.Info("enrollment created",
		zap.String("id", enrollment.ID),
		zap.String("estudiante_id", enrollment.StudentID),
		zap.String("curso_codigo", enrollment.CourseCode))
	return enrollment, nil
}

// Cancel marks an active enrollment as cancelled.
func (s *EnrollmentService) Cancel(ctx context.Context, id string) (*models.Enrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "inscripción no encontrada")
		}
		return nil, s.storeError(err, "failed to load enrollment")
	}
	if enrollment.Status != models.EnrollmentStatusActive {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "la inscripción ya está cancelada")
	}
	ok, err := s.repo.UpdateStatus(ctx, id, models.EnrollmentStatusCancelled)
	if err != nil {
		return nil, s.storeError(err, "failed to cancel enrollment")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "inscripción no encontrada")
	}
	enrollment.Status = models.EnrollmentStatusCancelled
	if s.notifications != nil {
		s.notifications.EnrollmentCancelled(enrollment.StudentID, enrollment.CourseCode)
	}
	return enrollment, nil
}

// ListByStudent returns the enrollments recorded for a student.
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentDetail, error) {
	enrollments, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, s.storeError(err, "failed to list enrollments")
	}
	if enrollments == nil {
		enrollments = []models.EnrollmentDetail{}
	}
	return enrollments, nil
}

// ListByCourse returns the enrollments recorded against a course.
func (s *EnrollmentService) ListByCourse(ctx context.Context, courseCode string) ([]models.EnrollmentDetail, error) {
	if _, err := s.courses.FindByCode(ctx, courseCode); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curso no encontrado")
		}
		return nil, s.storeError(err, "failed to load course")
	}
	enrollments, err := s.repo.ListByCourse(ctx, courseCode)
	if err != nil {
		return nil, s.storeError(err, "failed to list enrollments")
	}
	if enrollments == nil {
		enrollments = []models.EnrollmentDetail{}
	}
	return enrollments, nil
}

// storeError keeps typed domain errors intact and maps connectivity
// failures to a service-unavailable response.
func (s *EnrollmentService) storeError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if database.IsConnectivityError(err) {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, appErrors.ErrUnavailable.Message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
