package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
)

const courseListCachePrefix = "cursos"

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	TransitionState(ctx context.Context, code string, target models.CourseState) (bool, error)
}

type enrollmentCounter interface {
	CountActiveByCourse(ctx context.Context, courseCode string) (int, error)
}

type coordinatorReader interface {
	FindByID(ctx context.Context, id string) (*models.Coordinator, error)
}

type studentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// CreateCourseRequest describes course creation payload.
type CreateCourseRequest struct {
	Code     string `json:"codigo" validate:"required,alphanum,min=3"`
	Name     string `json:"nombre" validate:"required"`
	Capacity int    `json:"cupo" validate:"required"`
	Semester int    `json:"semestre" validate:"required,gte=1"`
}

// CourseService orchestrates the course registry and approval workflow.
type CourseService struct {
	repo         courseRepository
	enrollments  enrollmentCounter
	coordinators coordinatorReader
	students     studentReader
	cache        *CacheService
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(repo courseRepository, enrollments enrollmentCounter, coordinators coordinatorReader, students studentReader, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, enrollments: enrollments, coordinators: coordinators, students: students, cache: cache, validator: validate, logger: logger}
}

// Create registers a new course in pending state.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if req.Capacity <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "el cupo debe ser mayor que cero")
	}
	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("el curso %s ya existe", req.Code))
	} else if err != sql.ErrNoRows {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course code")
	}

	course := &models.Course{
		Code:     req.Code,
		Name:     req.Name,
		Capacity: req.Capacity,
		Semester: req.Semester,
		State:    models.CourseStatePending,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	s.invalidateListCache(ctx)
	s.logger.Info("course created", zap.String("codigo", course.Code), zap.Int("cupo", course.Capacity))
	return course, nil
}

// List returns courses matching the filter. An unspecified state filter
// defaults to approved courses only.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	if filter.State == "" {
		filter.State = models.CourseStateApproved
	}
	if !filter.State.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("estado desconocido: %s", filter.State))
	}

	key := fmt.Sprintf("%s:%s:%d", courseListCachePrefix, filter.State, filter.Semester)
	var cached []models.Course
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	_ = s.cache.Set(ctx, key, courses, 0)
	return courses, nil
}

// GetByCode returns a course with its enrollment counts.
func (s *CourseService) GetByCode(ctx context.Context, code string) (*models.CourseDetail, error) {
	course, err := s.findCourse(ctx, code)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.enrollments.CountActiveByCourse(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count enrollments")
	}
	seats := course.Capacity - enrolled
	if seats < 0 {
		seats = 0
	}
	return &models.CourseDetail{Course: *course, Enrolled: enrolled, SeatsAvailable: seats}, nil
}

// Validate runs the admissibility check for a student against a course.
func (s *CourseService) Validate(ctx context.Context, code, studentID string, meetsPrerequisites *bool) (*models.Admission, error) {
	course, err := s.findCourse(ctx, code)
	if err != nil {
		return nil, err
	}
	if studentID != "" {
		if _, err := s.students.FindByID(ctx, studentID); err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "estudiante no encontrado")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
		}
	}
	enrolled, err := s.enrollments.CountActiveByCourse(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count enrollments")
	}
	admission := Admissibility(*course, enrolled, meetsPrerequisites)
	return &admission, nil
}

// Approve transitions a pending course to approved.
func (s *CourseService) Approve(ctx context.Context, code, coordinatorID string) (*models.Course, error) {
	return s.transition(ctx, code, coordinatorID, models.CourseStateApproved)
}

// Reject transitions a pending course to rejected.
func (s *CourseService) Reject(ctx context.Context, code, coordinatorID string) (*models.Course, error) {
	return s.transition(ctx, code, coordinatorID, models.CourseStateRejected)
}

func (s *CourseService) transition(ctx context.Context, code, coordinatorID string, target models.CourseState) (*models.Course, error) {
	if coordinatorID != "" {
		if _, err := s.coordinators.FindByID(ctx, coordinatorID); err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "coordinador no encontrado")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load coordinator")
		}
	}
	course, err := s.findCourse(ctx, code)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.TransitionState(ctx, code, target)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to transition course state")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, fmt.Sprintf("el curso %s no está pendiente (estado actual: %s)", code, course.State))
	}
	s.invalidateListCache(ctx)
	s.logger.Info("course state transitioned", zap.String("codigo", code), zap.String("estado", string(target)))

	course.State = target
	return course, nil
}

func (s *CourseService) findCourse(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "curso no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return course, nil
}

func (s *CourseService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, courseListCachePrefix+":*"); err != nil {
		s.logger.Warn("course list cache invalidation failed", zap.Error(err))
	}
}
