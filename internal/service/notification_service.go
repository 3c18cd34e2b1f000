package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/pkg/config"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
	"github.com/edubot/edubot-api/pkg/jobs"
)

type notificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByStudent(ctx context.Context, studentID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) (bool, error)
}

// NotificationService delivers student notifications asynchronously
// through the background job queue.
type NotificationService struct {
	repo    notificationRepository
	queue   *jobs.Queue
	logger  *zap.Logger
	enabled bool
}

// NewNotificationService constructs NotificationService and its queue.
func NewNotificationService(repo notificationRepository, cfg config.NotificationsConfig, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &NotificationService{repo: repo, logger: logger, enabled: cfg.Enabled}
	s.queue = jobs.NewQueue("notifications", s.deliver, jobs.QueueConfig{
		Workers:    cfg.WorkerConcurrency,
		MaxRetries: cfg.WorkerRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return s
}

// Start launches the delivery workers.
func (s *NotificationService) Start(ctx context.Context) {
	if s.enabled {
		s.queue.Start(ctx)
	}
}

// Stop drains the delivery workers.
func (s *NotificationService) Stop() {
	if s.enabled {
		s.queue.Stop()
	}
}

func (s *NotificationService) deliver(ctx context.Context, job jobs.Job) error {
	notification, ok := job.Payload.(models.Notification)
	if !ok {
		return fmt.Errorf("unexpected notification payload type %T", job.Payload)
	}
	return s.repo.Create(ctx, &notification)
}

func (s *NotificationService) enqueue(notification models.Notification) {
	if !s.enabled {
		return
	}
	job := jobs.Job{ID: uuid.NewString(), Type: "notification", Payload: notification}
	if err := s.queue.Enqueue(job); err != nil {
		s.logger.Warn("notification enqueue failed", zap.String("estudiante_id", notification.StudentID), zap.Error(err))
	}
}

// EnrollmentCreated notifies a student of a successful enrollment.
func (s *NotificationService) EnrollmentCreated(student models.Student, course models.Course) {
	s.enqueue(models.Notification{
		StudentID: student.ID,
		Message:   fmt.Sprintf("Inscripción realizada en %s - %s", course.Code, course.Name),
	})
}

// EnrollmentCancelled notifies a student of a cancelled enrollment.
func (s *NotificationService) EnrollmentCancelled(studentID, courseCode string) {
	s.enqueue(models.Notification{
		StudentID: studentID,
		Message:   fmt.Sprintf("Inscripción cancelada en %s", courseCode),
	})
}

// ListByStudent returns a student's notifications.
func (s *NotificationService) ListByStudent(ctx context.Context, studentID string) ([]models.Notification, error) {
	notifications, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	ok, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notification read")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "notificación no encontrada")
	}
	return nil
}
