package handler

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/internal/repository"
	"github.com/edubot/edubot-api/internal/service"
	"github.com/edubot/edubot-api/pkg/config"
)

type fakeCourseRepo struct {
	courses map[string]models.Course
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if f.courses == nil {
		f.courses = make(map[string]models.Course)
	}
	f.courses[course.Code] = *course
	return nil
}

func (f *fakeCourseRepo) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	var list []models.Course
	for _, c := range f.courses {
		if filter.State != "" && c.State != filter.State {
			continue
		}
		if filter.Semester > 0 && c.Semester != filter.Semester {
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeCourseRepo) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	if c, ok := f.courses[code]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCourseRepo) TransitionState(ctx context.Context, code string, target models.CourseState) (bool, error) {
	c, ok := f.courses[code]
	if !ok || c.State != models.CourseStatePending {
		return false, nil
	}
	c.State = target
	f.courses[code] = c
	return true, nil
}

type fakeEnrollmentRepo struct {
	courses     map[string]models.Course
	enrollments map[string]models.Enrollment
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment, admit repository.AdmissionFunc) error {
	course, ok := f.courses[enrollment.CourseCode]
	if !ok {
		return sql.ErrNoRows
	}
	enrolled := 0
	duplicate := false
	for _, e := range f.enrollments {
		if e.CourseCode != enrollment.CourseCode || e.Status != models.EnrollmentStatusActive {
			continue
		}
		enrolled++
		if e.StudentID == enrollment.StudentID {
			duplicate = true
		}
	}
	if admit != nil {
		if err := admit(course, enrolled, duplicate); err != nil {
			return err
		}
	}
	if f.enrollments == nil {
		f.enrollments = make(map[string]models.Enrollment)
	}
	if enrollment.ID == "" {
		enrollment.ID = "enr-new"
	}
	f.enrollments[enrollment.ID] = *enrollment
	return nil
}

func (f *fakeEnrollmentRepo) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	if e, ok := f.enrollments[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEnrollmentRepo) CountActiveByCourse(ctx context.Context, courseCode string) (int, error) {
	count := 0
	for _, e := range f.enrollments {
		if e.CourseCode == courseCode && e.Status == models.EnrollmentStatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeEnrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentDetail, error) {
	var list []models.EnrollmentDetail
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			list = append(list, models.EnrollmentDetail{Enrollment: e})
		}
	}
	return list, nil
}

func (f *fakeEnrollmentRepo) ListByCourse(ctx context.Context, courseCode string) ([]models.EnrollmentDetail, error) {
	var list []models.EnrollmentDetail
	for _, e := range f.enrollments {
		if e.CourseCode == courseCode {
			list = append(list, models.EnrollmentDetail{Enrollment: e})
		}
	}
	return list, nil
}

func (f *fakeEnrollmentRepo) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) (bool, error) {
	e, ok := f.enrollments[id]
	if !ok {
		return false, nil
	}
	e.Status = status
	f.enrollments[id] = e
	return true, nil
}

type fakeStudentRepo struct {
	students map[string]models.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if f.students == nil {
		f.students = make(map[string]models.Student)
	}
	if student.ID == "" {
		student.ID = "stu-new"
	}
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	var list []models.Student
	for _, s := range f.students {
		list = append(list, s)
	}
	return list, nil
}

type fakeCoordinatorRepo struct {
	coordinators map[string]models.Coordinator
}

func (f *fakeCoordinatorRepo) Create(ctx context.Context, coordinator *models.Coordinator) error {
	if f.coordinators == nil {
		f.coordinators = make(map[string]models.Coordinator)
	}
	if coordinator.ID == "" {
		coordinator.ID = "coord-new"
	}
	f.coordinators[coordinator.ID] = *coordinator
	return nil
}

func (f *fakeCoordinatorRepo) FindByID(ctx context.Context, id string) (*models.Coordinator, error) {
	if c, ok := f.coordinators[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

type fakeNotificationRepo struct {
	notifications map[string]models.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if f.notifications == nil {
		f.notifications = make(map[string]models.Notification)
	}
	f.notifications[notification.ID] = *notification
	return nil
}

func (f *fakeNotificationRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Notification, error) {
	var list []models.Notification
	for _, n := range f.notifications {
		if n.StudentID == studentID {
			list = append(list, n)
		}
	}
	return list, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	_, ok := f.notifications[id]
	return ok, nil
}

// testServices bundles ready-to-wire services over in-memory fakes.
type testServices struct {
	courses       *service.CourseService
	enrollments   *service.EnrollmentService
	students      *service.StudentService
	coordinators  *service.CoordinatorService
	reports       *service.ReportService
	notifications *service.NotificationService
	chat          *service.ChatService

	courseRepo     *fakeCourseRepo
	enrollmentRepo *fakeEnrollmentRepo
}

func newTestServices(courses map[string]models.Course, enrollments map[string]models.Enrollment) *testServices {
	courseRepo := &fakeCourseRepo{courses: courses}
	enrollmentRepo := &fakeEnrollmentRepo{courses: courses, enrollments: enrollments}
	studentRepo := &fakeStudentRepo{students: map[string]models.Student{
		"s1": {ID: "s1", Name: "Luis", Program: "Sistemas", CreditsApproved: 30, Active: true},
	}}
	coordinatorRepo := &fakeCoordinatorRepo{coordinators: map[string]models.Coordinator{
		"coord-1": {ID: "coord-1", Name: "Ana"},
	}}
	notificationRepo := &fakeNotificationRepo{notifications: map[string]models.Notification{
		"n1": {ID: "n1", StudentID: "s1", Message: "hola"},
	}}

	validate := validator.New()
	logger := zap.NewNop()
	cache := service.NewCacheService(nil, nil, 0, logger, false)

	notificationSvc := service.NewNotificationService(notificationRepo, config.NotificationsConfig{}, logger)
	courseSvc := service.NewCourseService(courseRepo, enrollmentRepo, coordinatorRepo, studentRepo, cache, validate, logger)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo, studentRepo, notificationSvc, validate, logger)
	studentSvc := service.NewStudentService(studentRepo, validate, logger)
	coordinatorSvc := service.NewCoordinatorService(coordinatorRepo, validate, logger)
	reportSvc := service.NewReportService(studentRepo, enrollmentRepo, config.ReportsConfig{}, logger)
	chatSvc := service.NewChatService(courseSvc, enrollmentSvc, reportSvc, service.ChatOptions{DefaultStudentID: "s1"}, logger)

	return &testServices{
		courses:        courseSvc,
		enrollments:    enrollmentSvc,
		students:       studentSvc,
		coordinators:   coordinatorSvc,
		reports:        reportSvc,
		notifications:  notificationSvc,
		chat:           chatSvc,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func newGinContext(t *testing.T, method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}
