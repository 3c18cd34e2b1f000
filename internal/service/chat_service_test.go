package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/pkg/config"
)

func newChatService(courses map[string]models.Course, enrollments map[string]models.Enrollment) (*ChatService, *mockEnrollmentRepo) {
	courseRepo := &mockCourseRepo{courses: courses}
	enrollRepo := &mockEnrollmentRepo{courses: courses, enrollments: enrollments}
	students := &mockStudentReader{students: map[string]models.Student{
		"s1": {ID: "s1", Name: "Luis", Program: "Sistemas", CreditsApproved: 30, Active: true},
	}}
	cache := NewCacheService(nil, nil, 0, nil, false)

	courseSvc := NewCourseService(courseRepo, enrollRepo, &mockCoordinatorReader{}, students, cache, validator.New(), zap.NewNop())
	enrollSvc := NewEnrollmentService(enrollRepo, courseRepo, students, &mockNotifier{}, validator.New(), zap.NewNop())
	reportSvc := NewReportService(students, enrollRepo, config.ReportsConfig{}, zap.NewNop())

	chat := NewChatService(courseSvc, enrollSvc, reportSvc, ChatOptions{DefaultStudentID: "s1"}, zap.NewNop())
	return chat, enrollRepo
}

func chatCatalog() map[string]models.Course {
	return map[string]models.Course{
		"MAT101": {Code: "MAT101", Name: "Cálculo", Capacity: 30, Semester: 1, State: models.CourseStateApproved},
		"INF202": {Code: "INF202", Name: "Estructuras", Capacity: 25, Semester: 2, State: models.CourseStateApproved},
		"FIS301": {Code: "FIS301", Name: "Óptica", Capacity: 20, Semester: 3, State: models.CourseStatePending},
	}
}

func TestChatDispatchListCourses(t *testing.T) {
	chat, _ := newChatService(chatCatalog(), nil)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "Quiero buscar curso de IA"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentListCourses, reply.Type)
	// pending courses are not offered
	assert.Equal(t, 2, reply.Count)
}

func TestChatDispatchEnroll(t *testing.T) {
	chat, repo := newChatService(chatCatalog(), nil)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "inscribirme en mat101"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentEnroll, reply.Type)
	assert.Equal(t, "Inscripción realizada en MAT101", reply.Message)
	assert.NotNil(t, reply.Data)
	assert.Equal(t, 1, repo.createCalls)
}

func TestChatDispatchEnrollWithoutCode(t *testing.T) {
	chat, repo := newChatService(chatCatalog(), nil)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "quiero inscribirme ya"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentEnroll, reply.Type)
	assert.Equal(t, "Por favor especifica el código del curso", reply.Message)
	assert.Equal(t, 0, repo.createCalls)
}

func TestChatDispatchEnrollBusinessRejectionBecomesReply(t *testing.T) {
	courses := map[string]models.Course{
		"MAT101": {Code: "MAT101", Name: "Cálculo", Capacity: 1, Semester: 1, State: models.CourseStateApproved},
	}
	enrollments := map[string]models.Enrollment{
		"enr-1": {ID: "enr-1", StudentID: "s2", CourseCode: "MAT101", Status: models.EnrollmentStatusActive},
	}
	chat, _ := newChatService(courses, enrollments)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "inscribirme en MAT101"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentEnroll, reply.Type)
	assert.Equal(t, reasonNoSeats, reply.Message)
	assert.Nil(t, reply.Data)
}

func TestChatDispatchMyEnrollmentsBeforeEnroll(t *testing.T) {
	enrollments := map[string]models.Enrollment{
		"enr-1": {ID: "enr-1", StudentID: "s1", CourseCode: "MAT101", Status: models.EnrollmentStatusActive},
	}
	chat, repo := newChatService(chatCatalog(), enrollments)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "mis inscripciones"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentMyEnrollments, reply.Type)
	assert.Equal(t, 1, reply.Count)
	assert.Equal(t, 0, repo.createCalls)
}

func TestChatDispatchEnrollmentsWithoutPossessive(t *testing.T) {
	enrollments := map[string]models.Enrollment{
		"enr-1": {ID: "enr-1", StudentID: "s1", CourseCode: "MAT101", Status: models.EnrollmentStatusActive},
	}
	chat, repo := newChatService(chatCatalog(), enrollments)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "ver inscripciones"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentMyEnrollments, reply.Type)
	assert.Equal(t, 1, reply.Count)
	assert.Equal(t, 0, repo.createCalls)
}

func TestChatDispatchProgress(t *testing.T) {
	chat, _ := newChatService(chatCatalog(), nil)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "quiero ver mi progreso"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentProgress, reply.Type)
	report, ok := reply.Data.(*models.ProgressReport)
	require.True(t, ok)
	assert.Equal(t, "s1", report.StudentID)
}

func TestChatDispatchFilterSemester(t *testing.T) {
	chat, _ := newChatService(chatCatalog(), nil)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "cursos del semestre 2"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentListCourses, reply.Type)
	assert.Equal(t, 1, reply.Count)
}

func TestChatDispatchFallbackHelp(t *testing.T) {
	chat, _ := newChatService(chatCatalog(), nil)

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "hola que tal"})
	require.NoError(t, err)
	assert.Equal(t, models.IntentHelp, reply.Type)
	assert.Equal(t, chatHelpMessage, reply.Message)
}

func TestChatDispatchExplicitStudentOverridesDefault(t *testing.T) {
	chat, repo := newChatService(chatCatalog(), nil)
	repo.enrollments = map[string]models.Enrollment{
		"enr-1": {ID: "enr-1", StudentID: "s9", CourseCode: "MAT101", Status: models.EnrollmentStatusActive},
	}

	reply, err := chat.Dispatch(context.Background(), models.ChatMessage{Text: "mis inscripciones", StudentID: "s9"})
	require.NoError(t, err)
	assert.Equal(t, 1, reply.Count)
}

func TestExtractCourseCode(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"inscribirme en MAT101", "MAT101"},
		{"inscribirme en mat101", "MAT101"},
		{"inscribirme en el curso INF202 por favor", "INF202"},
		{"inscribirme ya", ""},
		{"inscribirme en 101", ""},
		{"inscribirme en M1", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractCourseCode(tt.text), tt.text)
	}
}
