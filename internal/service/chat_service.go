package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
)

const chatHelpMessage = "No entendí tu consulta. Intenta con: 'buscar cursos', 'inscribirme en [CODIGO]', 'mi progreso', o 'mis inscripciones'"

var (
	courseCodePattern = regexp.MustCompile(`^[a-zA-Z]{2,}[0-9]{2,}$`)
	integerPattern    = regexp.MustCompile(`\d+`)
)

// intentRule pairs a substring predicate with its handler. Rules are
// evaluated in order; the first match wins.
type intentRule struct {
	intent models.Intent
	match  func(text string) bool
	handle func(ctx context.Context, msg models.ChatMessage, lowered string) (*models.ChatReply, error)
}

// ChatService routes free-text messages to a fixed set of intents using
// an ordered keyword rule table. No tokenization happens beyond
// whitespace splitting for argument extraction.
type ChatService struct {
	courses          *CourseService
	enrollments      *EnrollmentService
	reports          *ReportService
	defaultStudentID string
	rules            []intentRule
	logger           *zap.Logger
}

// NewChatService constructs ChatService with its rule table.
func NewChatService(courses *CourseService, enrollments *EnrollmentService, reports *ReportService, cfg ChatOptions, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ChatService{
		courses:          courses,
		enrollments:      enrollments,
		reports:          reports,
		defaultStudentID: cfg.DefaultStudentID,
		logger:           logger,
	}
	// "mis inscripc" outranks "inscrib" so the my-enrollments intent is
	// reachable; "semestre"/"filtrar" outrank the generic course words.
	s.rules = []intentRule{
		{intent: models.IntentMyEnrollments, match: containsAny("mis inscripc", "inscripciones"), handle: s.handleMyEnrollments},
		{intent: models.IntentEnroll, match: containsAny("inscrib"), handle: s.handleEnroll},
		{intent: models.IntentProgress, match: containsAny("reporte", "progreso"), handle: s.handleProgress},
		{intent: models.IntentFilterSemester, match: containsAny("semestre", "filtrar"), handle: s.handleFilterSemester},
		{intent: models.IntentListCourses, match: containsAny("buscar", "curso", "disponible"), handle: s.handleListCourses},
	}
	return s
}

// ChatOptions tunes chat dispatch behaviour.
type ChatOptions struct {
	DefaultStudentID string
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

// Dispatch routes the message to the first matching intent handler, or
// returns the fixed help reply when nothing matches.
func (s *ChatService) Dispatch(ctx context.Context, msg models.ChatMessage) (*models.ChatReply, error) {
	lowered := strings.ToLower(msg.Text)
	if msg.StudentID == "" {
		msg.StudentID = s.defaultStudentID
	}
	for _, rule := range s.rules {
		if rule.match(lowered) {
			return rule.handle(ctx, msg, lowered)
		}
	}
	return &models.ChatReply{Type: models.IntentHelp, Message: chatHelpMessage}, nil
}

func (s *ChatService) handleListCourses(ctx context.Context, _ models.ChatMessage, _ string) (*models.ChatReply, error) {
	courses, err := s.courses.List(ctx, models.CourseFilter{State: models.CourseStateApproved})
	if err != nil {
		return nil, err
	}
	return &models.ChatReply{Type: models.IntentListCourses, Data: courses, Count: len(courses)}, nil
}

func (s *ChatService) handleFilterSemester(ctx context.Context, msg models.ChatMessage, lowered string) (*models.ChatReply, error) {
	filter := models.CourseFilter{State: models.CourseStateApproved}
	if raw := integerPattern.FindString(lowered); raw != "" {
		if semester, err := strconv.Atoi(raw); err == nil {
			filter.Semester = semester
		}
	}
	courses, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &models.ChatReply{Type: models.IntentListCourses, Data: courses, Count: len(courses)}, nil
}

func (s *ChatService) handleEnroll(ctx context.Context, msg models.ChatMessage, _ string) (*models.ChatReply, error) {
	code := extractCourseCode(msg.Text)
	if code == "" {
		return &models.ChatReply{Type: models.IntentEnroll, Message: "Por favor especifica el código del curso"}, nil
	}
	enrollment, err := s.enrollments.Enroll(ctx, EnrollRequest{StudentID: msg.StudentID, CourseCode: code})
	if err != nil {
		// Business rejections become chat replies; everything else
		// surfaces as an API error.
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status < 500 {
			return &models.ChatReply{Type: models.IntentEnroll, Message: appErr.Message}, nil
		}
		return nil, err
	}
	return &models.ChatReply{
		Type:    models.IntentEnroll,
		Message: "Inscripción realizada en " + code,
		Data:    enrollment,
	}, nil
}

func (s *ChatService) handleProgress(ctx context.Context, msg models.ChatMessage, _ string) (*models.ChatReply, error) {
	report, err := s.reports.Progress(ctx, msg.StudentID)
	if err != nil {
		return nil, err
	}
	return &models.ChatReply{Type: models.IntentProgress, Data: report}, nil
}

func (s *ChatService) handleMyEnrollments(ctx context.Context, msg models.ChatMessage, _ string) (*models.ChatReply, error) {
	enrollments, err := s.enrollments.ListByStudent(ctx, msg.StudentID)
	if err != nil {
		return nil, err
	}
	return &models.ChatReply{Type: models.IntentMyEnrollments, Data: enrollments, Count: len(enrollments)}, nil
}

// extractCourseCode returns the first whitespace token shaped like a
// course code (letters then digits, e.g. MAT101), upper-cased.
func extractCourseCode(text string) string {
	for _, token := range strings.Fields(text) {
		if courseCodePattern.MatchString(token) {
			return strings.ToUpper(token)
		}
	}
	return ""
}
