package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/pkg/config"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
	"github.com/edubot/edubot-api/pkg/export"
)

type reportEnrollmentLister interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentDetail, error)
}

// ReportService builds student progress reports. Credit totals are
// configured, not derived from a real curriculum.
type ReportService struct {
	students    studentReader
	enrollments reportEnrollmentLister
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	cfg         config.ReportsConfig
	logger      *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(students studentReader, enrollments reportEnrollmentLister, cfg config.ReportsConfig, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ProgramTotalCredits <= 0 {
		cfg.ProgramTotalCredits = 36
	}
	if cfg.CreditsPerCourse <= 0 {
		cfg.CreditsPerCourse = 3
	}
	return &ReportService{
		students:    students,
		enrollments: enrollments,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		cfg:         cfg,
		logger:      logger,
	}
}

// Progress summarises a student's advance through their program.
func (s *ReportService) Progress(ctx context.Context, studentID string) (*models.ProgressReport, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "estudiante no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	enrollments, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	active := 0
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusActive {
			active++
		}
	}

	completed := student.CreditsApproved
	if completed > s.cfg.ProgramTotalCredits {
		completed = s.cfg.ProgramTotalCredits
	}
	pending := (s.cfg.ProgramTotalCredits - completed) / s.cfg.CreditsPerCourse

	return &models.ProgressReport{
		StudentID:        student.ID,
		StudentName:      student.Name,
		Program:          student.Program,
		CreditsCompleted: completed,
		CreditsTotal:     s.cfg.ProgramTotalCredits,
		CoursesActive:    active,
		CoursesPending:   pending,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// Export renders the progress report as CSV or PDF. It returns the
// payload with its content type and suggested file name.
func (s *ReportService) Export(ctx context.Context, studentID, format string) ([]byte, string, string, error) {
	report, err := s.Progress(ctx, studentID)
	if err != nil {
		return nil, "", "", err
	}

	dataset := export.Dataset{
		Headers: []string{"campo", "valor"},
		Rows: []map[string]string{
			{"campo": "estudiante", "valor": report.StudentName},
			{"campo": "programa", "valor": report.Program},
			{"campo": "creditos_completados", "valor": strconv.Itoa(report.CreditsCompleted)},
			{"campo": "creditos_totales", "valor": strconv.Itoa(report.CreditsTotal)},
			{"campo": "cursos_activos", "valor": strconv.Itoa(report.CoursesActive)},
			{"campo": "pendientes", "valor": strconv.Itoa(report.CoursesPending)},
		},
	}

	switch format {
	case "csv", "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return payload, "text/csv", fmt.Sprintf("progreso-%s.csv", report.StudentID), nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Reporte de progreso")
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return payload, "application/pdf", fmt.Sprintf("progreso-%s.pdf", report.StudentID), nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("formato desconocido: %s", format))
	}
}
