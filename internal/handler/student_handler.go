package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edubot/edubot-api/internal/service"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
	"github.com/edubot/edubot-api/pkg/response"
)

// StudentHandler exposes student registry and student-scoped endpoints.
type StudentHandler struct {
	students      *service.StudentService
	enrollments   *service.EnrollmentService
	reports       *service.ReportService
	notifications *service.NotificationService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, enrollments *service.EnrollmentService, reports *service.ReportService, notifications *service.NotificationService) *StudentHandler {
	return &StudentHandler{students: students, enrollments: enrollments, reports: reports, notifications: notifications}
}

// Create godoc
// @Summary Register a student
// @Tags Estudiantes
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /estudiantes [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// List godoc
// @Summary List students
// @Tags Estudiantes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /estudiantes [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil, map[string]interface{}{"count": len(students)})
}

// Get godoc
// @Summary Student detail
// @Tags Estudiantes
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /estudiantes/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Enrollments godoc
// @Summary List a student's enrollments
// @Tags Estudiantes
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /estudiante/{id}/inscripciones [get]
func (h *StudentHandler) Enrollments(c *gin.Context) {
	enrollments, err := h.enrollments.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments, nil, map[string]interface{}{"count": len(enrollments)})
}

// Progress godoc
// @Summary Progress report
// @Tags Estudiantes
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /estudiante/{id}/progreso [get]
func (h *StudentHandler) Progress(c *gin.Context) {
	report, err := h.reports.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// ExportProgress godoc
// @Summary Download the progress report as CSV or PDF
// @Tags Estudiantes
// @Produce octet-stream
// @Param id path string true "Student ID"
// @Param formato query string false "csv or pdf (default csv)"
// @Success 200 {file} binary
// @Router /estudiante/{id}/progreso/export [get]
func (h *StudentHandler) ExportProgress(c *gin.Context) {
	payload, contentType, filename, err := h.reports.Export(c.Request.Context(), c.Param("id"), c.Query("formato"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

// Notifications godoc
// @Summary List a student's notifications
// @Tags Estudiantes
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /estudiante/{id}/notificaciones [get]
func (h *StudentHandler) Notifications(c *gin.Context) {
	notifications, err := h.notifications.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notifications, nil, map[string]interface{}{"count": len(notifications)})
}
