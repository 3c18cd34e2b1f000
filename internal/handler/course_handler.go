package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edubot/edubot-api/internal/models"
	"github.com/edubot/edubot-api/internal/service"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
	"github.com/edubot/edubot-api/pkg/response"
)

// CourseHandler exposes course registry and approval endpoints.
type CourseHandler struct {
	courses     *service.CourseService
	enrollments *service.EnrollmentService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService, enrollments *service.EnrollmentService) *CourseHandler {
	return &CourseHandler{courses: courses, enrollments: enrollments}
}

// List godoc
// @Summary List courses
// @Tags Cursos
// @Produce json
// @Param semestre query int false "Filter by semester"
// @Param estado query string false "Filter by state (default aprobado)"
// @Success 200 {object} response.Envelope
// @Router /cursos [get]
func (h *CourseHandler) List(c *gin.Context) {
	var filter models.CourseFilter
	if semester, err := strconv.Atoi(c.Query("semestre")); err == nil {
		filter.Semester = semester
	}
	filter.State = models.CourseState(strings.ToLower(c.Query("estado")))

	courses, err := h.courses.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil, map[string]interface{}{"count": len(courses)})
}

// Get godoc
// @Summary Course detail with enrollment counts
// @Tags Cursos
// @Produce json
// @Param codigo path string true "Course code"
// @Success 200 {object} response.Envelope
// @Router /cursos/{codigo} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	detail, err := h.courses.GetByCode(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Validate godoc
// @Summary Admissibility check for a student against a course
// @Tags Cursos
// @Produce json
// @Param codigo path string true "Course code"
// @Param estudiante_id query string false "Student ID"
// @Param cumple_prerrequisitos query bool false "Prerequisite flag"
// @Success 200 {object} response.Envelope
// @Router /cursos/{codigo}/validar [get]
func (h *CourseHandler) Validate(c *gin.Context) {
	var meetsPrerequisites *bool
	if raw := c.Query("cumple_prerrequisitos"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "cumple_prerrequisitos inválido"))
			return
		}
		meetsPrerequisites = &value
	}

	admission, err := h.courses.Validate(c.Request.Context(), c.Param("codigo"), c.Query("estudiante_id"), meetsPrerequisites)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, admission, nil)
}

// Create godoc
// @Summary Create course (coordinator)
// @Tags Cursos
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /cursos [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Approve godoc
// @Summary Approve a pending course
// @Tags Cursos
// @Produce json
// @Param codigo path string true "Course code"
// @Param coordinador_id query string false "Coordinator ID"
// @Success 200 {object} response.Envelope
// @Router /cursos/{codigo}/aprobar [put]
func (h *CourseHandler) Approve(c *gin.Context) {
	course, err := h.courses.Approve(c.Request.Context(), c.Param("codigo"), c.Query("coordinador_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// Reject godoc
// @Summary Reject a pending course
// @Tags Cursos
// @Produce json
// @Param codigo path string true "Course code"
// @Param coordinador_id query string false "Coordinator ID"
// @Success 200 {object} response.Envelope
// @Router /cursos/{codigo}/rechazar [put]
func (h *CourseHandler) Reject(c *gin.Context) {
	course, err := h.courses.Reject(c.Request.Context(), c.Param("codigo"), c.Query("coordinador_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// Enrollments godoc
// @Summary List enrollments recorded against a course
// @Tags Cursos
// @Produce json
// @Param codigo path string true "Course code"
// @Success 200 {object} response.Envelope
// @Router /cursos/{codigo}/inscripciones [get]
func (h *CourseHandler) Enrollments(c *gin.Context) {
	enrollments, err := h.enrollments.ListByCourse(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments, nil, map[string]interface{}{"count": len(enrollments)})
}
