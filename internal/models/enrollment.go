package models

import "time"

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusActive    EnrollmentStatus = "activa"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelada"
)

// Enrollment links a student to an approved course.
type Enrollment struct {
	ID         string           `db:"id" json:"id"`
	StudentID  string           `db:"estudiante_id" json:"estudiante_id"`
	CourseCode string           `db:"curso_codigo" json:"curso_codigo"`
	EnrolledAt time.Time        `db:"fecha_inscripcion" json:"fecha_inscripcion"`
	Status     EnrollmentStatus `db:"estado" json:"estado"`
}

// EnrollmentDetail enriches Enrollment with student and course info.
type EnrollmentDetail struct {
	Enrollment
	StudentName string `db:"estudiante_nombre" json:"estudiante_nombre"`
	CourseName  string `db:"curso_nombre" json:"curso_nombre"`
	Semester    int    `db:"semestre" json:"semestre"`
}

// Admission is the validator verdict with the reasons a request was
// turned down, so callers can surface actionable messages.
type Admission struct {
	SeatsAvailable     bool     `json:"cupos_disponibles"`
	Approved           bool     `json:"estado_aprobado"`
	MeetsPrerequisites bool     `json:"cumple_prerrequisitos"`
	CanEnroll          bool     `json:"puede_inscribirse"`
	Reasons            []string `json:"mensaje"`
}
