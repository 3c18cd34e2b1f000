package models

import "time"

// CourseState represents the approval lifecycle of a course.
type CourseState string

// Course lifecycle states. A course is created pending and moves at most
// once, to approved or rejected.
const (
	CourseStatePending  CourseState = "pendiente"
	CourseStateApproved CourseState = "aprobado"
	CourseStateRejected CourseState = "rechazado"
)

// Valid reports whether the state is one of the known values.
func (s CourseState) Valid() bool {
	switch s {
	case CourseStatePending, CourseStateApproved, CourseStateRejected:
		return true
	}
	return false
}

// Course is an academic offering gated by capacity and approval state.
type Course struct {
	Code      string      `db:"codigo" json:"codigo"`
	Name      string      `db:"nombre" json:"nombre"`
	Capacity  int         `db:"cupo" json:"cupo"`
	Semester  int         `db:"semestre" json:"semestre"`
	State     CourseState `db:"estado" json:"estado"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// CourseDetail enriches a course with its enrollment counts.
type CourseDetail struct {
	Course
	Enrolled       int `json:"inscritos"`
	SeatsAvailable int `json:"cupos_disponibles"`
}

// CourseFilter captures the list endpoint filters.
type CourseFilter struct {
	Semester int
	State    CourseState
}
