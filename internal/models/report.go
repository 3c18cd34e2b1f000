package models

import "time"

// ProgressReport summarises a student's advance through their program.
// Credit totals come from configuration; completion is derived from the
// student's active enrollments.
type ProgressReport struct {
	StudentID        string    `json:"estudiante_id"`
	StudentName      string    `json:"estudiante_nombre"`
	Program          string    `json:"programa"`
	CreditsCompleted int       `json:"creditos_completados"`
	CreditsTotal     int       `json:"creditos_totales"`
	CoursesActive    int       `json:"cursos_activos"`
	CoursesPending   int       `json:"pendientes"`
	GeneratedAt      time.Time `json:"generated_at"`
}
