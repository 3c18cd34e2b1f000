package service

import (
	"github.com/edubot/edubot-api/internal/models"
)

// Admissibility messages surfaced to callers.
const (
	reasonNoSeats       = "no hay cupos disponibles"
	reasonNotApproved   = "el curso no está aprobado para inscripciones"
	reasonPrerequisites = "no cumple los prerrequisitos"
)

// Admissibility decides whether a student may enroll in the course given
// the current active enrollment count. It is a pure predicate: no I/O,
// no side effects. The prerequisite flag is an external input, ANDed in
// only when provided; no prerequisite graph is modeled.
func Admissibility(course models.Course, enrolled int, meetsPrerequisites *bool) models.Admission {
	admission := models.Admission{
		SeatsAvailable:     enrolled < course.Capacity,
		Approved:           course.State == models.CourseStateApproved,
		MeetsPrerequisites: meetsPrerequisites == nil || *meetsPrerequisites,
		Reasons:            []string{},
	}

	if !admission.SeatsAvailable {
		admission.Reasons = append(admission.Reasons, reasonNoSeats)
	}
	if !admission.Approved {
		admission.Reasons = append(admission.Reasons, reasonNotApproved)
	}
	if !admission.MeetsPrerequisites {
		admission.Reasons = append(admission.Reasons, reasonPrerequisites)
	}

	admission.CanEnroll = admission.SeatsAvailable && admission.Approved && admission.MeetsPrerequisites
	return admission
}
