package models

import "time"

// Student represents a learner registered in the institution.
type Student struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"nombre" json:"nombre"`
	Program         string    `db:"programa" json:"programa"`
	CreditsApproved int       `db:"creditos_aprobados" json:"creditos_aprobados"`
	Active          bool      `db:"activo" json:"activo"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Coordinator is the role permitted to transition course approval state.
type Coordinator struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"nombre" json:"nombre"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
