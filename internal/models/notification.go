package models

import "time"

// Notification is a message delivered to a student.
type Notification struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"estudiante_id" json:"estudiante_id"`
	Message   string    `db:"mensaje" json:"mensaje"`
	Read      bool      `db:"leido" json:"leido"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
