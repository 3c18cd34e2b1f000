package models

// Intent identifies a chatbot request handler.
type Intent string

// Supported chatbot intents.
const (
	IntentListCourses    Intent = "cursos"
	IntentEnroll         Intent = "inscripcion"
	IntentProgress       Intent = "reporte"
	IntentMyEnrollments  Intent = "inscripciones"
	IntentFilterSemester Intent = "filtrar_semestre"
	IntentHelp           Intent = "default"
)

// ChatMessage is the free-text input from the chat endpoint.
type ChatMessage struct {
	Text      string `json:"text" binding:"required"`
	StudentID string `json:"estudiante_id"`
}

// ChatReply wraps the dispatched handler output.
type ChatReply struct {
	Type    Intent      `json:"type"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
}
