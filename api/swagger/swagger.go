package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduBot API",
        "description": "Course enrollment backend with keyword chatbot",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Cursos", "description": "Course catalog and approval workflow"},
        {"name": "Inscripciones", "description": "Student enrollment"},
        {"name": "Estudiantes", "description": "Student records, progress and notifications"},
        {"name": "Coordinadores", "description": "Coordinator records"},
        {"name": "Chat", "description": "Keyword chatbot"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/cursos": {
            "get": {
                "tags": ["Cursos"],
                "summary": "List courses",
                "parameters": [
                    {"name": "semestre", "in": "query", "type": "integer"},
                    {"name": "estado", "in": "query", "type": "string", "enum": ["pendiente", "aprobado", "rechazado"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Cursos"],
                "summary": "Propose a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate course code", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/cursos/{codigo}": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Get course detail",
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/cursos/{codigo}/validar": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Check admissibility without enrolling",
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"},
                    {"name": "estudiante_id", "in": "query", "type": "string"},
                    {"name": "cumple_prerrequisitos", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/cursos/{codigo}/aprobar": {
            "put": {
                "tags": ["Cursos"],
                "summary": "Approve a pending course",
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"},
                    {"name": "coordinador_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Course not pending", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/cursos/{codigo}/rechazar": {
            "put": {
                "tags": ["Cursos"],
                "summary": "Reject a pending course",
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"},
                    {"name": "coordinador_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Course not pending", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/cursos/{codigo}/inscripciones": {
            "get": {
                "tags": ["Cursos"],
                "summary": "List enrollments for a course",
                "parameters": [
                    {"name": "codigo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/inscripciones": {
            "post": {
                "tags": ["Inscripciones"],
                "summary": "Enroll a student in a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Not admissible", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/inscripciones/{id}": {
            "delete": {
                "tags": ["Inscripciones"],
                "summary": "Cancel an enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already cancelled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/estudiantes": {
            "get": {
                "tags": ["Estudiantes"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Estudiantes"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/estudiantes/{id}": {
            "get": {
                "tags": ["Estudiantes"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/estudiante/{id}/inscripciones": {
            "get": {
                "tags": ["Estudiantes"],
                "summary": "List enrollments for a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/estudiante/{id}/progreso": {
            "get": {
                "tags": ["Estudiantes"],
                "summary": "Academic progress report",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/estudiante/{id}/progreso/export": {
            "get": {
                "tags": ["Estudiantes"],
                "summary": "Download progress report as CSV or PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/estudiante/{id}/notificaciones": {
            "get": {
                "tags": ["Estudiantes"],
                "summary": "List notifications for a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/coordinadores": {
            "post": {
                "tags": ["Coordinadores"],
                "summary": "Create coordinator",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCoordinatorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/coordinadores/{id}": {
            "get": {
                "tags": ["Coordinadores"],
                "summary": "Get coordinator",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/notificaciones/{id}/leida": {
            "put": {
                "tags": ["Estudiantes"],
                "summary": "Mark a notification as read",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Dispatch a chat message to an intent handler",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatMessage"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ChatReply"}}
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "codigo": {"type": "string"},
                "nombre": {"type": "string"},
                "cupo": {"type": "integer"},
                "semestre": {"type": "integer"},
                "estado": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Enrollment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "estudiante_id": {"type": "string"},
                "curso_codigo": {"type": "string"},
                "fecha_inscripcion": {"type": "string"},
                "estado": {"type": "string"}
            }
        },
        "Admission": {
            "type": "object",
            "properties": {
                "cupos_disponibles": {"type": "integer"},
                "estado_aprobado": {"type": "boolean"},
                "cumple_prerrequisitos": {"type": "boolean"},
                "puede_inscribirse": {"type": "boolean"},
                "mensaje": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "codigo": {"type": "string"},
                "nombre": {"type": "string"},
                "cupo": {"type": "integer"},
                "semestre": {"type": "integer"}
            },
            "required": ["codigo", "nombre", "cupo", "semestre"]
        },
        "EnrollRequest": {
            "type": "object",
            "properties": {
                "estudiante_id": {"type": "string"},
                "curso_codigo": {"type": "string"},
                "cumple_prerrequisitos": {"type": "boolean"}
            },
            "required": ["estudiante_id", "curso_codigo"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "programa": {"type": "string"},
                "creditos_aprobados": {"type": "integer"}
            },
            "required": ["nombre", "programa"]
        },
        "CreateCoordinatorRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"}
            },
            "required": ["nombre"]
        },
        "ChatMessage": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "estudiante_id": {"type": "string"}
            },
            "required": ["text"]
        },
        "ChatReply": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
