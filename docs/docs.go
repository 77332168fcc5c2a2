// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quizzes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "List all quizzes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Quiz"}}}
                }
            }
        },
        "/quizzes/new": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Empty quiz form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuizRequest"}}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Create a quiz",
                "parameters": [
                    {"description": "Quiz data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuizRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "303": {"description": "Redirect to the question page for HTML clients"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Get a quiz",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Update a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"description": "Quiz data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Delete a quiz",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Quiz with its questions",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.QuizDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Add a question to a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"description": "Question data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.QuestionDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/questions/{qid}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Question ID", "name": "qid", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/take": {
            "get": {
                "produces": ["application/json"],
                "tags": ["taking"],
                "summary": "Start taking a quiz",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.QuizAttempt"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/take/answer": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["taking"],
                "summary": "Record one answer of an attempt",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.AttemptProgress"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/submit": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["taking"],
                "summary": "Submit a quiz attempt",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answers", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SubmitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.SubmitResponse"}},
                    "303": {"description": "Redirect to the result page for HTML clients"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/export": {
            "get": {
                "produces": ["application/json", "text/csv"],
                "tags": ["quizzes"],
                "summary": "Export a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "json or csv", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ExportData"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{id}/import": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Import questions into a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Export file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/results/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Result of a submitted attempt",
                "parameters": [{"type": "integer", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.ResultView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/ws/quizzes/{id}": {
            "get": {
                "tags": ["websocket"],
                "summary": "WebSocket feed of completed attempts",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "quiz title is required"},
                "redirect": {"type": "string", "example": "/quizzes/new"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Quiz deleted successfully!"},
                "redirect": {"type": "string", "example": "/quizzes"}
            }
        },
        "handlers.QuizRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "General Knowledge Quiz"},
                "description": {"type": "string", "example": "Test your general knowledge"}
            }
        },
        "handlers.QuestionRequest": {
            "type": "object",
            "properties": {
                "question_text": {"type": "string", "example": "What is the capital of France?"},
                "choices": {"type": "array", "items": {"type": "string"}},
                "choice1": {"type": "string"},
                "choice2": {"type": "string"},
                "choice3": {"type": "string"},
                "choice4": {"type": "string"},
                "correct": {"type": "integer", "example": 1}
            }
        },
        "handlers.AnswerRequest": {
            "type": "object",
            "properties": {
                "attempt_token": {"type": "string"},
                "question_id": {"type": "integer", "example": 1},
                "choice_id": {"type": "integer", "example": 3}
            }
        },
        "handlers.SubmitRequest": {
            "type": "object",
            "properties": {
                "user_name": {"type": "string", "example": "Ann"},
                "answers": {"type": "object", "additionalProperties": {"type": "integer"}},
                "attempt_token": {"type": "string"}
            }
        },
        "handlers.SubmitResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "integer"},
                "score": {"type": "integer"},
                "total_questions": {"type": "integer"},
                "percentage": {"type": "number"},
                "redirect": {"type": "string"}
            }
        },
        "handlers.ExportData": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/services.QuestionDraft"}}
            }
        },
        "models.Quiz": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Choice": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question_id": {"type": "integer"},
                "choice_text": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "choice_order": {"type": "integer"}
            }
        },
        "models.QuizSession": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "quiz_id": {"type": "integer"},
                "user_name": {"type": "string"},
                "score": {"type": "integer"},
                "total_questions": {"type": "integer"},
                "completed_at": {"type": "string"}
            }
        },
        "services.ChoiceDraft": {
            "type": "object",
            "properties": {
                "choice_text": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "choice_order": {"type": "integer"}
            }
        },
        "services.QuestionDraft": {
            "type": "object",
            "properties": {
                "question_text": {"type": "string"},
                "choices": {"type": "array", "items": {"$ref": "#/definitions/services.ChoiceDraft"}}
            }
        },
        "services.QuestionDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "quiz_id": {"type": "integer"},
                "question_text": {"type": "string"},
                "question_order": {"type": "integer"},
                "created_at": {"type": "string"},
                "choices": {"type": "array", "items": {"$ref": "#/definitions/models.Choice"}}
            }
        },
        "services.QuizDetail": {
            "type": "object",
            "properties": {
                "quiz": {"$ref": "#/definitions/models.Quiz"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/services.QuestionDetail"}}
            }
        },
        "services.TakeChoice": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "choice_text": {"type": "string"},
                "choice_order": {"type": "integer"}
            }
        },
        "services.TakeQuestion": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "question_text": {"type": "string"},
                "question_order": {"type": "integer"},
                "choices": {"type": "array", "items": {"$ref": "#/definitions/services.TakeChoice"}}
            }
        },
        "services.QuizAttempt": {
            "type": "object",
            "properties": {
                "quiz": {"$ref": "#/definitions/models.Quiz"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/services.TakeQuestion"}},
                "attempt_token": {"type": "string"},
                "started_at": {"type": "string"}
            }
        },
        "services.AttemptProgress": {
            "type": "object",
            "properties": {
                "attempt_token": {"type": "string"},
                "cursor": {"type": "integer"},
                "answered": {"type": "integer"}
            }
        },
        "services.AnswerDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "session_id": {"type": "integer"},
                "question_id": {"type": "integer"},
                "choice_id": {"type": "integer"},
                "is_correct": {"type": "boolean"},
                "question_text": {"type": "string"},
                "choice_text": {"type": "string"}
            }
        },
        "services.ResultView": {
            "type": "object",
            "properties": {
                "session": {"$ref": "#/definitions/models.QuizSession"},
                "quiz": {"$ref": "#/definitions/models.Quiz"},
                "percentage": {"type": "number"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/services.AnswerDetail"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Interactive Quiz API",
	Description:      "Create quizzes, take them and review the scored results",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
