package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Hub Timetable API",
        "description": "Timetable composition and conflict detection service",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Timetable", "description": "Composed schedules, grids and the now banner"},
        {"name": "Picks", "description": "Student section picks"},
        {"name": "Courses", "description": "Read-only catalog browser"}
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
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/api/v1/students/{id}/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Day-partitioned conflict-annotated timetable",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "scope", "in": "query", "type": "string", "enum": ["week", "day"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/students/{id}/timetable/grid": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Fixed-slot weekly grid",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/students/{id}/timetable/now": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Current and next class banner",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/students/{id}/picks": {
            "get": {
                "tags": ["Picks"],
                "summary": "List picks",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Picks"],
                "summary": "Replace the pick list",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplacePicksRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Picks"],
                "summary": "Remove every pick",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "Browse the course catalog",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/courses/{code}/sections/{section}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get one section offering",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"},
                    {"name": "section", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "ScheduleBlock": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "section_name": {"type": "string"},
                "kind": {"type": "string", "enum": ["CLASS", "LAB"]},
                "day": {"type": "string"},
                "start_minute": {"type": "integer"},
                "end_minute": {"type": "integer"},
                "room": {"type": "string"},
                "faculty": {"type": "string"},
                "label": {"type": "string"},
                "conflicted": {"type": "boolean"},
                "is_current": {"type": "boolean"}
            }
        },
        "ConflictPair": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "first": {"$ref": "#/definitions/ScheduleBlock"},
                "second": {"$ref": "#/definitions/ScheduleBlock"}
            }
        },
        "GridCell": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["EMPTY", "BREAK", "BLOCK", "HIDDEN"]},
                "heads": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "block": {"$ref": "#/definitions/ScheduleBlock"},
                            "span": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "PickItem": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "section_name": {"type": "string"}
            },
            "required": ["course_code", "section_name"]
        },
        "ReplacePicksRequest": {
            "type": "object",
            "properties": {
                "picks": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/PickItem"}
                }
            },
            "required": ["picks"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
