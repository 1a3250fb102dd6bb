package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Planner API",
        "description": "Schedule planning service: conflict filtering, time-block merging, insights and exports",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Catalog", "description": "Upstream course catalog"},
        {"name": "Planner", "description": "Conflict filtering, block merging, insights"},
        {"name": "Schedules", "description": "Saved schedules per device"},
        {"name": "Exports", "description": "Asynchronous schedule exports"},
        {"name": "Tokens", "description": "Anonymous device tokens"}
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
                    "200": {"description": "Ready"}
                }
            }
        },
        "/status": {
            "get": {
                "summary": "Runtime counters snapshot",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/token": {
            "post": {
                "tags": ["Tokens"],
                "summary": "Issue or renew a device token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/{term}/{dept}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List courses for a department in a term",
                "parameters": [
                    {"name": "term", "in": "path", "required": true, "type": "string"},
                    {"name": "dept", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Upstream unavailable"}
                }
            }
        },
        "/catalog/{term}/{dept}/{number}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Fetch one course with its sections",
                "parameters": [
                    {"name": "term", "in": "path", "required": true, "type": "string"},
                    {"name": "dept", "in": "path", "required": true, "type": "string"},
                    {"name": "number", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown course"}
                }
            }
        },
        "/planner/filter": {
            "post": {
                "tags": ["Planner"],
                "summary": "Filter candidate sections against the current selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/blocks/merge": {
            "post": {
                "tags": ["Planner"],
                "summary": "Merge manual time blocks into canonical non-overlapping form",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MergeBlocksRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/insights": {
            "post": {
                "tags": ["Planner"],
                "summary": "Compute quality insights for a selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/InsightsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/planner/week": {
            "post": {
                "tags": ["Planner"],
                "summary": "Lay out the selection for the week containing a date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WeekViewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List the device's saved schedules for a term",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "term", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedules"],
                "summary": "Save the current selection under a name",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{id}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Fetch one saved schedule",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Schedules"],
                "summary": "Delete a saved schedule",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/schedules/{id}/default": {
            "put": {
                "tags": ["Schedules"],
                "summary": "Mark a saved schedule as the term default",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Updated"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue an export of the current selection",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Report export progress",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/exports/download": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a rendered export via its signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "403": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "definitions": {
        "Meeting": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"type": "integer"}},
                "startMinute": {"type": "integer"},
                "endMinute": {"type": "integer"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "campus": {"type": "string"},
                "sectionCode": {"type": "string"}
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "dept": {"type": "string"},
                "number": {"type": "string"},
                "section": {"type": "string"},
                "classNumber": {"type": "string"},
                "deliveryMethod": {"type": "string"},
                "instructors": {"type": "array", "items": {"type": "string"}},
                "meetings": {"type": "array", "items": {"$ref": "#/definitions/Meeting"}}
            }
        },
        "TimeBlock": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "day": {"type": "integer"},
                "startMinute": {"type": "integer"},
                "duration": {"type": "integer"}
            }
        },
        "FilterRequest": {
            "type": "object",
            "required": ["candidates"],
            "properties": {
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "selected": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "blocks": {"type": "array", "items": {"$ref": "#/definitions/TimeBlock"}}
            }
        },
        "MergeBlocksRequest": {
            "type": "object",
            "properties": {
                "blocks": {"type": "array", "items": {"$ref": "#/definitions/TimeBlock"}},
                "encoded": {"type": "string"}
            }
        },
        "InsightsRequest": {
            "type": "object",
            "properties": {
                "selected": {"type": "array", "items": {"$ref": "#/definitions/Section"}}
            }
        },
        "WeekViewRequest": {
            "type": "object",
            "required": ["date"],
            "properties": {
                "selected": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "blocks": {"type": "array", "items": {"$ref": "#/definitions/TimeBlock"}},
                "date": {"type": "string"}
            }
        },
        "SaveScheduleRequest": {
            "type": "object",
            "required": ["term", "name"],
            "properties": {
                "term": {"type": "string"},
                "name": {"type": "string"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "blocks": {"type": "array", "items": {"$ref": "#/definitions/TimeBlock"}}
            }
        },
        "ExportRequest": {
            "type": "object",
            "required": ["format", "selected"],
            "properties": {
                "format": {"type": "string", "enum": ["ics", "pdf", "csv"]},
                "term": {"type": "string"},
                "selected": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "date": {"type": "string"}
            }
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
