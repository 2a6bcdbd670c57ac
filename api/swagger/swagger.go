package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Fyyur Booking API",
        "description": "Venue and artist show booking with schedule verification",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Shows", "description": "Show listing and schedule verification"},
        {"name": "Artists", "description": "Artist profiles and weekly availability"},
        {"name": "Venues", "description": "Venue profiles and daily bookings"}
    ],
    "paths": {
        "/shows": {
            "get": {
                "tags": ["Shows"],
                "summary": "List shows",
                "parameters": [
                    {"name": "when", "in": "query", "type": "string", "enum": ["all", "previous", "upcoming"]},
                    {"name": "venue_id", "in": "query", "type": "string"},
                    {"name": "artist_id", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Shows"],
                "summary": "List a new show",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateShowRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Artist or venue not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Schedule conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/shows/{id}": {
            "get": {
                "tags": ["Shows"],
                "summary": "Get show detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/shows/verify": {
            "post": {
                "tags": ["Shows"],
                "summary": "Check a proposed show against venue bookings and artist availability",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateShowRequest"}}
                ],
                "responses": {
                    "200": {"description": "Verdict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/artists/{id}": {
            "get": {
                "tags": ["Artists"],
                "summary": "Get artist detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/artists/{id}/genres": {
            "put": {
                "tags": ["Artists"],
                "summary": "Replace artist genres",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateGenresRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/artists/{id}/availability": {
            "get": {
                "tags": ["Artists"],
                "summary": "Get the availability in force at an instant",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "at", "in": "query", "type": "string", "format": "date-time"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No availability in force", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Artists"],
                "summary": "Record a new weekly availability template",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "Template unchanged", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/artists/{id}/availability/history": {
            "get": {
                "tags": ["Artists"],
                "summary": "List every recorded availability template",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/venues/{id}": {
            "get": {
                "tags": ["Venues"],
                "summary": "Get venue detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/venues/{id}/genres": {
            "put": {
                "tags": ["Venues"],
                "summary": "Replace venue genres",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateGenresRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/venues/{id}/bookings": {
            "get": {
                "tags": ["Venues"],
                "summary": "List or export the shows booked at a venue on a date",
                "produces": ["application/json", "text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string", "format": "date"},
                    {"name": "tz", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["json", "csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateShowRequest": {
            "type": "object",
            "required": ["artist_id", "venue_id", "start_time", "duration"],
            "properties": {
                "artist_id": {"type": "string"},
                "venue_id": {"type": "string"},
                "start_time": {"type": "string", "format": "date-time"},
                "duration": {"type": "integer", "minimum": 1, "maximum": 1439}
            }
        },
        "DaySlot": {
            "type": "object",
            "properties": {
                "from": {"type": "string", "example": "19:00"},
                "to": {"type": "string", "example": "00:00"}
            }
        },
        "AvailabilityRequest": {
            "type": "object",
            "properties": {
                "effective_from": {"type": "string", "format": "date-time"},
                "monday": {"$ref": "#/definitions/DaySlot"},
                "tuesday": {"$ref": "#/definitions/DaySlot"},
                "wednesday": {"$ref": "#/definitions/DaySlot"},
                "thursday": {"$ref": "#/definitions/DaySlot"},
                "friday": {"$ref": "#/definitions/DaySlot"},
                "saturday": {"$ref": "#/definitions/DaySlot"},
                "sunday": {"$ref": "#/definitions/DaySlot"}
            }
        },
        "UpdateGenresRequest": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}}
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
                "status": {"type": "integer"},
                "details": {"type": "object"}
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
