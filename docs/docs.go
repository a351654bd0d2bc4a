// Package docs holds the generated OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "BlinkLean Support",
            "url": "https://github.com/sunilmaharaj1991-max/BlinkLean"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/availability/check": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Availability"],
                "summary": "Check service availability",
                "parameters": [
                    {
                        "description": "Location",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AvailabilityRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Serviceability report", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Bad request - invalid coordinates", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too many requests - rate limit exceeded", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "504": {"description": "Request timed out", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/scrap/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Scrap"],
                "summary": "Estimate scrap value",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Idempotency key for request deduplication",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Materials and weights",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.PredictRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Basket valuation", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Bad request - invalid items or weights", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too many requests - rate limit exceeded", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/address/suggest": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Address"],
                "summary": "Suggest addresses",
                "parameters": [
                    {
                        "description": "Search text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AddressSuggestRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Matching addresses", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Bad request - empty query", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Ask the assistant",
                "parameters": [
                    {
                        "description": "Customer message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Assistant reply", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Bad request - empty message", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/zones": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Availability"],
                "summary": "List service zones",
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}}
                }
            }
        },
        "/api/rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Scrap"],
                "summary": "List base rates",
                "responses": {
                    "200": {"description": "Rate table", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service is not ready", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "dto.AvailabilityRequest": {
            "type": "object",
            "required": ["latitude", "longitude"],
            "properties": {
                "latitude": {"type": "number", "maximum": 90, "minimum": -90, "example": 12.965},
                "longitude": {"type": "number", "maximum": 180, "minimum": -180, "example": 77.535},
                "pincode": {"type": "string", "example": "560040"}
            }
        },
        "dto.ScrapItemRequest": {
            "type": "object",
            "required": ["material", "weight"],
            "properties": {
                "material": {"type": "string", "example": "copper"},
                "weight": {"type": "number", "maximum": 5000, "example": 10}
            }
        },
        "dto.PredictRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.ScrapItemRequest"}},
                "location": {"type": "string", "example": "Vijayanagar"}
            }
        },
        "dto.AddressSuggestRequest": {
            "type": "object",
            "required": ["query"],
            "properties": {
                "query": {"type": "string", "example": "vijayanagar"}
            }
        },
        "dto.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string", "example": "What are your scrap rates?"},
                "pincode": {"type": "string", "example": "560040"}
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid_request"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BlinkLean API",
	Description:      "Serviceability checks and scrap price estimation for BlinkLean pickups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
