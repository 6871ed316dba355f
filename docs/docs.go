// Package docs registers the Swagger document served under /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/developers": {
            "get": {
                "description": "Without a specialty every active developer is returned.",
                "produces": ["application/json"],
                "tags": ["developers"],
                "summary": "List active developers",
                "parameters": [
                    {"type": "string", "description": "Only developers with this specialty", "name": "specialty", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.DeveloperDTO"}}}
                }
            },
            "put": {
                "description": "Replaces every field of an existing developer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["developers"],
                "summary": "Update developer",
                "parameters": [
                    {"description": "Developer with id", "name": "developer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.DeveloperDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DeveloperDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores a new developer. Emails already used by any record, deleted ones included, are rejected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["developers"],
                "summary": "Create developer",
                "parameters": [
                    {"description": "Developer without id", "name": "developer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.DeveloperDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DeveloperDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/developers/email/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["developers"],
                "summary": "Get developer by email",
                "parameters": [
                    {"type": "string", "description": "Developer email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DeveloperDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/developers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["developers"],
                "summary": "Get developer by id",
                "parameters": [
                    {"type": "integer", "description": "Developer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DeveloperDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Soft deletes by default (status becomes DELETED); isHard=true removes the row.",
                "tags": ["developers"],
                "summary": "Delete developer",
                "parameters": [
                    {"type": "integer", "description": "Developer id", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Physically remove the record", "name": "isHard", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Status": {
            "type": "string",
            "enum": ["ACTIVE", "DELETED"],
            "x-enum-varnames": ["StatusActive", "StatusDeleted"]
        },
        "types.DeveloperDTO": {
            "type": "object",
            "required": ["email", "firstName", "lastName"],
            "properties": {
                "email": {"type": "string", "example": "john.doe@gmail.com"},
                "firstName": {"type": "string", "example": "John"},
                "id": {"type": "integer", "example": 1},
                "lastName": {"type": "string", "example": "Doe"},
                "specialty": {"type": "string", "example": "Java"},
                "status": {"allOf": [{"$ref": "#/definitions/models.Status"}], "example": "ACTIVE"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Developer not found"},
                "status": {"type": "integer", "example": 400}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Developer Registry API",
	Description:      "CRUD API for developer records with soft and hard deletion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
