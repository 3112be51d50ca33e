// Package docs registra el spec OpenAPI servido por /swagger.
// Generado con swag a partir de las anotaciones de los handlers;
// regenerar con: swag init -g cmd/api/main.go -o internal/docs
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
        "/breeds": {
            "get": {
                "produces": ["application/json"],
                "summary": "Catálogo completo de razas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/breeds.breedResponse"}
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/breeds.errorResponse"}
                    }
                }
            }
        },
        "/breeds/search": {
            "get": {
                "produces": ["application/json"],
                "summary": "Busca razas por substring del nombre (case-insensitive)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "texto a buscar; vacío devuelve cero filas",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/breeds.searchResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/breeds.errorResponse"}
                    }
                }
            }
        },
        "/breeds/{name}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Detalle de una raza por nombre",
                "parameters": [
                    {
                        "type": "string",
                        "description": "nombre de la raza (match exacto primero, luego substring)",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/breeds.breedDetailResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/breeds.errorResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/breeds.errorResponse"}
                    }
                }
            }
        },
        "/catalog/refresh": {
            "post": {
                "summary": "Invalida la caché del catálogo (el próximo acceso vuelve a hacer fetch)",
                "responses": {
                    "204": {"description": "sin contenido"}
                }
            }
        },
        "/feedback": {
            "get": {
                "produces": ["application/json"],
                "summary": "Lista las sugerencias de la sesión actual, en orden de inserción",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/feedback.noteResponse"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Deja una sugerencia para la sesión actual (solo en memoria)",
                "parameters": [
                    {
                        "description": "mensaje",
                        "name": "note",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/feedback.addNoteRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/feedback.noteResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "breeds.breedResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "bred_for": {"type": "string"},
                "group": {"type": "string"},
                "origin": {"type": "string"},
                "life_span": {"type": "string"},
                "temperament": {"type": "string"},
                "weight_kg": {"type": "string"},
                "height_cm": {"type": "string"},
                "image_url": {"type": "string"},
                "breed_id": {"type": "string"}
            }
        },
        "breeds.breedDetailResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "bred_for": {"type": "string"},
                "group": {"type": "string"},
                "origin": {"type": "string"},
                "life_span": {"type": "string"},
                "temperament": {"type": "string"},
                "weight_kg": {"type": "string"},
                "height_cm": {"type": "string"},
                "image_url": {"type": "string"},
                "breed_id": {"type": "string"},
                "weight_display": {"type": "string"},
                "height_display": {"type": "string"},
                "life_span_display": {"type": "string"}
            }
        },
        "breeds.searchResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "count": {"type": "integer"},
                "results": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/breeds.breedResponse"}
                }
            }
        },
        "breeds.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "feedback.addNoteRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "feedback.noteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "session_id": {"type": "string"},
                "message": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dog Knowledge Base API",
	Description:      "Buscador de razas de perro: catálogo upstream normalizado, búsqueda por nombre y feedback por sesión.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
