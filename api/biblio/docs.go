// Package biblio holds generated Swagger docs. Regenerate with:
//
//	swag init -g internal/biblio/http/router.go -o api/biblio
package biblio

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Authenticate with UUID and password",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Connexion réussie", "schema": {"$ref": "#/definitions/http.TokenResponse"}},
                    "400": {"description": "Missing uuid or password", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unknown user or wrong password", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "New account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Utilisateur créé avec succès", "schema": {"$ref": "#/definitions/http.TokenResponse"}},
                    "400": {"description": "Missing uuid or password", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "403": {"description": "Caller is not an administrator", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "409": {"description": "UUID already registered", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Who am I",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.MeResponse"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/books": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Books"],
                "summary": "List books",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.BookResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Books"],
                "summary": "Create a book",
                "parameters": [
                    {
                        "description": "Book",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.BookRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.BookResponse"}},
                    "400": {"description": "Missing title or author", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "403": {"description": "Accès refusé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "409": {"description": "Ce livre existe déjà pour cet auteur", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/books/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Books"],
                "summary": "Get a book",
                "parameters": [{"type": "integer", "description": "Book id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.BookResponse"}},
                    "404": {"description": "Livre non trouvé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Books"],
                "summary": "Update a book",
                "parameters": [
                    {"type": "integer", "description": "Book id", "name": "id", "in": "path", "required": true},
                    {"description": "Book", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.BookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.BookResponse"}},
                    "404": {"description": "Livre non trouvé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "409": {"description": "Ce livre existe déjà pour cet auteur", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Books"],
                "summary": "Delete a book",
                "parameters": [{"type": "integer", "description": "Book id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Livre non trouvé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/authors": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Authors"],
                "summary": "List authors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.AuthorResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authors"],
                "summary": "Create an author",
                "parameters": [
                    {"description": "Author", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AuthorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.AuthorResponse"}},
                    "400": {"description": "Missing name", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "409": {"description": "Cet auteur existe déjà", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/authors/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Authors"],
                "summary": "Get an author",
                "parameters": [{"type": "integer", "description": "Author id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AuthorResponse"}},
                    "404": {"description": "Auteur non trouvé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authors"],
                "summary": "Rename an author",
                "parameters": [
                    {"type": "integer", "description": "Author id", "name": "id", "in": "path", "required": true},
                    {"description": "Author", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AuthorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AuthorResponse"}},
                    "404": {"description": "Auteur non trouvé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "409": {"description": "Cet auteur existe déjà", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Authors"],
                "summary": "Delete an author",
                "parameters": [{"type": "integer", "description": "Author id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Auteur non trouvé", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "409": {"description": "Cet auteur a encore des livres", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/http.HealthResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.LoginRequest": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string", "example": "marcel"},
                "password": {"type": "string", "example": "motdepasse"}
            }
        },
        "http.RegisterRequest": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string", "example": "marcel"},
                "password": {"type": "string", "example": "motdepasse"},
                "roles": {"type": "array", "items": {"type": "string"}, "example": ["ROLE_ADMIN"]}
            }
        },
        "http.TokenResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Connexion réussie"},
                "token": {"type": "string"},
                "expiresIn": {"type": "integer", "example": 3600}
            }
        },
        "http.MeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "uuid": {"type": "string", "example": "marcel"},
                "roles": {"type": "array", "items": {"type": "string"}, "example": ["ROLE_USER"]}
            }
        },
        "http.BookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Germinal"},
                "author": {"type": "string", "example": "Émile Zola"},
                "publishedYear": {"type": "integer", "example": 1885}
            }
        },
        "http.BookResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Germinal"},
                "author": {"type": "string", "example": "Émile Zola"},
                "authorId": {"type": "integer", "example": 1},
                "publishedYear": {"type": "integer", "example": 1885}
            }
        },
        "http.AuthorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Victor Hugo"}
            }
        },
        "http.AuthorResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Victor Hugo"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "uptime": {"type": "string", "example": "1h2m3s"},
                "version": {"type": "string", "example": "0.1.0"},
                "checks": {"$ref": "#/definitions/http.HealthChecks"}
            }
        },
        "http.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string", "example": "ok"}
            }
        },
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Biblio API",
	Description:      "A small library catalogue: books and authors behind stateless JWT authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
