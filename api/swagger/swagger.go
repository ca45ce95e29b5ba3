package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Portfolio API",
        "description": "Bilingual personal portfolio backend",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Settings", "description": "Bilingual site settings"},
        {"name": "Projects", "description": "Portfolio projects"},
        {"name": "Experiences", "description": "Professional experience entries"},
        {"name": "Contact", "description": "Contact form and admin inbox"},
        {"name": "Auth", "description": "Admin session management"},
        {"name": "Upload", "description": "Image uploads"},
        {"name": "Resume", "description": "Generated PDF resume"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Get all settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SettingsMap"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Bulk upsert settings",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SettingsMap"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SettingsMap"}}
                }
            }
        },
        "/projects": {
            "get": {
                "tags": ["Projects"],
                "summary": "List projects, featured first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Project"}}}
                }
            },
            "post": {
                "tags": ["Projects"],
                "summary": "Create project",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Project"}}
                }
            }
        },
        "/projects/{id}": {
            "get": {
                "tags": ["Projects"],
                "summary": "Get project",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Project"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Projects"],
                "summary": "Partially update project",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProjectPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Project"}}
                }
            },
            "delete": {
                "tags": ["Projects"],
                "summary": "Delete project",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/experiences": {
            "get": {
                "tags": ["Experiences"],
                "summary": "List experiences",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Experience"}}}
                }
            },
            "post": {
                "tags": ["Experiences"],
                "summary": "Create experience",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExperienceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Experience"}}
                }
            }
        },
        "/experiences/{id}": {
            "put": {
                "tags": ["Experiences"],
                "summary": "Partially update experience",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExperiencePatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Experience"}}
                }
            },
            "delete": {
                "tags": ["Experiences"],
                "summary": "Delete experience",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/contact": {
            "get": {
                "tags": ["Contact"],
                "summary": "List contact messages, newest first",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ContactMessage"}}}
                }
            },
            "post": {
                "tags": ["Contact"],
                "summary": "Submit contact message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/contact/{id}/read": {
            "put": {
                "tags": ["Contact"],
                "summary": "Mark message as read",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}}
                }
            }
        },
        "/contact/{id}": {
            "delete": {
                "tags": ["Contact"],
                "summary": "Delete message",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/verify": {
            "post": {
                "tags": ["Auth"],
                "summary": "Verify session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/VerifyResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LogoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}}
                }
            }
        },
        "/auth/change-password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate admin password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/upload": {
            "post": {
                "tags": ["Upload"],
                "summary": "Upload image",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "413": {"description": "Payload too large", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/resume": {
            "get": {
                "tags": ["Resume"],
                "summary": "Download generated PDF resume",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "lang", "in": "query", "type": "string", "enum": ["en", "es"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "LocalizedValue": {
            "type": "object",
            "properties": {
                "en": {"type": "string"},
                "es": {"type": "string"}
            }
        },
        "SettingsMap": {
            "type": "object",
            "additionalProperties": {"$ref": "#/definitions/LocalizedValue"}
        },
        "Project": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description_en": {"type": "string"},
                "description_es": {"type": "string"},
                "impact_en": {"type": "string"},
                "impact_es": {"type": "string"},
                "stack": {"type": "array", "items": {"type": "string"}},
                "link": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "featured": {"type": "boolean"},
                "sort_order": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "CreateProjectRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description_en": {"type": "string"},
                "description_es": {"type": "string"},
                "impact_en": {"type": "string"},
                "impact_es": {"type": "string"},
                "stack": {"type": "array", "items": {"type": "string"}},
                "link": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "featured": {"type": "boolean"},
                "sort_order": {"type": "integer"}
            },
            "required": ["title"]
        },
        "ProjectPatch": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description_en": {"type": "string"},
                "description_es": {"type": "string"},
                "impact_en": {"type": "string"},
                "impact_es": {"type": "string"},
                "stack": {"type": "array", "items": {"type": "string"}},
                "link": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "featured": {"type": "boolean"},
                "sort_order": {"type": "integer"}
            }
        },
        "Experience": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "company": {"type": "string"},
                "period": {"type": "string"},
                "description_en": {"type": "string"},
                "description_es": {"type": "string"},
                "tech": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string", "enum": ["main", "minor"]},
                "context": {"type": "string"},
                "layout_delay": {"type": "string"}
            }
        },
        "CreateExperienceRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "company": {"type": "string"},
                "period": {"type": "string"},
                "description_en": {"type": "string"},
                "description_es": {"type": "string"},
                "tech": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string", "enum": ["main", "minor"]},
                "context": {"type": "string"},
                "layout_delay": {"type": "string"}
            },
            "required": ["role"]
        },
        "ExperiencePatch": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "company": {"type": "string"},
                "period": {"type": "string"},
                "description_en": {"type": "string"},
                "description_es": {"type": "string"},
                "tech": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string", "enum": ["main", "minor"]},
                "context": {"type": "string"},
                "layout_delay": {"type": "string"}
            }
        },
        "ContactMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"},
                "reason": {"type": "string"},
                "read": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "CreateContactRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"},
                "reason": {"type": "string"}
            },
            "required": ["name", "email", "message"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "token": {"type": "string"}
            }
        },
        "VerifyRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "VerifyResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "username": {"type": "string"}
            }
        },
        "LogoutRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "currentPassword": {"type": "string"},
                "newPassword": {"type": "string"}
            },
            "required": ["token", "currentPassword", "newPassword"]
        },
        "SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
