// Package docs holds the Swagger 2.0 document served under /swagger.
//
// The template is maintained by hand alongside the routes; the router tests
// fail when a registered route is missing from it.
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
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/parcels": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parcels"],
                "summary": "List parcels",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ParcelResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/parcels/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parcels"],
                "summary": "Count parcels per status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CatalogSummaryResponse"}}}
            }
        },
        "/parcels/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parcels"],
                "summary": "Get a parcel",
                "parameters": [{"type": "integer", "description": "Plot number", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ParcelResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/layouts": {
            "get": {"produces": ["application/json"], "tags": ["layouts"], "summary": "List rendering modes", "responses": {"200": {"description": "OK"}}}
        },
        "/layouts/{mode}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["layouts"],
                "summary": "Computed shapes of a rendering mode",
                "parameters": [{"enum": ["grid", "topdown", "perspective", "canvas", "precision"], "type": "string", "name": "mode", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/layouts/{mode}/svg": {
            "get": {
                "produces": ["image/svg+xml"],
                "tags": ["layouts"],
                "summary": "Site plan as SVG",
                "parameters": [
                    {"type": "string", "name": "mode", "in": "path", "required": true},
                    {"type": "integer", "description": "Plot to highlight", "name": "selected", "in": "query"},
                    {"type": "string", "description": "Highlight the plot selected in this session", "name": "session", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/layouts/{mode}/png": {
            "get": {
                "produces": ["image/png"],
                "tags": ["layouts"],
                "summary": "Site plan as PNG",
                "parameters": [
                    {"type": "string", "name": "mode", "in": "path", "required": true},
                    {"type": "integer", "description": "Plot to highlight", "name": "selected", "in": "query"},
                    {"type": "string", "description": "Highlight the plot selected in this session", "name": "session", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sessions": {
            "post": {"produces": ["application/json"], "tags": ["sessions"], "summary": "Start a visitor session", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SessionResponse"}}}}
        },
        "/sessions/{id}": {
            "get": {"produces": ["application/json"], "tags": ["sessions"], "summary": "Get a visitor session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}}
        },
        "/sessions/{id}/select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Select or toggle a plot",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.SelectParcelRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}}}
            }
        },
        "/sessions/{id}/selection": {
            "delete": {"produces": ["application/json"], "tags": ["sessions"], "summary": "Clear the selected plot", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}}}}
        },
        "/sessions/{id}/inquiry/open": {
            "post": {"produces": ["application/json"], "tags": ["sessions"], "summary": "Open the inquiry dialog", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}}}}
        },
        "/sessions/{id}/inquiry/close": {
            "post": {"produces": ["application/json"], "tags": ["sessions"], "summary": "Close the inquiry dialog", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}}}}
        },
        "/inquiries": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inquiries"],
                "summary": "Submit a lead",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.InquiryRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.InquiryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "request.InquiryRequest": {
            "type": "object",
            "required": ["name", "phone"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"},
                "parcel_id": {"type": "integer"},
                "session_id": {"type": "string"}
            }
        },
        "request.SelectParcelRequest": {
            "type": "object",
            "required": ["parcel_id"],
            "properties": {"parcel_id": {"type": "integer"}}
        },
        "response.CatalogSummaryResponse": {
            "type": "object",
            "properties": {"total": {"type": "integer"}, "available": {"type": "integer"}, "reserved": {"type": "integer"}, "sold": {"type": "integer"}}
        },
        "response.InquiryResponse": {
            "type": "object",
            "properties": {
                "inquiry_id": {"type": "string"},
                "persisted": {"type": "boolean"},
                "notified": {"type": "boolean"},
                "close_after_ms": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "response.ParcelResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "plot_number": {"type": "string"},
                "width": {"type": "string"},
                "depth": {"type": "string"},
                "width_ft": {"type": "number"},
                "depth_ft": {"type": "number"},
                "area_sq_ft": {"type": "integer"},
                "caption": {"type": "string"},
                "status": {"type": "string"},
                "selectable": {"type": "boolean"}
            }
        },
        "response.SessionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "selected_parcel_id": {"type": "integer"},
                "inquiry_open": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Plot Site API",
	Description:      "Plot catalog, site-plan layouts, visitor selection and inquiries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
