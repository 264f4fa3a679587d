// Package docs registers the swagger document served at /swagger/*any.
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
        "/catalog/delivery-sites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Predefined delivery sites",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/documents/kinds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Official forms that can be generated from a draft",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drafts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Open a requisition draft",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/drafts/{id}": {
            "get": {
                "tags": ["drafts"],
                "summary": "Get a draft with provider statuses and totals",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["drafts"],
                "summary": "Save the whole draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            },
            "delete": {
                "tags": ["drafts"],
                "summary": "Discard a draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/drafts/{id}/general-data": {
            "patch": {
                "tags": ["drafts"],
                "summary": "Update general data (step 1)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drafts/{id}/line-items": {
            "put": {
                "tags": ["drafts"],
                "summary": "Replace line items (step 2)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drafts/{id}/research": {
            "put": {
                "tags": ["drafts"],
                "summary": "Replace market research (step 3)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/drafts/{id}/justification": {
            "put": {
                "tags": ["drafts"],
                "summary": "Update justification and attachments (step 4)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drafts/{id}/totals": {
            "get": {
                "tags": ["drafts"],
                "summary": "Subtotal, IVA and total",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drafts/{id}/preview": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["drafts"],
                "summary": "Draft preview",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "format", "in": "query", "enum": ["html", "json"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/drafts/{id}/documents/{kind}": {
            "post": {
                "produces": ["application/octet-stream"],
                "tags": ["documents"],
                "summary": "Generate an official form",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "kind", "in": "path", "required": true, "enum": ["focon01", "focon03", "focon05", "focon06"]}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/drafts/{id}/submission": {
            "get": {
                "tags": ["submission"],
                "summary": "Body that would be sent to the requisitions backend",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            },
            "post": {
                "tags": ["submission"],
                "summary": "Submit the draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}, "502": {"description": "Bad Gateway"}}
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
	Title:            "Requisiciones API",
	Description:      "Capture, document export and submission of purchase requisitions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
