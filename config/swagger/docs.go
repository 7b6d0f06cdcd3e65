// Package swagger holds the generated API document. Regenerate with
// `swag init -o config/swagger` after changing controller annotations.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Endpoint just pings the server",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/games": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Lists games with optional filters",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "difficulty", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "number", "name": "price_min", "in": "query"},
                    {"type": "number", "name": "price_max", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/games/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Returns a single game",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/games/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Lists featured games",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/booking": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Starts a booking draft for a game",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Returns the current booking draft",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/booking/date": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Selects a date and loads its time slots",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/booking/time": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Selects a time slot",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/booking/players": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Sets the number of players",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/booking/identity": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Submits contact details and sends the verification code",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/booking/resend-otp": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Resends the verification code",
                "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/booking/verify-otp": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Verifies the emailed code",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/booking/disclaimer": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Records disclaimer acceptance",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/booking/requirements": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Stores special requirements text",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/booking/confirm": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Creates the reservation and the payment session",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/api/booking/back": {
            "post": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Steps the wizard back one step",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/reservations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Lists the visitor's reservations",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/api/consent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["consent"],
                "summary": "Returns the stored cookie consent",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["consent"],
                "summary": "Stores a per-category consent choice",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/consent/accept-all": {
            "post": {
                "produces": ["application/json"],
                "tags": ["consent"],
                "summary": "Accepts every consent category",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/consent/reject-all": {
            "post": {
                "produces": ["application/json"],
                "tags": ["consent"],
                "summary": "Rejects every optional consent category",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/language": {
            "get": {
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Returns the active language and the supported set",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Changes the active language",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/language/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Returns the localized string table for a language",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/pages/home": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Returns the home page payload",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/pages/about": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Returns the about page payload",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/pages/contact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Returns the contact page payload",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/api/pages/legal/{document}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Returns a legal document",
                "parameters": [{"type": "string", "name": "document", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/pages/payment/{outcome}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Returns the payment result page payload",
                "parameters": [{"type": "string", "name": "outcome", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Questbook API",
	Description:      "Gin-Gonic front-end service for the Questbook escape room catalog and booking wizard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
