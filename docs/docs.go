// Package docs provides Swagger documentation for the InsurHub API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "InsurHub API",
        "description": "Insurance record management API.\n\nThree record kinds are supported:\n1. **Life** - life policies with health disclosure\n2. **Property** - property policies with building details\n3. **Vehicle** - vehicle policies with car details\n\nPlus cross-kind listing, holder-name search and premium summary reports.",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "1.0.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http", "https"],
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/life": {
            "get": {
                "tags": ["Life"],
                "summary": "List all life records",
                "operationId": "listLifeInsurances",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/LifeInsurance"}}
                    }
                }
            },
            "post": {
                "tags": ["Life"],
                "summary": "Create a life record",
                "operationId": "createLifeInsurance",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LifeInsuranceDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/LifeInsurance"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/life/{id}": {
            "get": {
                "tags": ["Life"],
                "summary": "Get a life record by id",
                "operationId": "getLifeInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/LifeInsurance"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "put": {
                "tags": ["Life"],
                "summary": "Update a life record",
                "description": "Replaces the record contents. The id, type and startDate of the stored record are kept regardless of the payload.",
                "operationId": "updateLifeInsurance",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LifeInsuranceUpdate"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/LifeInsurance"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "delete": {
                "tags": ["Life"],
                "summary": "Delete a life record",
                "description": "Idempotent. Deleting a missing id still returns 200.",
                "operationId": "deleteLifeInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Deleted"}
                }
            }
        },
        "/property": {
            "get": {
                "tags": ["Property"],
                "summary": "List all property records",
                "operationId": "listPropertyInsurances",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/PropertyInsurance"}}
                    }
                }
            },
            "post": {
                "tags": ["Property"],
                "summary": "Create a property record",
                "operationId": "createPropertyInsurance",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PropertyInsuranceDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PropertyInsurance"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/property/{id}": {
            "get": {
                "tags": ["Property"],
                "summary": "Get a property record by id",
                "operationId": "getPropertyInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/PropertyInsurance"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "put": {
                "tags": ["Property"],
                "summary": "Update a property record",
                "operationId": "updatePropertyInsurance",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PropertyInsuranceUpdate"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/PropertyInsurance"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "delete": {
                "tags": ["Property"],
                "summary": "Delete a property record",
                "operationId": "deletePropertyInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Deleted"}
                }
            }
        },
        "/vehicle": {
            "get": {
                "tags": ["Vehicle"],
                "summary": "List all vehicle records",
                "operationId": "listVehicleInsurances",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/VehicleInsurance"}}
                    }
                }
            },
            "post": {
                "tags": ["Vehicle"],
                "summary": "Create a vehicle record",
                "operationId": "createVehicleInsurance",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VehicleInsuranceDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/VehicleInsurance"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/vehicle/{id}": {
            "get": {
                "tags": ["Vehicle"],
                "summary": "Get a vehicle record by id",
                "operationId": "getVehicleInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/VehicleInsurance"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "put": {
                "tags": ["Vehicle"],
                "summary": "Update a vehicle record",
                "operationId": "updateVehicleInsurance",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VehicleInsuranceUpdate"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/VehicleInsurance"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            },
            "delete": {
                "tags": ["Vehicle"],
                "summary": "Delete a vehicle record",
                "operationId": "deleteVehicleInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Deleted"}
                }
            }
        },
        "/getall": {
            "get": {
                "tags": ["All"],
                "summary": "List all records grouped by kind",
                "operationId": "getAllInsurances",
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/AllInsurancesResponse"}}
                }
            }
        },
        "/insurances": {
            "get": {
                "tags": ["All"],
                "summary": "List all records as a flat list",
                "operationId": "listInsurances",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"type": "array", "items": {"type": "object"}}
                    }
                }
            }
        },
        "/insurances/{id}": {
            "get": {
                "tags": ["All"],
                "summary": "Get a record of any kind by id",
                "operationId": "getInsurance",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Successful response", "schema": {"type": "object"}},
                    "404": {"description": "No record with this id", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/search": {
            "get": {
                "tags": ["Search"],
                "summary": "Search records by holder name",
                "description": "Case-insensitive whole-field match on firstName and familyName. At least one of the two is required. With type unset or 'all' the response groups hits by kind; with a concrete type it is a flat list.",
                "operationId": "searchInsurances",
                "parameters": [
                    {"name": "firstName", "in": "query", "type": "string"},
                    {"name": "familyName", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string", "enum": ["life", "property", "vehicle", "all"]}
                ],
                "responses": {
                    "200": {"description": "Successful response"},
                    "400": {"description": "Missing criteria or unknown type", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        },
        "/summary": {
            "get": {
                "tags": ["Summary"],
                "summary": "Premium totals and per-kind counts",
                "operationId": "getSummary",
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/InsuranceSummary"}}
                }
            }
        },
        "/summary/total-amount": {
            "get": {
                "tags": ["Summary"],
                "summary": "Total premium over every record",
                "operationId": "getTotalAmount",
                "responses": {
                    "200": {"description": "Successful response", "schema": {"type": "number"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Login of the authenticated caller",
                "operationId": "getAuthMe",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Login name", "schema": {"type": "string"}},
                    "401": {"description": "No valid API key", "schema": {"$ref": "#/definitions/ProblemDetails"}}
                }
            }
        }
    },
    "definitions": {
        "LifeInsurance": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "familyName": {"type": "string"},
                "zipCode": {"type": "string"},
                "city": {"type": "string"},
                "address": {"type": "string"},
                "telephone": {"type": "string"},
                "email": {"type": "string"},
                "type": {"type": "string", "enum": ["LIFE"]},
                "duration": {"type": "integer", "description": "months"},
                "paymentPerMonth": {"type": "string", "example": "100.00"},
                "startDate": {"type": "string", "format": "date"},
                "endDate": {"type": "string", "format": "date"},
                "hasHealthIssues": {"type": "boolean"},
                "healthConditionDetails": {"type": "string"}
            }
        },
        "LifeInsuranceDTO": {"$ref": "#/definitions/LifeInsurance"},
        "LifeInsuranceUpdate": {"$ref": "#/definitions/LifeInsurance"},
        "PropertyInsurance": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "familyName": {"type": "string"},
                "zipCode": {"type": "string"},
                "city": {"type": "string"},
                "address": {"type": "string"},
                "telephone": {"type": "string"},
                "email": {"type": "string"},
                "type": {"type": "string", "enum": ["PROPERTY"]},
                "duration": {"type": "integer", "description": "months"},
                "paymentPerMonth": {"type": "string", "example": "35.90"},
                "startDate": {"type": "string", "format": "date"},
                "endDate": {"type": "string", "format": "date"},
                "propertyType": {"type": "string", "example": "APARTMENT"},
                "propertyAddress": {"type": "string"},
                "constructionYear": {"type": "integer"}
            }
        },
        "PropertyInsuranceDTO": {"$ref": "#/definitions/PropertyInsurance"},
        "PropertyInsuranceUpdate": {"$ref": "#/definitions/PropertyInsurance"},
        "VehicleInsurance": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "familyName": {"type": "string"},
                "zipCode": {"type": "string"},
                "city": {"type": "string"},
                "address": {"type": "string"},
                "telephone": {"type": "string"},
                "email": {"type": "string"},
                "type": {"type": "string", "enum": ["VEHICLE"]},
                "duration": {"type": "integer", "description": "months"},
                "paymentPerMonth": {"type": "string", "example": "89.00"},
                "startDate": {"type": "string", "format": "date"},
                "endDate": {"type": "string", "format": "date"},
                "vehicleMake": {"type": "string"},
                "vehicleModel": {"type": "string"},
                "vehicleYear": {"type": "integer"},
                "licensePlateNumber": {"type": "string"}
            }
        },
        "VehicleInsuranceDTO": {"$ref": "#/definitions/VehicleInsurance"},
        "VehicleInsuranceUpdate": {"$ref": "#/definitions/VehicleInsurance"},
        "AllInsurancesResponse": {
            "type": "object",
            "properties": {
                "lifeInsurances": {"type": "array", "items": {"$ref": "#/definitions/LifeInsurance"}},
                "propertyInsurances": {"type": "array", "items": {"$ref": "#/definitions/PropertyInsurance"}},
                "vehicleInsurances": {"type": "array", "items": {"$ref": "#/definitions/VehicleInsurance"}}
            }
        },
        "InsuranceSummary": {
            "type": "object",
            "properties": {
                "totalAmount": {"type": "string", "example": "10800"},
                "lifeInsuranceCount": {"type": "integer"},
                "propertyInsuranceCount": {"type": "integer"},
                "vehicleInsuranceCount": {"type": "integer"}
            }
        },
        "ProblemDetails": {
            "type": "object",
            "description": "RFC 7807 Problem Details",
            "properties": {
                "type": {"type": "string", "example": "about:blank"},
                "title": {"type": "string", "example": "Not Found"},
                "status": {"type": "integer", "example": 404},
                "detail": {"type": "string", "example": "There is no insurance with this id"},
                "instance": {"type": "string", "example": "/api/life/abc-123"}
            }
        }
    },
    "tags": [
        {"name": "Life", "description": "Life policy records"},
        {"name": "Property", "description": "Property policy records"},
        {"name": "Vehicle", "description": "Vehicle policy records"},
        {"name": "All", "description": "Cross-kind listing and lookup"},
        {"name": "Search", "description": "Holder-name search"},
        {"name": "Summary", "description": "Premium totals and counts"},
        {"name": "Auth", "description": "Caller identity"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "InsurHub API",
	Description:      "Insurance record management API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
