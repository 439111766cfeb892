// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
		"/healthz": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Readiness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HealthResponse"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.LoginInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log out",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/company": {
			"get": {
				"tags": [
					"company"
				],
				"summary": "Get company details",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"put": {
				"tags": [
					"company"
				],
				"summary": "Save company details",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CompanyDetails"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/customers": {
			"get": {
				"tags": [
					"customers"
				],
				"summary": "List customers",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"post": {
				"tags": [
					"customers"
				],
				"summary": "Create a customer",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CustomerDetails"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/customers/{id}": {
			"put": {
				"tags": [
					"customers"
				],
				"summary": "Update a customer",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CustomerDetails"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"customers"
				],
				"summary": "Delete a customer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/catalog": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List catalog items",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Create a catalog item",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.SavedItem"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoice-lines": {
			"post": {
				"tags": [
					"catalog"
				],
				"summary": "Create a blank invoice line, optionally prefilled from a catalog item",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.NewLineRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"404": {
						"description": "Catalog item not found",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/catalog/{id}": {
			"put": {
				"tags": [
					"catalog"
				],
				"summary": "Update a catalog item",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.SavedItem"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"catalog"
				],
				"summary": "Delete a catalog item",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoice-numbers/next": {
			"post": {
				"tags": [
					"invoices"
				],
				"summary": "Draw the next invoice number",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices/preview": {
			"post": {
				"tags": [
					"invoices"
				],
				"summary": "Compute invoice totals",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.InvoiceData"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices/pdf": {
			"post": {
				"tags": [
					"invoices"
				],
				"summary": "Render an unsaved invoice as PDF",
				"produces": [
					"application/pdf"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.InvoiceData"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices": {
			"get": {
				"tags": [
					"invoices"
				],
				"summary": "List saved invoices",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Search text",
						"name": "search",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"post": {
				"tags": [
					"invoices"
				],
				"summary": "Save a new invoice",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.InvoiceData"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices/{id}": {
			"get": {
				"tags": [
					"invoices"
				],
				"summary": "Get a saved invoice",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"put": {
				"tags": [
					"invoices"
				],
				"summary": "Update a saved invoice",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.InvoiceData"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"invoices"
				],
				"summary": "Delete a saved invoice",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices/{id}/pdf": {
			"get": {
				"tags": [
					"invoices"
				],
				"summary": "Download a saved invoice as PDF",
				"produces": [
					"application/pdf"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices/{id}/send": {
			"post": {
				"tags": [
					"invoices"
				],
				"summary": "E-mail an invoice to its customer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		},
		"/invoices/export.csv": {
			"get": {
				"tags": [
					"invoices"
				],
				"summary": "Export the invoice register",
				"produces": [
					"text/csv"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponseBody"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.CompanyDetails": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"gstin": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"stateCode": {
					"type": "string"
				},
				"pan": {
					"type": "string"
				},
				"bankName": {
					"type": "string"
				},
				"accountNumber": {
					"type": "string"
				},
				"accountHolderName": {
					"type": "string"
				},
				"ifscCode": {
					"type": "string"
				},
				"branch": {
					"type": "string"
				},
				"logo": {
					"type": "string"
				},
				"mobile": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"address",
				"gstin"
			]
		},
		"domain.CustomerDetails": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"gstin": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"stateCode": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"domain.InvoiceItem": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"slNo": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"hsnSac": {
					"type": "string"
				},
				"gstRate": {
					"type": "number"
				},
				"quantity": {
					"type": "number"
				},
				"rate": {
					"type": "number"
				},
				"amount": {
					"type": "number"
				},
				"gstType": {
					"type": "string",
					"enum": [
						"CGST_SGST",
						"IGST"
					]
				}
			}
		},
		"domain.SavedItem": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"hsnSac": {
					"type": "string"
				},
				"gstRate": {
					"type": "number"
				},
				"rate": {
					"type": "number"
				}
			},
			"required": [
				"description"
			]
		},
		"domain.InvoiceData": {
			"type": "object",
			"properties": {
				"invoiceNo": {
					"type": "string"
				},
				"invoiceDate": {
					"type": "string"
				},
				"deliveryNote": {
					"type": "string"
				},
				"paymentTerms": {
					"type": "string"
				},
				"supplierRef": {
					"type": "string"
				},
				"otherRef": {
					"type": "string"
				},
				"buyerOrderNo": {
					"type": "string"
				},
				"buyerOrderDate": {
					"type": "string"
				},
				"dispatchDocNo": {
					"type": "string"
				},
				"deliveryNoteDate": {
					"type": "string"
				},
				"dispatchThrough": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"termsOfDelivery": {
					"type": "string"
				},
				"invoiceType": {
					"type": "string",
					"enum": [
						"TAX",
						"PROFORMA"
					]
				},
				"company": {
					"$ref": "#/definitions/domain.CompanyDetails"
				},
				"customer": {
					"$ref": "#/definitions/domain.CustomerDetails"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.InvoiceItem"
					}
				},
				"pAndF": {
					"type": "number"
				},
				"roundOff": {
					"type": "number"
				}
			}
		},
		"service.LoginInput": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handler.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.ListMeta": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer"
				}
			}
		},
		"handler.NewLineRequest": {
			"type": "object",
			"properties": {
				"catalogId": {
					"type": "string"
				},
				"position": {
					"type": "integer",
					"minimum": 0
				}
			}
		},
		"handler.Response": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				},
				"meta": {
					"$ref": "#/definitions/handler.ListMeta"
				}
			}
		},
		"handler.ErrorResponseBody": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"error": {
					"$ref": "#/definitions/handler.APIError"
				}
			}
		},
		"handler.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the access token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GST Invoice API",
	Description:      "Create, price, render and deliver Indian GST tax invoices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
