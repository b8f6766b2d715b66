package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the todo service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>todo-service - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "todo-service", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Todo": { "type": "object", "properties": { "_id": {"type":"string"}, "title": {"type":"string"}, "done": {"type":"boolean"} } },
      "TodoInput": { "type": "object", "required": ["title","done"], "properties": { "title": {"type":"string"}, "done": {"type":"boolean"} } },
      "Error": { "type": "object", "properties": { "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/todos/": {
      "post": {
        "summary": "Create a todo",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/TodoInput"} } } },
        "responses": { "201": { "description": "created todo" }, "500": { "description": "store failure", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Error"} } } } }
      },
      "get": { "summary": "List todos", "responses": { "200": { "description": "all todos" }, "500": { "description": "store failure" } } }
    },
    "/todos/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
      "get": { "summary": "Get a todo", "responses": { "200": { "description": "todo" }, "404": { "description": "not found, empty body" }, "500": { "description": "store failure" } } },
      "put": { "summary": "Update a todo", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Todo"} } } }, "responses": { "200": { "description": "updated todo" }, "404": { "description": "not found, body is null" }, "500": { "description": "store failure" } } },
      "delete": { "summary": "Delete a todo", "responses": { "200": { "description": "removed todo" }, "404": { "description": "not found, empty body" }, "500": { "description": "store failure" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
