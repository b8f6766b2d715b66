package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gogotex/todo-service/internal/todo"
	"github.com/gogotex/todo-service/internal/todo/repository"
)

// Handler maps the /todos routes onto a Repository. Every handler makes exactly one
// store call. Store failures are attached with c.Error and rendered by the error
// middleware; a nil result is answered with 404.
type Handler struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterTodoRoutes mounts the todo CRUD endpoints under /todos.
func RegisterTodoRoutes(r gin.IRouter, repo repository.Repository) {
	h := New(repo)
	g := r.Group("/todos")
	g.POST("/", h.Create)
	g.GET("/", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create inserts the request body as a new todo and answers 201 with the stored item.
func (h *Handler) Create(c *gin.Context) {
	f, err := bindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	t, err := h.repo.Create(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List answers 200 with every stored todo.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.Find(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if list == nil {
		list = []*todo.Todo{}
	}
	c.JSON(http.StatusOK, list)
}

// Get answers 200 with the todo, or 404 with an empty body.
func (h *Handler) Get(c *gin.Context) {
	t, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if t == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Update merges the body into the todo and answers 200 with the updated document.
// A miss answers 404 with a JSON null body, unlike Get and Delete. Existing clients
// depend on that difference.
func (h *Handler) Update(c *gin.Context) {
	f, err := bindFields(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	t, err := h.repo.FindByIDAndUpdate(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete removes the todo and answers 200 with the document as it was, or 404 with an
// empty body.
func (h *Handler) Delete(c *gin.Context) {
	t, err := h.repo.FindByIDAndDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if t == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

// bindFields decodes the JSON body without validating it; the store owns validation.
// An empty body decodes to no fields.
func bindFields(c *gin.Context) (todo.Fields, error) {
	var f todo.Fields
	body, err := c.GetRawData()
	if err != nil {
		return f, err
	}
	if len(body) == 0 {
		return f, nil
	}
	if err := binding.JSON.BindBody(body, &f); err != nil {
		return f, err
	}
	return f, nil
}
