package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-api/internal/domains/book"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// BookHandler exposes the book CRUD endpoints, same boundary contract as
// the author handler.
type BookHandler struct {
	service book.Service
	log     logger.Logger
}

func NewBookHandler(svc book.Service, log logger.Logger) *BookHandler {
	return &BookHandler{service: svc, log: log}
}

// List handles GET /api/books.
func (h *BookHandler) List(c *gin.Context) {
	const location = "books.list"
	h.log.Info(location+": attempted", nil)

	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, location, err, nil)
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"count": len(books)})
	response.JSON(c, http.StatusOK, books)
}

// Get handles GET /api/books/:id.
func (h *BookHandler) Get(c *gin.Context) {
	const location = "books.get"

	id, ok := h.pathID(c, location)
	if !ok {
		return
	}
	h.log.Info(location+": attempted", map[string]interface{}{"id": id})

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, location, err, map[string]interface{}{"id": id})
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"id": id})
	response.JSON(c, http.StatusOK, b)
}

// Create handles POST /api/books.
func (h *BookHandler) Create(c *gin.Context) {
	const location = "books.create"
	h.log.Info(location+": attempted", nil)

	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn(location+": empty or malformed request", map[string]interface{}{"error": err.Error()})
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, location, err, nil)
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"id": created.ID})
	response.Created(c, created)
}

// Update handles PUT /api/books/:id.
func (h *BookHandler) Update(c *gin.Context) {
	const location = "books.update"

	id, ok := h.pathID(c, location)
	if !ok {
		return
	}
	h.log.Info(location+": attempted", map[string]interface{}{"id": id})

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn(location+": empty or malformed request", map[string]interface{}{"id": id})
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleError(c, location, err, map[string]interface{}{"id": id})
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"id": id})
	response.NoContent(c)
}

// Delete handles DELETE /api/books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	const location = "books.delete"

	id, ok := h.pathID(c, location)
	if !ok {
		return
	}
	h.log.Info(location+": attempted", map[string]interface{}{"id": id})

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, location, err, map[string]interface{}{"id": id})
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"id": id})
	response.NoContent(c)
}

func (h *BookHandler) pathID(c *gin.Context, location string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warn(location+": bad id in path", map[string]interface{}{"raw": c.Param("id")})
		response.BadRequest(c, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) handleError(c *gin.Context, location string, err error, fields map[string]interface{}) {
	var ve validation.Errors
	switch {
	case errors.As(err, &ve):
		h.log.Warn(location+": data was incomplete", fields)
		response.BadRequestWithDetails(c, "validation failed", ve)
	case errors.Is(err, book.ErrBookNotFound):
		h.log.Warn(location+": record not found", fields)
		response.NotFound(c)
	case errors.Is(err, book.ErrInvalidID),
		errors.Is(err, book.ErrIDMismatch),
		errors.Is(err, book.ErrEmptyRequest),
		errors.Is(err, book.ErrAuthorMissing):
		h.log.Warn(location+": bad data submitted", fields)
		response.BadRequest(c, err.Error())
	default:
		h.log.Error(location+": operation failed", err)
		response.Internal(c)
	}
}
