package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// AuthorHandler exposes the author CRUD endpoints. Any fault that is not
// a client error is converted at this boundary into a logged generic 500.
type AuthorHandler struct {
	service author.Service
	log     logger.Logger
}

func NewAuthorHandler(svc author.Service, log logger.Logger) *AuthorHandler {
	return &AuthorHandler{service: svc, log: log}
}

// List handles GET /api/authors.
func (h *AuthorHandler) List(c *gin.Context) {
	const location = "authors.list"
	h.log.Info(location+": attempted", nil)

	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, location, err, nil)
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"count": len(authors)})
	response.JSON(c, http.StatusOK, authors)
}

// Get handles GET /api/authors/:id.
func (h *AuthorHandler) Get(c *gin.Context) {
	const location = "authors.get"

	id, ok := h.pathID(c, location)
	if !ok {
		return
	}
	h.log.Info(location+": attempted", map[string]interface{}{"id": id})

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, location, err, map[string]interface{}{"id": id})
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"id": id})
	response.JSON(c, http.StatusOK, a)
}

// Create handles POST /api/authors.
func (h *AuthorHandler) Create(c *gin.Context) {
	const location = "authors.create"
	h.log.Info(location+": attempted", nil)

	var req author.CreateAuthorRequest
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

// Update handles PUT /api/authors/:id.
func (h *AuthorHandler) Update(c *gin.Context) {
	const location = "authors.update"

	id, ok := h.pathID(c, location)
	if !ok {
		return
	}
	h.log.Info(location+": attempted", map[string]interface{}{"id": id})

	var req author.UpdateAuthorRequest
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

// Delete handles DELETE /api/authors/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
	const location = "authors.delete"

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

func (h *AuthorHandler) pathID(c *gin.Context, location string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Warn(location+": bad id in path", map[string]interface{}{"raw": c.Param("id")})
		response.BadRequest(c, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *AuthorHandler) handleError(c *gin.Context, location string, err error, fields map[string]interface{}) {
	var ve validation.Errors
	switch {
	case errors.As(err, &ve):
		h.log.Warn(location+": data was incomplete", fields)
		response.BadRequestWithDetails(c, "validation failed", ve)
	case errors.Is(err, author.ErrAuthorNotFound):
		h.log.Warn(location+": record not found", fields)
		response.NotFound(c)
	case errors.Is(err, author.ErrInvalidID),
		errors.Is(err, author.ErrIDMismatch),
		errors.Is(err, author.ErrEmptyRequest):
		h.log.Warn(location+": bad data submitted", fields)
		response.BadRequest(c, err.Error())
	case errors.Is(err, author.ErrAuthorHasBooks):
		h.log.Warn(location+": author has linked books", fields)
		response.Conflict(c, err.Error())
	default:
		h.log.Error(location+": operation failed", err)
		response.Internal(c)
	}
}
