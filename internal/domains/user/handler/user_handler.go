package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-api/internal/domains/user"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// UserHandler exposes the login endpoint.
type UserHandler struct {
	service user.Service
	log     logger.Logger
}

func NewUserHandler(svc user.Service, log logger.Logger) *UserHandler {
	return &UserHandler{service: svc, log: log}
}

// Login handles POST /api/users. A failed login returns a generic
// indicator only; the submitted credentials are never echoed back.
func (h *UserHandler) Login(c *gin.Context) {
	const location = "users.login"

	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn(location+": empty or malformed request", nil)
		response.BadRequest(c, "invalid request body")
		return
	}

	h.log.Info(location+": attempted", map[string]interface{}{"username": req.Username})

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, location, err, req.Username)
		return
	}

	h.log.Info(location+": successful", map[string]interface{}{"username": req.Username})
	response.JSON(c, http.StatusOK, resp)
}

func (h *UserHandler) handleError(c *gin.Context, location string, err error, username string) {
	var ve validation.Errors
	switch {
	case errors.As(err, &ve):
		h.log.Warn(location+": data was incomplete", nil)
		response.BadRequestWithDetails(c, "validation failed", ve)
	case errors.Is(err, user.ErrInvalidCredentials):
		h.log.Info(location+": not authenticated", map[string]interface{}{"username": username})
		response.Unauthorized(c, user.ErrInvalidCredentials.Error())
	default:
		h.log.Error(location+": operation failed", err)
		response.Internal(c)
	}
}
