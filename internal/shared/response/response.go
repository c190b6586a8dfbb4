package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalMessage is the only text an operational failure ever puts on the
// wire. Fault detail stays in the server log.
const InternalMessage = "Something went wrong. Please contact the Administrator"

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error"`
}

// JSON writes a success payload as-is; entity bodies are the DTOs
// themselves, not an envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound responds 404 with an empty body.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, errorBody{Error: &Error{Code: code, Message: message}})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// BadRequestWithDetails carries field-level validation state in details.
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, errorBody{
		Error: &Error{Code: "BAD_REQUEST", Message: message, Details: details},
	})
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

func Conflict(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func Internal(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", InternalMessage)
}
