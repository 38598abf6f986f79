package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire envelope for every error response.
// Clients key off the conventional HTTP status code and show `detail`.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Success writes the payload as-is. Resources are returned bare, without
// a wrapper object, so clients can patch local state directly.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorBody{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

func Unauthorized(c *gin.Context, detail string) {
	Error(c, http.StatusUnauthorized, detail)
}

func Forbidden(c *gin.Context, detail string) {
	Error(c, http.StatusForbidden, detail)
}

func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

func Conflict(c *gin.Context, detail string) {
	Error(c, http.StatusConflict, detail)
}

func InternalServerError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
