package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

// InvalidRequest answers a bind or validation failure, exposing the validator text.
func InvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: "Invalid request data.",
		Detail:  err.Error(),
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps err onto an HTTP response. Errors that are not BusinessError
// values are logged and answered with a generic 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		slog.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
		Internal(c, "internal_error", "Internal server error.")
		return
	}

	status := be.Kind.Status()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"code", be.Code,
			"error", be.Error(),
		)
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: be.Message,
		Detail:  be.Detail,
	})
}
