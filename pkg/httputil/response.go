package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-desk/pkg/errors"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// ErrorTemplate is the page used for every error response.
const ErrorTemplate = "error.html"

// RespondWithError renders the error page with the status carried by err.
// Errors that are not AppErrors are internal server errors.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if appErr, ok := errors.As(err); ok {
		status = appErr.StatusCode()
	}
	RenderError(c, status, errors.PublicMessage(err))
}

// RenderError aborts the request with the error page.
func RenderError(c *gin.Context, status int, message string) {
	c.Abort()
	c.HTML(status, ErrorTemplate, gin.H{
		"Title":     http.StatusText(status),
		"Message":   message,
		"RequestID": c.GetString(RequestIDKey),
	})
}
