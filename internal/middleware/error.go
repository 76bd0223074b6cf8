package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/httputil"
)

// ErrorHandler renders the last error pushed with c.Error as the error page.
// Client errors are logged at debug level; everything else at error level.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		lastErr := c.Errors.Last().Err

		event := log.Error()
		if apperrors.Is(lastErr, apperrors.ErrNotFound) || apperrors.Is(lastErr, apperrors.ErrValidation) {
			event = log.Debug()
		}
		event.
			Err(lastErr).
			Str("request_id", c.GetString(ContextRequestID)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Str("client_ip", c.ClientIP()).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		httputil.RespondWithError(c, lastErr)
	}
}
