package middleware

import (
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CSRFGuard consumes the single-use token carried in X-CSRF-Token.
// A token is spent even when the request it guards later fails.
func CSRFGuard(csrf ports.CSRFService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := csrf.Verify(c.Request.Context(), c.GetHeader(HeaderCSRFToken)); err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString(response.RequestIDKey)).
				Str("path", c.Request.URL.Path).
				Msg("csrf check failed")
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
