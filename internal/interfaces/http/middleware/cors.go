package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/shared/constants"
)

// CORS answers cross-origin requests from the configured dashboard origins.
// A "*" entry allows any origin; credentials are never sent for it.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	wildcard := slices.Contains(allowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case origin == "":
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case slices.Contains(allowedOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, "+constants.HeaderXRequestID)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Expose-Headers", constants.HeaderXRequestID)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
