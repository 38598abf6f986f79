package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the web and mobile clients to call the API from their
// own origins. Wishlist slugs are shared publicly, so guest routes must
// be reachable from anywhere.
func CORS(frontendURL string) gin.HandlerFunc {
	allowed := map[string]bool{
		frontendURL:             true,
		"http://localhost:3000": true,
		// React Native Metro / Android emulator origins
		"http://localhost:8081": true,
		"http://10.0.2.2:3000":  true,
		"http://10.0.2.2:8081":  true,
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
