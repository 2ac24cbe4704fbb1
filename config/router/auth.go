package router

import (
	"net/http"

	"github.com/akeren/email-collector/pkg/adminauth"
)

// RequireAdminToken guards a route with an admin bearer token. An empty
// secret leaves the route open.
func RequireAdminToken(secret string) MiddlewareFunc {
	if secret == "" {
		return func(c *RequestContext) {
			c.Next()
		}
	}

	key := []byte(secret)

	return func(c *RequestContext) {
		raw, ok := adminauth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, UnauthorizedResult("Admin token required").ToJSON())
			return
		}

		if _, err := adminauth.VerifyToken(key, raw); err != nil {
			GetLogger(c).Warn("Rejected admin token", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, UnauthorizedResult("Invalid or expired admin token").ToJSON())
			return
		}

		c.Next()
	}
}
