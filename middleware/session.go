package middleware

import (
	"net/http"

	"legato/models"
	"legato/services/session"

	"github.com/gin-gonic/gin"
)

// SessionAuth requires a valid session token cookie on API routes. When
// roles are given, the session role must match one of them.
func SessionAuth(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.ReadSession(c.Request)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if sess.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "Insufficient permissions for this role",
					"code":  0,
				})
				return
			}
		}

		c.Set("uid", sess.UID)
		c.Set("role", sess.Role)
		c.Next()
	}
}

// SessionUID returns the authenticated uid set by SessionAuth.
func SessionUID(c *gin.Context) string {
	uid, _ := c.Get("uid")
	s, _ := uid.(string)
	return s
}

// SessionRole returns the authenticated role set by SessionAuth.
func SessionRole(c *gin.Context) models.Role {
	role, _ := c.Get("role")
	r, _ := role.(models.Role)
	return r
}
