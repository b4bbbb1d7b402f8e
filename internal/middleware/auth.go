package middleware

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/model"
	"workpulse/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the request owner from the X-User-ID header and stores the
// resulting scope on the gin context. Requests without an owner are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth, or a zero scope when absent.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
