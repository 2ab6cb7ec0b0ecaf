package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/service"
)

// AuthMiddleware guards the API with the opaque bearer token issued at
// setup/login. The token lives in the settings store, so rotating it there
// invalidates every outstanding session.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		ok, err := auth.ValidateToken(c.Request.Context(), token)
		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "登录已过期"})
			return
		}

		c.Next()
	}
}
