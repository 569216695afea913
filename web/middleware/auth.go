// Package middleware provides gin middleware for bearer-token resolution
// and role-based access control.
package middleware

import (
	"net/http"
	"strings"

	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/web/entity"
	"github.com/domysh/spesometro/web/service"

	"github.com/gin-gonic/gin"
)

const callerKey = "LOGIN_USER"

// TokenResolver parses the Authorization bearer header once per request
// and stores the resolved caller in the request context. Any failure
// leaves the request anonymous, it never aborts.
func TokenResolver() gin.HandlerFunc {
	authService := service.AuthService{}
	return func(c *gin.Context) {
		token := ""
		header := c.GetHeader("Authorization")
		if value, found := strings.CutPrefix(header, "Bearer "); found {
			token = value
		}
		if user := authService.ResolveCaller(token); user != nil {
			c.Set(callerKey, user)
		}
		c.Next()
	}
}

// GetCaller returns the authenticated user of the request, nil for
// anonymous callers.
func GetCaller(c *gin.Context) *model.User {
	if obj, exists := c.Get(callerKey); exists {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

// RequireRole gates a route group at the given tier. Denials answer 401
// with a bearer challenge so clients know to renew their token.
func RequireRole(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !model.Allowed(required, GetCaller(c)) {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Success: false,
				Msg:     "could not validate credentials",
			})
			return
		}
		c.Next()
	}
}
