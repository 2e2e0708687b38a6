package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/auth"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logctx"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
)

const (
	ctxUserIDKey    = "userID"
	ctxUserEmailKey = "userEmail"
)

// TokenParser validates bearer tokens; satisfied by the auth service.
type TokenParser interface {
	ParseToken(raw string) (*auth.Claims, error)
}

// AuthMiddleware requires a Bearer token and stores the authenticated user's
// id and email on the gin context.
func AuthMiddleware(svc TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}

		claims, err := svc.ParseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid token"))
			return
		}

		c.Set(ctxUserIDKey, claims.Subject)
		c.Set(ctxUserEmailKey, claims.Email)

		// mirror into the request context so logctx can enrich service logs
		ctx := context.WithValue(c.Request.Context(), logctx.UserIDKey, claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

// UserEmail returns the authenticated user email set by AuthMiddleware.
func UserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmailKey)
}
