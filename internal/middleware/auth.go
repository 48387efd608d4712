package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/auth"
)

const userIDKey = "user_id"

// Authenticate resolves the caller identity from a bearer token, once per
// request. A missing or invalid token yields an empty caller id rather
// than an error; rejection is the guards' job.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if tokenString, err := auth.TokenFromHeader(header); err == nil {
				if claims, err := tokens.Validate(tokenString); err == nil {
					c.Set(userIDKey, claims.UserID)
				}
			}
		}

		c.Next()
	}
}

// CallerID returns the authenticated caller's user id, or "" when the
// request carried no valid token.
func CallerID(c *gin.Context) string {
	if id, ok := c.Get(userIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// RequireAuth rejects requests without an established caller identity
// before the handler runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerID(c) == "" {
			Abort(c, apperrors.NewUnauthorizedError("Unauthorized"))
			return
		}

		c.Next()
	}
}
