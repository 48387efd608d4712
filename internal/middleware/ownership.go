package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/miniactivity/server/internal/apperrors"
)

// OwnerResolver looks up the identity owning the resource a request
// targets, typically via a store lookup on a path parameter. A missing
// resource must surface as a NotFound error.
type OwnerResolver func(c *gin.Context) (string, error)

// RequireOwnership rejects requests whose caller is not the owner of the
// targeted resource. The owner lookup runs first, so a missing resource
// propagates as NotFound rather than Forbidden. An absent caller identity
// never equals a real owner id, so ownership-guarded routes implicitly
// require authentication.
func RequireOwnership(resolve OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := resolve(c)
		if err != nil {
			Abort(c, err)
			return
		}

		if ownerID != CallerID(c) {
			Abort(c, apperrors.NewForbiddenError("Forbidden"))
			return
		}

		c.Next()
	}
}
