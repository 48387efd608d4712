package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/validation"
)

const bodyKey = "parsed_body"

// ValidateBody parses the JSON body into the schema type T and validates
// it before the handler runs. On failure the request is rejected with a
// ValidationError carrying per-field issues; the handler never observes a
// malformed shape. The parsed value is stored in the context for Body.
func ValidateBody[T any](v *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			Abort(c, apperrors.NewValidationError("Invalid input",
				apperrors.Issue{Field: "body", Message: "Malformed JSON body"}))
			return
		}

		if err := v.Validate(&body); err != nil {
			Abort(c, err)
			return
		}

		c.Set(bodyKey, &body)
		c.Next()
	}
}

// Body returns the validated request body stored by ValidateBody.
func Body[T any](c *gin.Context) *T {
	if v, ok := c.Get(bodyKey); ok {
		if body, ok := v.(*T); ok {
			return body
		}
	}
	return nil
}
