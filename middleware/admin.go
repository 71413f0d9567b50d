package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
)

// RequireAdmin must run after ValidateToken or OptionalToken.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			apperr.Abort(c, apperr.Unauthenticated("authentication credentials were not provided"))
			return
		}
		if !user.IsAdmin() {
			apperr.Abort(c, apperr.Forbidden("you do not have permission to perform this action"))
			return
		}
		c.Next()
	}
}
