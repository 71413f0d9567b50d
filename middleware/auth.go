package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/auth"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
)

const userKey = "user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// authenticate resolves the request's access token to an active user.
func authenticate(c *gin.Context, tokens *auth.TokenService, users repository.UserRepository) (*models.User, error) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return nil, apperr.Unauthenticated("authentication credentials were not provided")
	}

	claims, err := tokens.Parse(tokenString, auth.AccessToken)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid or expired token")
	}

	user, err := users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Unauthenticated("user not found")
		}
		return nil, apperr.Internal(err)
	}
	if !user.IsActive {
		return nil, apperr.Unauthenticated("user account is disabled")
	}
	return user, nil
}

// ValidateToken requires a valid access token and stores the user on the context.
func ValidateToken(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, tokens, users)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalToken attaches the user when a valid token is sent and otherwise
// lets the request through anonymously.
func OptionalToken(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bearerToken(c) != "" {
			if user, err := authenticate(c, tokens, users); err == nil {
				c.Set(userKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
