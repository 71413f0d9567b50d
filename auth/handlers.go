package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	Username  string `json:"username" binding:"required,max=150"`
	Role      string `json:"role" binding:"omitempty,oneof=client admin"`
	FirstName string `json:"first_name" binding:"max=30"`
	LastName  string `json:"last_name" binding:"max=30"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh"`
}

func pairResponse(pair TokenPair, u *models.User) gin.H {
	return gin.H{
		"access":   pair.Access,
		"refresh":  pair.Refresh,
		"role":     u.Role,
		"username": u.Username,
	}
}

// POST /registro/
func Register(users repository.UserRepository, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}

		hash, err := HashPassword(input.Password)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			// max=72 counts characters, bcrypt counts bytes
			apperr.Abort(c, apperr.Validation("password must be at most 72 bytes"))
			return
		}
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}

		role := input.Role
		if role == "" {
			role = models.RoleClient
		}
		if !models.ValidRole(role) {
			apperr.Abort(c, apperr.Validation("role must be client or admin"))
			return
		}
		user := &models.User{
			Email:        input.Email,
			Username:     input.Username,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Role:         role,
			IsActive:     true,
			PasswordHash: hash,
		}
		if err := users.Create(c.Request.Context(), user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				apperr.Abort(c, apperr.Validation("email or username already registered"))
				return
			}
			apperr.Abort(c, apperr.Internal(err))
			return
		}

		pair, err := tokens.IssuePair(user)
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusCreated, pairResponse(pair, user))
	}
}

// POST /token/
func Login(users repository.UserRepository, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apperr.Abort(c, apperr.Unauthenticated("email not found"))
				return
			}
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		if !CheckPassword(user.PasswordHash, input.Password) {
			apperr.Abort(c, apperr.Unauthenticated("incorrect password"))
			return
		}
		if !user.IsActive {
			apperr.Abort(c, apperr.Unauthenticated("user account is disabled"))
			return
		}

		pair, err := tokens.IssuePair(user)
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, pairResponse(pair, user))
	}
}

// POST /token/refresh/
func Refresh(users repository.UserRepository, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Refresh == "" {
			apperr.Abort(c, apperr.Validation("refresh token is required"))
			return
		}

		access, err := tokens.Refresh(c.Request.Context(), input.Refresh, users)
		if err != nil {
			if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrWrongTokenType) ||
				errors.Is(err, ErrTokenRevoked) || errors.Is(err, ErrUserInactive) {
				apperr.Abort(c, apperr.Unauthenticated(err.Error()))
				return
			}
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"access": access})
	}
}

// POST /logout/
func Logout(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Refresh == "" {
			apperr.Abort(c, apperr.Validation("refresh token is required"))
			return
		}

		if err := tokens.Revoke(c.Request.Context(), input.Refresh); err != nil {
			if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrWrongTokenType) {
				apperr.Abort(c, apperr.Validation("invalid refresh token"))
				return
			}
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
