package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/middleware"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
)

// GET /usuario_detalle/
func GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, serializers.User(middleware.CurrentUser(c)))
	}
}

// GET /usuarios/
func GetAllUsers(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := store.Users.GetAll(c.Request.Context())
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Users(users))
	}
}

// GET /usuarios/:id/
func GetUserByID(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperr.Abort(c, apperr.Validation("invalid user id"))
			return
		}

		user, err := store.Users.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apperr.Abort(c, apperr.NotFound("user not found"))
				return
			}
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, serializers.User(user))
	}
}
