package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
)

type CategoryInput struct {
	Name string `json:"name" form:"name" binding:"required,oneof=hombre mujer accesorio"`
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid category id")
	}
	return uint(id), nil
}

func categoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("category not found")
	case errors.Is(err, repository.ErrDuplicate),
		errors.Is(err, repository.ErrInvalidInput),
		errors.Is(err, repository.ErrCategoryInUse):
		return apperr.Validation(err.Error())
	default:
		return apperr.Internal(err)
	}
}

// GET /categorias/
func GetCategories(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.Categories.GetAll(c.Request.Context())
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Categories(categories))
	}
}

// GET /categorias/:id/
func GetCategoryByID(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		category, err := store.Categories.GetByID(c.Request.Context(), id)
		if err != nil {
			apperr.Abort(c, categoryError(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Category(category))
	}
}

// POST /categorias/
func CreateCategory(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBind(&input); err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}

		category := models.Category{Name: input.Name}
		if err := store.Categories.Create(c.Request.Context(), &category); err != nil {
			apperr.Abort(c, categoryError(err))
			return
		}
		c.JSON(http.StatusCreated, serializers.Category(&category))
	}
}

// PUT /categorias/:id/
func UpdateCategory(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}

		var input CategoryInput
		if err := c.ShouldBind(&input); err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}

		category, err := store.Categories.GetByID(c.Request.Context(), id)
		if err != nil {
			apperr.Abort(c, categoryError(err))
			return
		}
		category.Name = input.Name
		if err := store.Categories.Update(c.Request.Context(), category); err != nil {
			apperr.Abort(c, categoryError(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Category(category))
	}
}

// DELETE /categorias/:id/
func DeleteCategory(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		if err := store.Categories.Delete(c.Request.Context(), id); err != nil {
			apperr.Abort(c, categoryError(err))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
