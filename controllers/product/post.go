package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
	"github.com/shopspring/decimal"
)

// POST /productos/ (JSON or multipart with an "image" file)
func CreateProduct(store *repository.Store, files *media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindProductInput(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		if input.Name == nil || *input.Name == "" {
			apperr.Abort(c, apperr.Validation("name is required"))
			return
		}
		if input.Price == nil {
			apperr.Abort(c, apperr.Validation("price is required"))
			return
		}

		product := models.Product{
			CategoryID: models.DefaultCategoryID,
			Price:      decimal.Zero,
		}
		input.apply(&product)

		if err := checkCategory(c.Request.Context(), store.Categories, product.CategoryID); err != nil {
			apperr.Abort(c, err)
			return
		}

		if input.image != nil {
			rel, err := files.SaveProductImage(input.image)
			if err != nil {
				apperr.Abort(c, apperr.Internal(err))
				return
			}
			product.Image = rel
		}

		if err := store.Products.Create(c.Request.Context(), &product); err != nil {
			if input.image != nil {
				_ = files.Remove(product.Image)
			}
			apperr.Abort(c, productError(err))
			return
		}

		log.Printf("📦 Product %d (%s) created", product.ID, product.Slug)
		c.JSON(http.StatusCreated, serializers.Product(&product, files))
	}
}
