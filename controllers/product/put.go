package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
)

// UpdateProduct serves both PUT and PATCH /productos/:id/. Only the fields
// present in the request change; a new image replaces the stored one.
func UpdateProduct(store *repository.Store, files *media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}

		product, err := store.Products.GetByID(c.Request.Context(), id)
		if err != nil {
			apperr.Abort(c, productError(err))
			return
		}

		input, err := bindProductInput(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		input.apply(product)

		if input.Category != nil {
			if err := checkCategory(c.Request.Context(), store.Categories, product.CategoryID); err != nil {
				apperr.Abort(c, err)
				return
			}
		}

		oldImage := product.Image
		if input.image != nil {
			rel, err := files.SaveProductImage(input.image)
			if err != nil {
				apperr.Abort(c, apperr.Internal(err))
				return
			}
			product.Image = rel
		}

		if err := store.Products.Update(c.Request.Context(), product); err != nil {
			if input.image != nil {
				_ = files.Remove(product.Image)
			}
			apperr.Abort(c, productError(err))
			return
		}

		if input.image != nil {
			if err := files.Remove(oldImage); err != nil {
				log.Printf("⚠️ Failed to remove old image %s: %v", oldImage, err)
			}
		}
		c.JSON(http.StatusOK, serializers.Product(product, files))
	}
}
