package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/repository"
)

// DELETE /productos/:id/
func DeleteProduct(store *repository.Store, files *media.Store) gin.HandlerFunc {
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

		if err := store.Products.Delete(c.Request.Context(), id); err != nil {
			apperr.Abort(c, productError(err))
			return
		}

		if err := files.Remove(product.Image); err != nil {
			log.Printf("⚠️ Failed to remove image %s: %v", product.Image, err)
		}
		c.Status(http.StatusNoContent)
	}
}
