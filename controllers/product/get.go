package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
)

// GET /productos/:id/
func GetProductByID(store *repository.Store, files *media.Store) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, serializers.Product(product, files))
	}
}
