package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
)

// GET /productos/?category=<id>
func GetProducts(store *repository.Store, files *media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("category")
		if raw == "" {
			raw = c.Query("categoria")
		}

		var categoryID *uint
		if raw != "" {
			cid, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apperr.Abort(c, apperr.Validation("invalid category"))
				return
			}
			id := uint(cid)
			categoryID = &id
		}

		products, err := store.Products.GetAll(c.Request.Context(), categoryID)
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Products(products, files))
	}
}
