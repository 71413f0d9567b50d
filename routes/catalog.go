package routes

import (
	"github.com/gin-gonic/gin"
	categorycontroller "github.com/mayra-Sanchez/wm-backend/controllers/category"
	productcontroller "github.com/mayra-Sanchez/wm-backend/controllers/product"
)

// SetupCatalogRoutes registers the public product reads and category CRUD.
func SetupCatalogRoutes(r *gin.Engine, d *Deps) {
	r.GET("/productos/", productcontroller.GetProducts(d.Store, d.Media))
	r.GET("/productos/:id/", productcontroller.GetProductByID(d.Store, d.Media))

	categories := r.Group("/categorias")
	{
		categories.GET("/", categorycontroller.GetCategories(d.Store))
		categories.POST("/", categorycontroller.CreateCategory(d.Store))
		categories.GET("/:id/", categorycontroller.GetCategoryByID(d.Store))
		categories.PUT("/:id/", categorycontroller.UpdateCategory(d.Store))
		categories.DELETE("/:id/", categorycontroller.DeleteCategory(d.Store))
	}
}
