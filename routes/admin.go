package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/mayra-Sanchez/wm-backend/controllers/product"
	userControllers "github.com/mayra-Sanchez/wm-backend/controllers/user"
	"github.com/mayra-Sanchez/wm-backend/middleware"
)

// SetupAdminRoutes registers catalog writes and user listing. Requires an admin JWT.
func SetupAdminRoutes(r *gin.Engine, d *Deps) {
	adminGroup := r.Group("/")
	adminGroup.Use(d.authRequired(), middleware.RequireAdmin())
	{
		// ─────────── Product Management ───────────
		adminGroup.POST("/productos/", productcontroller.CreateProduct(d.Store, d.Media))
		adminGroup.PUT("/productos/:id/", productcontroller.UpdateProduct(d.Store, d.Media))
		adminGroup.PATCH("/productos/:id/", productcontroller.UpdateProduct(d.Store, d.Media))
		adminGroup.DELETE("/productos/:id/", productcontroller.DeleteProduct(d.Store, d.Media))
		adminGroup.GET("/productos-excel/", productcontroller.ExportProductsToExcel(d.Store))
		adminGroup.POST("/productos-excel/", productcontroller.ImportProductsFromExcel(d.Store))

		// ─────────── User Management ───────────
		adminGroup.GET("/usuarios/", userControllers.GetAllUsers(d.Store))
		adminGroup.GET("/usuarios/:id/", userControllers.GetUserByID(d.Store))
	}
}
