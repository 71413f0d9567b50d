package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/mayra-Sanchez/wm-backend/controllers/cart"
	userControllers "github.com/mayra-Sanchez/wm-backend/controllers/user"
)

// SetupUserRoutes registers the cart and profile endpoints. Requires JWT.
func SetupUserRoutes(r *gin.Engine, d *Deps) {
	userGroup := r.Group("/")
	userGroup.Use(d.authRequired())
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/usuario_detalle/", userControllers.GetCurrentUser())

		// ──────────────── Shopping Cart ────────────────
		userGroup.POST("/agregar_al_carrito/:product_id/", cartControllers.AddToCart(d.Store))
		userGroup.GET("/ver-carrito/", cartControllers.ViewCart(d.Store))
		userGroup.PUT("/actualizar-cantidad-producto/:product_id/", cartControllers.UpdateCartQuantity(d.Store))
		userGroup.DELETE("/eliminar_del_carrito/:product_id/", cartControllers.RemoveFromCart(d.Store))
		userGroup.DELETE("/vaciar-carrito/", cartControllers.ClearCart(d.Store))
		userGroup.GET("/enviar-carrito/", cartControllers.ShareCart(d.Store, d.Config.WhatsAppPhone))
	}
}
