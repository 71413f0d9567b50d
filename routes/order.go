package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/mayra-Sanchez/wm-backend/controllers/order"
	"github.com/mayra-Sanchez/wm-backend/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d *Deps) {
	orders := r.Group("/compras")
	orders.Use(d.authRequired())
	{
		orders.POST("/", orderControllers.CreateOrder(d.Store, d.Hub))
		orders.GET("/", orderControllers.ListOrders(d.Store))

		// websocket endpoint for real-time order updates (admin)
		orders.GET("/ws/", middleware.RequireAdmin(), orderControllers.OrderWebSocketHandler(d.Hub))

		orders.GET("/:id/", orderControllers.GetOrderByID(d.Store))
	}
}
