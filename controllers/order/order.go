package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/middleware"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
	"github.com/shopspring/decimal"
)

// -------- Request Structs --------

type OrderLineInput struct {
	Product  uint             `json:"product" binding:"required"`
	Name     string           `json:"name" binding:"max=255"`
	Price    *decimal.Decimal `json:"price"`
	Quantity int              `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest ignores any "total" sent by the client.
type CreateOrderRequest struct {
	Lines []OrderLineInput `json:"lines" binding:"required,min=1,dive"`
}

func orderError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return apperr.NotFound("product not found")
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("order not found")
	case errors.Is(err, repository.ErrInvalidInput):
		return apperr.Validation(err.Error())
	default:
		return apperr.Internal(err)
	}
}

// -------- Handlers --------

// POST /compras/
func CreateOrder(store *repository.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}

		order := models.Order{CustomerID: &user.ID}
		for _, in := range req.Lines {
			line := models.OrderLine{
				ProductID: in.Product,
				Name:      in.Name,
				Quantity:  in.Quantity,
			}
			if in.Price != nil {
				if err := models.CheckPrice(*in.Price); err != nil {
					apperr.Abort(c, apperr.Validation(err.Error()))
					return
				}
				line.Price = *in.Price
			}
			order.Lines = append(order.Lines, line)
		}

		if err := store.Orders.Create(c.Request.Context(), &order); err != nil {
			apperr.Abort(c, orderError(err))
			return
		}

		dto := serializers.Order(&order)
		log.Printf("🧾 Order %d placed by user %d, total %s", order.ID, user.ID, dto.Total)
		hub.Broadcast(dto)
		c.JSON(http.StatusCreated, dto)
	}
}

// GET /compras/
// Admins see every order, clients only their own.
func ListOrders(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var (
			orders []models.Order
			err    error
		)
		if user.IsAdmin() {
			orders, err = store.Orders.GetAll(c.Request.Context())
		} else {
			orders, err = store.Orders.GetByCustomer(c.Request.Context(), user.ID)
		}
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Orders(orders))
	}
}

// GET /compras/:id/
func GetOrderByID(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperr.Abort(c, apperr.Validation("invalid order id"))
			return
		}

		order, err := store.Orders.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			apperr.Abort(c, orderError(err))
			return
		}
		owner := order.CustomerID != nil && *order.CustomerID == user.ID
		if !owner && !user.IsAdmin() {
			apperr.Abort(c, apperr.NotFound("order not found"))
			return
		}
		c.JSON(http.StatusOK, serializers.Order(order))
	}
}
