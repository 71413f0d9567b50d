package cartControllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/middleware"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/mayra-Sanchez/wm-backend/serializers"
)

type AddToCartInput struct {
	Quantity *int `json:"quantity" binding:"omitempty,min=1"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func productIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid product id")
	}
	return uint(id), nil
}

func cartError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return apperr.NotFound("product not found")
	case errors.Is(err, repository.ErrCartNotFound):
		return apperr.NotFound("cart not found")
	case errors.Is(err, repository.ErrLineNotFound):
		return apperr.NotFound("product not in cart")
	case errors.Is(err, repository.ErrInvalidInput):
		return apperr.Validation(err.Error())
	default:
		return apperr.Internal(err)
	}
}

// POST /agregar_al_carrito/:product_id/
// Adding a product already in the cart increments its quantity.
func AddToCart(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, err := productIDParam(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		ctx := c.Request.Context()
		product, err := store.Products.GetByID(ctx, productID)
		if err != nil {
			apperr.Abort(c, cartError(err))
			return
		}
		if product.Stock <= 0 {
			apperr.Abort(c, apperr.Validation("product out of stock"))
			return
		}

		cart, err := store.Carts.GetOrCreate(ctx, user.ID)
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		line, err := store.Carts.UpsertLine(ctx, cart.ID, product.ID, quantity)
		if err != nil {
			apperr.Abort(c, cartError(err))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "product added to cart",
			"product_id": product.ID,
			"quantity":   line.Quantity,
		})
	}
}

// GET /ver-carrito/
// A user without a cart sees an empty one.
func ViewCart(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		cart, err := store.Carts.FindByOwner(c.Request.Context(), user.ID)
		if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, serializers.Cart(cart))
	}
}

// PUT /actualizar-cantidad-producto/:product_id/
func UpdateCartQuantity(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, err := productIDParam(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || *input.Quantity <= 0 {
			apperr.Abort(c, apperr.Validation("invalid quantity"))
			return
		}

		if err := store.Carts.SetLineQuantity(c.Request.Context(), user.ID, productID, *input.Quantity); err != nil {
			apperr.Abort(c, cartError(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "cart quantity updated",
			"product_id": productID,
			"quantity":   *input.Quantity,
		})
	}
}

// DELETE /eliminar_del_carrito/:product_id/
func RemoveFromCart(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, err := productIDParam(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}

		if err := store.Carts.RemoveLine(c.Request.Context(), user.ID, productID); err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product removed from cart"})
	}
}

// DELETE /vaciar-carrito/
func ClearCart(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		if err := store.Carts.Clear(c.Request.Context(), user.ID); err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
