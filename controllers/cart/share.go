package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/middleware"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
)

const whatsappBaseURL = "https://wa.me/"

// CartSummary renders the message sent to the store's WhatsApp contact.
func CartSummary(username string, cart *models.Cart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Carrito de compras de %s:\n", username)
	for _, line := range cart.Lines {
		fmt.Fprintf(&b, "- %s x %d = $%s\n", line.Product.Name, line.Quantity, line.LineTotal().StringFixed(3))
	}
	fmt.Fprintf(&b, "Total: $%s\n", cart.Total().StringFixed(3))
	b.WriteString("Confirma tu compra por favor.")
	return b.String()
}

// WhatsAppURL builds a wa.me deep link with the message as pre-filled text.
func WhatsAppURL(phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsappBaseURL + phone + "?text=" + text
}

// GET /enviar-carrito/
func ShareCart(store *repository.Store, phone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		cart, err := store.Carts.FindByOwner(c.Request.Context(), user.ID)
		if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		if cart == nil || len(cart.Lines) == 0 {
			apperr.Abort(c, apperr.Validation("your cart is empty"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"whatsapp_url": WhatsAppURL(phone, CartSummary(user.Username, cart)),
		})
	}
}
