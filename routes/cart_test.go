package routes

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/testutil"
)

type cartBody struct {
	Products []struct {
		ID        uint   `json:"id"`
		Product   string `json:"product"`
		Price     string `json:"price"`
		Quantity  int    `json:"quantity"`
		LineTotal string `json:"line_total"`
	} `json:"products"`
	Total string `json:"total"`
}

func (s *APISuite) seedCatalog() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 5, 1)
	testutil.CreateProduct(s.T(), s.db, "Blusa", "12.5", 5, 2)
	testutil.CreateProduct(s.T(), s.db, "Agotado", "8", 0, 2)
	testutil.CreateProduct(s.T(), s.db, "Reloj", "99.999", 1, 3)
	p := testutil.CreateProduct(s.T(), s.db, "Gorra", "20", 10, 3)
	s.Require().Equal(uint(5), p.ID)
}

func (s *APISuite) TestAddSameProductTwiceIncrements() {
	s.seedCatalog()

	w := s.send(http.MethodPost, "/agregar_al_carrito/5/", s.client, nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.EqualValues(1, decode[map[string]interface{}](s, w)["quantity"])

	w = s.send(http.MethodPost, "/agregar_al_carrito/5/", s.client, nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	s.EqualValues(2, decode[map[string]interface{}](s, w)["quantity"])

	w = s.send(http.MethodGet, "/ver-carrito/", s.client, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	cart := decode[cartBody](s, w)
	s.Require().Len(cart.Products, 1)
	s.Equal(uint(5), cart.Products[0].ID)
	s.Equal("Gorra", cart.Products[0].Product)
	s.Equal(2, cart.Products[0].Quantity)
	s.Equal("40.000", cart.Products[0].LineTotal)
	s.Equal("40.000", cart.Total)
}

func (s *APISuite) TestAddToCartErrors() {
	s.seedCatalog()

	w := s.send(http.MethodPost, "/agregar_al_carrito/3/", s.client, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("product out of stock", decode[map[string]string](s, w)["error"])

	w = s.send(http.MethodPost, "/agregar_al_carrito/404/", s.client, nil)
	s.Equal(http.StatusNotFound, w.Code)

	s.Equal(http.StatusBadRequest, s.send(http.MethodPost, "/agregar_al_carrito/1/", s.client, gin.H{"quantity": 0}).Code)

	w = s.send(http.MethodPost, "/agregar_al_carrito/1/", s.client, gin.H{"quantity": 3})
	s.Equal(http.StatusCreated, w.Code)
	s.EqualValues(3, decode[map[string]interface{}](s, w)["quantity"])
}

func (s *APISuite) TestViewCartWithoutCartIsEmpty() {
	w := s.send(http.MethodGet, "/ver-carrito/", s.client, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"products": [], "total": "0.000"}`, w.Body.String())
}

func (s *APISuite) TestUpdateQuantity() {
	s.seedCatalog()

	w := s.send(http.MethodPut, "/actualizar-cantidad-producto/1/", s.client, gin.H{"quantity": 2})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("cart not found", decode[map[string]string](s, w)["error"])

	s.send(http.MethodPost, "/agregar_al_carrito/1/", s.client, nil)

	w = s.send(http.MethodPut, "/actualizar-cantidad-producto/2/", s.client, gin.H{"quantity": 2})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("product not in cart", decode[map[string]string](s, w)["error"])

	for _, body := range []gin.H{{"quantity": 0}, {"quantity": -4}, {}} {
		s.Equal(http.StatusBadRequest, s.send(http.MethodPut, "/actualizar-cantidad-producto/1/", s.client, body).Code, body)
	}

	s.Equal(http.StatusOK, s.send(http.MethodPut, "/actualizar-cantidad-producto/1/", s.client, gin.H{"quantity": 7}).Code)
	cart := decode[cartBody](s, s.send(http.MethodGet, "/ver-carrito/", s.client, nil))
	s.Equal(7, cart.Products[0].Quantity)
	s.Equal("70.000", cart.Total)
}

func (s *APISuite) TestRemoveIsIdempotent() {
	s.seedCatalog()

	// no cart yet
	s.Equal(http.StatusOK, s.send(http.MethodDelete, "/eliminar_del_carrito/1/", s.client, nil).Code)

	s.send(http.MethodPost, "/agregar_al_carrito/1/", s.client, nil)
	s.send(http.MethodPost, "/agregar_al_carrito/2/", s.client, nil)

	s.Equal(http.StatusOK, s.send(http.MethodDelete, "/eliminar_del_carrito/1/", s.client, nil).Code)
	s.Equal(http.StatusOK, s.send(http.MethodDelete, "/eliminar_del_carrito/1/", s.client, nil).Code)

	cart := decode[cartBody](s, s.send(http.MethodGet, "/ver-carrito/", s.client, nil))
	s.Require().Len(cart.Products, 1)
	s.Equal(uint(2), cart.Products[0].ID)

	s.Equal(http.StatusOK, s.send(http.MethodDelete, "/vaciar-carrito/", s.client, nil).Code)
	cart = decode[cartBody](s, s.send(http.MethodGet, "/ver-carrito/", s.client, nil))
	s.Empty(cart.Products)
	s.Equal("0.000", cart.Total)
}

func (s *APISuite) TestCartsArePerUser() {
	s.seedCatalog()

	s.send(http.MethodPost, "/agregar_al_carrito/1/", s.client, nil)
	cart := decode[cartBody](s, s.send(http.MethodGet, "/ver-carrito/", s.admin, nil))
	s.Empty(cart.Products)
}

func (s *APISuite) TestShareCartOnWhatsApp() {
	s.seedCatalog()

	w := s.send(http.MethodGet, "/enviar-carrito/", s.client, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("your cart is empty", decode[map[string]string](s, w)["error"])

	s.send(http.MethodPost, "/agregar_al_carrito/5/", s.client, gin.H{"quantity": 2})
	s.send(http.MethodPost, "/agregar_al_carrito/2/", s.client, nil)

	w = s.send(http.MethodGet, "/enviar-carrito/", s.client, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	link := decode[map[string]string](s, w)["whatsapp_url"]
	s.True(strings.HasPrefix(link, "https://wa.me/3026929375?text="), link)
	s.NotContains(link, "+")

	parsed, err := url.Parse(link)
	s.Require().NoError(err)
	s.Equal("Carrito de compras de client:\n"+
		"- Gorra x 2 = $40.000\n"+
		"- Blusa x 1 = $12.500\n"+
		"Total: $52.500\n"+
		"Confirma tu compra por favor.", parsed.Query().Get("text"))
}
