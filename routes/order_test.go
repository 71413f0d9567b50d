package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/testutil"
)

type orderBody struct {
	ID       uint   `json:"id"`
	Customer *uint  `json:"customer"`
	Total    string `json:"total"`
	Lines    []struct {
		Product  uint   `json:"product"`
		Name     string `json:"name"`
		Price    string `json:"price"`
		Quantity int    `json:"quantity"`
	} `json:"lines"`
}

func (s *APISuite) TestCreateOrderComputesTotal() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10.5", 3, 1)
	testutil.CreateProduct(s.T(), s.db, "Cinturon", "5.25", 3, 3)

	w := s.send(http.MethodPost, "/compras/", s.client, gin.H{
		"total": "999.99",
		"lines": []gin.H{
			{"product": 1, "quantity": 2},
			{"product": 2, "name": "Cinturon cuero", "price": "5.25", "quantity": 1},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	order := decode[orderBody](s, w)
	s.Equal("26.25", order.Total)
	s.Require().NotNil(order.Customer)
	s.Equal(s.client.ID, *order.Customer)
	s.Require().Len(order.Lines, 2)
	s.Equal("Camisa", order.Lines[0].Name)
	s.Equal("10.500", order.Lines[0].Price)
	s.Equal("Cinturon cuero", order.Lines[1].Name)

	// later product edits do not touch the snapshot
	s.Require().NoError(s.db.Model(&models.Product{}).Where("id = ?", 1).Update("price", "99").Error)
	w = s.send(http.MethodGet, "/compras/1/", s.client, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	again := decode[orderBody](s, w)
	s.Equal("26.25", again.Total)
	s.Equal("10.500", again.Lines[0].Price)
}

func (s *APISuite) TestCreateOrderRollsBackOnUnknownProduct() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 3, 1)

	w := s.send(http.MethodPost, "/compras/", s.client, gin.H{
		"lines": []gin.H{{"product": 1, "quantity": 1}, {"product": 999, "quantity": 1}},
	})
	s.Equal(http.StatusNotFound, w.Code)

	var orders, lines int64
	s.db.Model(&models.Order{}).Count(&orders)
	s.db.Model(&models.OrderLine{}).Count(&lines)
	s.Zero(orders)
	s.Zero(lines)
}

func (s *APISuite) TestCreateOrderValidation() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 3, 1)

	for _, body := range []gin.H{
		{},
		{"lines": []gin.H{}},
		{"lines": []gin.H{{"product": 1, "quantity": 0}}},
		{"lines": []gin.H{{"quantity": 1}}},
		{"lines": []gin.H{{"product": 1, "price": "0.0049", "quantity": 1}}},
		{"lines": []gin.H{{"product": 1, "price": "-2", "quantity": 1}}},
		{"lines": []gin.H{{"product": 1, "price": "10000000", "quantity": 1}}},
	} {
		s.Equal(http.StatusBadRequest, s.send(http.MethodPost, "/compras/", s.client, body).Code, body)
	}

	var orders int64
	s.db.Model(&models.Order{}).Count(&orders)
	s.Zero(orders)
}

func (s *APISuite) TestOrderVisibility() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 3, 1)
	other := testutil.CreateUser(s.T(), s.db, "otro", models.RoleClient)

	line := gin.H{"lines": []gin.H{{"product": 1, "quantity": 1}}}
	s.Require().Equal(http.StatusCreated, s.send(http.MethodPost, "/compras/", s.client, line).Code)
	s.Require().Equal(http.StatusCreated, s.send(http.MethodPost, "/compras/", other, line).Code)

	s.Len(decode[[]orderBody](s, s.send(http.MethodGet, "/compras/", s.client, nil)), 1)
	s.Len(decode[[]orderBody](s, s.send(http.MethodGet, "/compras/", s.admin, nil)), 2)

	s.Equal(http.StatusNotFound, s.send(http.MethodGet, "/compras/2/", s.client, nil).Code)
	s.Equal(http.StatusOK, s.send(http.MethodGet, "/compras/2/", other, nil).Code)
	s.Equal(http.StatusOK, s.send(http.MethodGet, "/compras/2/", s.admin, nil).Code)
	s.Equal(http.StatusNotFound, s.send(http.MethodGet, "/compras/42/", s.admin, nil).Code)
}

func (s *APISuite) TestOrderFeedWebSocket() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 3, 1)

	srv := httptest.NewServer(s.router)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/compras/ws/"

	header := http.Header{}
	header.Set("Authorization", "Bearer "+s.token(s.client))
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	s.Require().Error(err)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	header.Set("Authorization", "Bearer "+s.token(s.admin))
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	s.Require().NoError(err)
	defer conn.Close()

	s.Require().Eventually(func() bool { return s.hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	w := s.send(http.MethodPost, "/compras/", s.client, gin.H{"lines": []gin.H{{"product": 1, "quantity": 2}}})
	s.Require().Equal(http.StatusCreated, w.Code)

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, data, err := conn.ReadMessage()
	s.Require().NoError(err)

	var pushed orderBody
	s.Require().NoError(json.Unmarshal(data, &pushed))
	s.Equal("20.00", pushed.Total)
	s.Equal(uint(1), pushed.ID)
}
