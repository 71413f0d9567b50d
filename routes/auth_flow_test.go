package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/auth"
)

func (s *APISuite) TestRegisterLoginRefreshLogout() {
	w := s.send(http.MethodPost, "/registro/", nil, gin.H{
		"email": "nuevo@example.com", "password": "clave-segura", "username": "nuevo",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	reg := decode[map[string]string](s, w)
	s.Equal("client", reg["role"])
	s.Equal("nuevo", reg["username"])

	w = s.send(http.MethodPost, "/token/", nil, gin.H{"email": "nuevo@example.com", "password": "mala"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.send(http.MethodPost, "/token/", nil, gin.H{"email": "nuevo@example.com", "password": "clave-segura"})
	s.Require().Equal(http.StatusOK, w.Code)
	pair := decode[map[string]string](s, w)

	claims, err := s.tokens.Parse(pair["access"], auth.AccessToken)
	s.Require().NoError(err)
	s.Equal("client", claims.Role)
	s.Equal("nuevo", claims.Username)

	// the fresh access token works on a protected route
	w = s.sendToken(http.MethodGet, "/usuario_detalle/", pair["access"])
	s.Equal(http.StatusOK, w.Code)
	s.Equal("nuevo", decode[map[string]interface{}](s, w)["username"])

	w = s.send(http.MethodPost, "/token/refresh/", nil, gin.H{"refresh": pair["refresh"]})
	s.Equal(http.StatusOK, w.Code)

	w = s.send(http.MethodPost, "/logout/", nil, gin.H{"refresh": pair["refresh"]})
	s.Equal(http.StatusOK, w.Code)

	w = s.send(http.MethodPost, "/token/refresh/", nil, gin.H{"refresh": pair["refresh"]})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestProtectedRoutesNeedToken() {
	for _, path := range []string{"/ver-carrito/", "/enviar-carrito/", "/usuario_detalle/", "/compras/"} {
		w := s.send(http.MethodGet, path, nil, nil)
		s.Equal(http.StatusUnauthorized, w.Code, path)
		s.Contains(w.Body.String(), `"error"`)
	}
}

func (s *APISuite) TestUserEndpoints() {
	w := s.send(http.MethodGet, "/usuario_detalle/", s.client, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	me := decode[map[string]interface{}](s, w)
	s.Equal("client@example.com", me["email"])
	s.NotContains(w.Body.String(), "password")

	s.Equal(http.StatusForbidden, s.send(http.MethodGet, "/usuarios/", s.client, nil).Code)

	w = s.send(http.MethodGet, "/usuarios/", s.admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(decode[[]map[string]interface{}](s, w), 2)

	w = s.send(http.MethodGet, "/usuarios/2/", s.admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("client", decode[map[string]interface{}](s, w)["username"])

	s.Equal(http.StatusNotFound, s.send(http.MethodGet, "/usuarios/99/", s.admin, nil).Code)
}
