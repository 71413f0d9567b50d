package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/auth"
)

// SetupAuthRoutes registers registration, login, refresh and logout.
func SetupAuthRoutes(r *gin.Engine, d *Deps) {
	r.POST("/registro/", auth.Register(d.Store.Users, d.Tokens))
	r.POST("/token/", auth.Login(d.Store.Users, d.Tokens))
	r.POST("/token/refresh/", auth.Refresh(d.Store.Users, d.Tokens))
	r.POST("/logout/", auth.Logout(d.Tokens))
}
