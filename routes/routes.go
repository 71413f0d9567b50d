package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/auth"
	"github.com/mayra-Sanchez/wm-backend/config"
	orderControllers "github.com/mayra-Sanchez/wm-backend/controllers/order"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/middleware"
	"github.com/mayra-Sanchez/wm-backend/repository"
)

// Deps carries everything the handlers need.
type Deps struct {
	Config *config.Config
	Store  *repository.Store
	Tokens *auth.TokenService
	Media  *media.Store
	Hub    *orderControllers.Hub
}

func (d *Deps) authRequired() gin.HandlerFunc {
	return middleware.ValidateToken(d.Tokens, d.Store.Users)
}

// NewRouter builds the gin engine with CORS, static media and every route group.
func NewRouter(d *Deps) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(d.Config.CORSOrigins) == 0 || d.Config.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = d.Config.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Serve uploaded images
	mediaPrefix := "/" + strings.Trim(d.Config.MediaURL, "/")
	if !strings.Contains(d.Config.MediaURL, "://") && mediaPrefix != "/" {
		r.StaticFS(mediaPrefix, http.Dir(d.Config.MediaRoot))
	}

	SetupRoutes(r, d)
	return r
}

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, d *Deps) {
	middleware.RegisterValidators()

	// 1️⃣ Public auth routes
	SetupAuthRoutes(r, d)

	// 2️⃣ Catalog reads and categories (no auth)
	SetupCatalogRoutes(r, d)

	// 3️⃣ Cart and profile (JWT)
	SetupUserRoutes(r, d)

	// 4️⃣ Catalog writes and user management (JWT + admin role)
	SetupAdminRoutes(r, d)

	// order routes
	SetupOrderRoutes(r, d)
}
