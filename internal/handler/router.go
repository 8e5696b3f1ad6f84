package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"badge-promotion-engine/internal/handler/api"
	"badge-promotion-engine/internal/handler/middleware"
	"badge-promotion-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Promotion      *api.PromotionHandler
	PromotionBadge *api.PromotionBadgeHandler
	Validation     *api.ValidationHandler
	Health         *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	promotions := engine.Group("/promotions")
	promotions.Use(authMiddleware.RequireAuth())
	{
		addRoutes(promotions, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Promotion.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete},

			{Method: http.MethodPost, Path: "/:id/badges", Handler: h.PromotionBadge.Add},
			{Method: http.MethodDelete, Path: "/:id/badges", Handler: h.PromotionBadge.Remove},
			{Method: http.MethodGet, Path: "/:id/validation", Handler: h.Validation.Get},

			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Promotion.Submit},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Promotion.Approve, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Promotion.Reject, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
