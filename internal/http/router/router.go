package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/ignatzorin/granada-backend/internal/config"
	"github.com/ignatzorin/granada-backend/internal/http/handlers"
	"github.com/ignatzorin/granada-backend/internal/http/middleware"
)

// SetupRouter собирает gin.Engine со всеми маршрутами и общими middleware.
func SetupRouter(
	cfg *config.Config,
	authenticator middleware.Authenticator,
	limiterStore limiter.Store,
	authHandler *handlers.AuthHandler,
	proposalHandler *handlers.ProposalHandler,
	donorCallHandler *handlers.DonorCallHandler,
	planningHandler *handlers.PlanningHandler,
	exportHandler *handlers.ExportHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	// Регистрация и логин ограничены по IP
	authGroup := r.Group("/")
	authGroup.Use(middleware.RateLimitMiddleware(limiterStore, cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Публичные маршруты
	r.POST("/donor_calls", donorCallHandler.Create)
	r.GET("/donor_calls", donorCallHandler.List)
	r.POST("/match_donors", donorCallHandler.Match)
	r.POST("/logframe", planningHandler.Logframe)
	r.POST("/budget", planningHandler.Budget)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(authenticator))
	{
		protected.POST("/proposal", proposalHandler.Generate)
		protected.GET("/proposals/my", proposalHandler.ListMine)
		protected.GET("/export/:proposal_id", middleware.IDValidator("proposal_id"), exportHandler.Export)
	}

	return r
}
