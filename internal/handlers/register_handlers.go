package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/mugishaeric/finance_tracker_app/internal/core/ports/services"
	"github.com/mugishaeric/finance_tracker_app/internal/middleware"
	"github.com/mugishaeric/finance_tracker_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.RateLimitPerMinute,
	}
	limiterInstance := limiter.New(memorystore.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction)
}
