package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/handler"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/middleware"
	"github.com/tillpoint/tillpoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Branch   *handler.BranchHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		sales := protected.Group("/sales")
		{
			sales.POST("", h.Sale.Create)
			sales.GET("", h.Sale.List)
			sales.GET("/:id", h.Sale.Get)
			sales.GET("/:id/receipt", h.Sale.Receipt)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/dashboard", h.Report.Dashboard)
			reports.GET("/daily-summary", h.Report.DailySummary)
			reports.GET("/weekly", h.Report.Weekly)
			reports.GET("/weekly-summary", h.Report.WeeklySummary)
			reports.GET("/weekly-summary/export", h.Report.WeeklySummaryExport)
			reports.GET("/weekly/csv", h.Report.WeeklyCSV)
			reports.GET("/weekly/pdf", h.Report.WeeklyPDF)
			reports.GET("/daily/pdf", h.Report.DailyPDF)
		}

		// Business management is closed to cashiers
		manage := protected.Group("")
		manage.Use(middleware.RequireRole(enum.RoleOwner, enum.RoleAdmin))
		{
			manage.GET("/settings", h.Settings.Get)
			manage.PUT("/settings", h.Settings.Update)
			manage.PATCH("/settings", h.Settings.Update)

			manage.GET("/branches", h.Branch.List)
			manage.POST("/branches", h.Branch.Create)
			manage.PATCH("/branches/:id", h.Branch.Update)
		}
	}

	return router
}
