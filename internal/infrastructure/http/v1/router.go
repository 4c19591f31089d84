// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/ingestion"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/internal/domain/reports"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/handlers"
	"github.com/techbytecraft/QSR/internal/infrastructure/http/v1/middleware"
	"github.com/techbytecraft/QSR/internal/insight"
	"github.com/techbytecraft/QSR/pkg/logger"
)

// RouterConfig holds everything the router wires together.
type RouterConfig struct {
	// Store owns restaurant snapshots and all mutations to them.
	Store *restaurant.Store

	// Logger for request logging.
	Logger *logger.Logger

	// DB reports storage connectivity for readiness; nil for in-memory.
	DB handlers.Pinger

	// Insights generates analyses; required (may run disabled).
	Insights *insight.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	inventoryService := inventory.NewService(cfg.Store)
	dishService := dish.NewService(cfg.Store)
	ingestionService := ingestion.NewService(inventoryService)
	reportsService := reports.NewService(cfg.Store)

	restaurantHandler := handlers.NewRestaurantHandler(base, cfg.Store, reportsService)
	inventoryHandler := handlers.NewInventoryHandler(base, inventoryService, ingestionService)
	dishHandler := handlers.NewDishHandler(base, dishService, cfg.Store)
	insightHandler := handlers.NewInsightHandler(base, cfg.Insights, ingestionService)

	api := router.Group("/api/v1")
	{
		api.GET("/restaurants", restaurantHandler.List)

		r := api.Group("/restaurants/:rid")
		{
			r.GET("", restaurantHandler.Get)
			r.GET("/stats", restaurantHandler.Stats)
			r.GET("/forecast", restaurantHandler.Forecast)

			r.GET("/inventory", inventoryHandler.List)
			r.POST("/inventory", inventoryHandler.Add)
			r.DELETE("/inventory/:iid", inventoryHandler.Delete)
			r.POST("/inventory/bulk", inventoryHandler.BulkAdd)

			r.GET("/dishes", dishHandler.List)
			r.GET("/dishes/:did", dishHandler.Get)
			r.GET("/dishes/:did/cost", dishHandler.Cost)
			r.GET("/dishes/:did/breakdown", dishHandler.Breakdown)
			r.POST("/dishes/:did/ingredients", dishHandler.AddIngredient)
			r.DELETE("/dishes/:did/ingredients/:iid", dishHandler.RemoveIngredient)

			r.GET("/tasks", restaurantHandler.ListTasks)
			r.POST("/tasks", restaurantHandler.AddTask)
			r.PATCH("/tasks/:tid", restaurantHandler.ToggleTask)
			r.DELETE("/tasks/:tid", restaurantHandler.DeleteTask)

			r.POST("/insights/costs", insightHandler.Costs)
			r.POST("/insights/forecast", insightHandler.Forecast)
			r.POST("/insights/report", insightHandler.Report)
			r.POST("/invoice/parse", insightHandler.ParseInvoice)
		}
	}

	return router
}
