package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS and all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/rates", h.GetRates)
		api.GET("/rates/history", h.GetRateHistory)
		api.GET("/rates/uf/:date", h.GetHistoricalUF)
		api.GET("/communes", h.GetCommunes)

		api.POST("/analyze", h.Analyze)
		api.POST("/amortization", h.Amortization)
		api.POST("/projection", h.Projection)
		api.POST("/market-report", h.MarketReport)
		api.POST("/report", h.CombinedReport)
	}

	return router
}
