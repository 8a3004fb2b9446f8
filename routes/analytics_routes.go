package routes

import (
	"leadcrm/controllers"
	"leadcrm/middleware"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.RouterGroup) {
	analyticsController := controllers.NewAnalyticsController()

	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	{
		analytics.GET("/metrics", analyticsController.GetMetrics)
		analytics.GET("/metrics-trends", analyticsController.GetMetricsTrends)
		analytics.GET("/leads-by-status", analyticsController.GetLeadsByStatus)
		analytics.GET("/leads-by-source", analyticsController.GetLeadsBySource)
		analytics.GET("/conversion-trend", analyticsController.GetConversionTrend)
		analytics.GET("/monthly-metrics", analyticsController.GetMonthlyMetrics)
		analytics.GET("/summary", analyticsController.GetSummary)
	}
}
