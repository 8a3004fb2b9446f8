package routes

import (
	"leadcrm/controllers"
	"leadcrm/middleware"

	"github.com/gin-gonic/gin"
)

func ActivityRoutes(r *gin.RouterGroup) {
	activityController := controllers.NewActivityController()

	activities := r.Group("/activities")
	activities.Use(middleware.AuthMiddleware())
	{
		activities.GET("/", activityController.GetRecent)
	}
}
