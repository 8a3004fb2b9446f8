package routes

import (
	"leadcrm/controllers"
	"leadcrm/middleware"

	"github.com/gin-gonic/gin"
)

func ReminderRoutes(r *gin.RouterGroup) {
	reminderController := controllers.NewReminderController()

	reminders := r.Group("/reminders")
	reminders.Use(middleware.AuthMiddleware())
	{
		reminders.GET("/", reminderController.GetReminders)
		reminders.POST("/", reminderController.CreateReminder)
		reminders.PUT("/:id", reminderController.UpdateReminder)
		reminders.DELETE("/:id", reminderController.DeleteReminder)
		reminders.POST("/:id/complete", reminderController.CompleteReminder)
	}
}
