package routes

import (
	"leadcrm/controllers"
	"leadcrm/middleware"

	"github.com/gin-gonic/gin"
)

func LeadRoutes(r *gin.RouterGroup) {
	leadController := controllers.NewLeadController()

	leads := r.Group("/leads")
	leads.Use(middleware.AuthMiddleware())
	{
		// Lead CRUD operations
		leads.GET("/", leadController.GetLeads)
		leads.GET("/:id", leadController.GetLead)
		leads.POST("/", leadController.CreateLead)
		leads.PUT("/:id", leadController.UpdateLead)
		leads.DELETE("/:id", leadController.DeleteLead)

		// CSV export
		leads.GET("/export/csv", middleware.ExportRateLimitMiddleware(), leadController.ExportCSV)

		// Notes
		leads.GET("/:id/notes", leadController.GetNotes)
		leads.POST("/:id/notes", leadController.AddNote)
	}
}
