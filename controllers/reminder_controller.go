package controllers

import (
	"errors"
	"time"

	"leadcrm/models"
	"leadcrm/services"
	"leadcrm/utils"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	reminderService *services.ReminderService
}

func NewReminderController() *ReminderController {
	return &ReminderController{
		reminderService: services.NewReminderService(),
	}
}

// GetReminders lists the user's reminders sorted by due date
func (rc *ReminderController) GetReminders(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	filters := &services.ReminderFilters{
		Overdue: c.Query("overdue") == "true",
	}
	if date := c.Query("date"); date != "" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			filters.Date = &t
		}
	}
	if completed := c.Query("completed"); completed != "" {
		value := completed == "true"
		filters.Completed = &value
	}

	reminders, err := rc.reminderService.GetReminders(user.ID, filters)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get reminders")
		return
	}

	utils.SuccessResponse(c, "Reminders retrieved successfully", reminders)
}

// CreateReminder attaches a reminder to a lead
func (rc *ReminderController) CreateReminder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	reminder, err := rc.reminderService.CreateReminder(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.NotFoundResponse(c, "Lead not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create reminder")
		return
	}

	utils.CreatedResponse(c, "Reminder created successfully", reminder)
}

// UpdateReminder applies a partial update to a reminder
func (rc *ReminderController) UpdateReminder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	reminderID := c.Param("id")
	if !utils.IsValidObjectID(reminderID) {
		utils.BadRequestResponse(c, "Invalid reminder ID")
		return
	}

	var req models.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	objID, _ := utils.StringToObjectID(reminderID)
	reminder, err := rc.reminderService.UpdateReminder(objID, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrReminderNotFound) {
			utils.NotFoundResponse(c, "Reminder not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update reminder")
		return
	}

	utils.SuccessResponse(c, "Reminder updated successfully", reminder)
}

// CompleteReminder marks a reminder as done
func (rc *ReminderController) CompleteReminder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	reminderID := c.Param("id")
	if !utils.IsValidObjectID(reminderID) {
		utils.BadRequestResponse(c, "Invalid reminder ID")
		return
	}

	objID, _ := utils.StringToObjectID(reminderID)
	reminder, err := rc.reminderService.CompleteReminder(objID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrReminderNotFound) {
			utils.NotFoundResponse(c, "Reminder not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to complete reminder")
		return
	}

	utils.SuccessResponse(c, "Reminder completed successfully", reminder)
}

// DeleteReminder removes a reminder
func (rc *ReminderController) DeleteReminder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	reminderID := c.Param("id")
	if !utils.IsValidObjectID(reminderID) {
		utils.BadRequestResponse(c, "Invalid reminder ID")
		return
	}

	objID, _ := utils.StringToObjectID(reminderID)
	if err := rc.reminderService.DeleteReminder(objID, user.ID); err != nil {
		if errors.Is(err, services.ErrReminderNotFound) {
			utils.NotFoundResponse(c, "Reminder not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete reminder")
		return
	}

	utils.SuccessResponse(c, "Reminder deleted successfully", nil)
}
