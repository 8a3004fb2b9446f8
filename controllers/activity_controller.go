package controllers

import (
	"strconv"

	"leadcrm/services"
	"leadcrm/utils"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService *services.ActivityService
}

func NewActivityController() *ActivityController {
	return &ActivityController{
		activityService: services.NewActivityService(),
	}
}

// GetRecent returns the user's latest activities
func (ac *ActivityController) GetRecent(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	activities, err := ac.activityService.GetRecent(user.ID, limit)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get activities")
		return
	}

	utils.SuccessResponse(c, "Activities retrieved successfully", activities)
}
