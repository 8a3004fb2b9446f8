package controllers

import (
	"strconv"

	"leadcrm/services"
	"leadcrm/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{
		analyticsService: services.NewAnalyticsService(),
	}
}

// GetMetrics returns the four headline lead counters
func (ac *AnalyticsController) GetMetrics(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	metrics, err := ac.analyticsService.GetLeadMetrics(user.ID)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get metrics")
		return
	}

	utils.SuccessResponse(c, "Metrics retrieved successfully", metrics)
}

// GetMetricsTrends returns period-over-period percentage changes
func (ac *AnalyticsController) GetMetricsTrends(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	trends, err := ac.analyticsService.GetMetricsTrends(user.ID)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get metric trends")
		return
	}

	utils.SuccessResponse(c, "Metric trends retrieved successfully", trends)
}

// GetLeadsByStatus returns lead counts grouped by status, optionally
// filtered by period (today, week, month)
func (ac *AnalyticsController) GetLeadsByStatus(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	counts, err := ac.analyticsService.GetLeadsByStatus(user.ID, c.Query("period"))
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get leads by status")
		return
	}

	utils.SuccessResponse(c, "Leads by status retrieved successfully", counts)
}

// GetLeadsBySource returns lead counts grouped by source, optionally
// filtered by period (today, week, month)
func (ac *AnalyticsController) GetLeadsBySource(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	counts, err := ac.analyticsService.GetLeadsBySource(user.ID, c.Query("period"))
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get leads by source")
		return
	}

	utils.SuccessResponse(c, "Leads by source retrieved successfully", counts)
}

// GetConversionTrend returns daily conversion counts over the last N days
func (ac *AnalyticsController) GetConversionTrend(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	points, err := ac.analyticsService.GetConversionTrend(user.ID, days)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get conversion trend")
		return
	}

	utils.SuccessResponse(c, "Conversion trend retrieved successfully", points)
}

// GetMonthlyMetrics returns the month-scoped dashboard counters
func (ac *AnalyticsController) GetMonthlyMetrics(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	metrics, err := ac.analyticsService.GetMonthlyMetrics(user.ID)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get monthly metrics")
		return
	}

	utils.SuccessResponse(c, "Monthly metrics retrieved successfully", metrics)
}

// GetSummary returns headline metrics plus all-time status and source
// breakdowns in a single response
func (ac *AnalyticsController) GetSummary(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	summary, err := ac.analyticsService.GetSummary(user.ID)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get analytics summary")
		return
	}

	utils.SuccessResponse(c, "Analytics summary retrieved successfully", summary)
}
