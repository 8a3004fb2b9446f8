package controllers

import (
	"errors"
	"fmt"
	"time"

	"leadcrm/models"
	"leadcrm/services"
	"leadcrm/utils"

	"github.com/gin-gonic/gin"
)

type LeadController struct {
	leadService *services.LeadService
	noteService *services.NoteService
}

func NewLeadController() *LeadController {
	return &LeadController{
		leadService: services.NewLeadService(),
		noteService: services.NewNoteService(),
	}
}

// GetLeads returns a filtered, paginated list of the user's leads
func (lc *LeadController) GetLeads(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	filters := &services.LeadFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Source: c.Query("source"),
		Page:   page,
		Limit:  limit,
	}

	if start := c.Query("startDate"); start != "" {
		if t, err := time.Parse("2006-01-02", start); err == nil {
			filters.StartDate = &t
		}
	}
	if end := c.Query("endDate"); end != "" {
		if t, err := time.Parse("2006-01-02", end); err == nil {
			endOfDay := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			filters.EndDate = &endOfDay
		}
	}

	result, err := lc.leadService.GetLeads(user.ID, filters)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to get leads")
		return
	}

	utils.PaginatedResponse(c, "Leads retrieved successfully", result.Leads, page, limit, int(result.Total))
}

// GetLead returns a single lead with its notes, activities and reminders
func (lc *LeadController) GetLead(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	leadID := c.Param("id")
	if !utils.IsValidObjectID(leadID) {
		utils.BadRequestResponse(c, "Invalid lead ID")
		return
	}

	objID, _ := utils.StringToObjectID(leadID)
	detail, err := lc.leadService.GetLeadByID(objID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.NotFoundResponse(c, "Lead not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get lead")
		return
	}

	utils.SuccessResponse(c, "Lead retrieved successfully", detail)
}

// CreateLead creates a new lead
func (lc *LeadController) CreateLead(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	lead, err := lc.leadService.CreateLead(user.ID, &req)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create lead")
		return
	}

	utils.CreatedResponse(c, "Lead created successfully", lead)
}

// UpdateLead applies a partial update to a lead
func (lc *LeadController) UpdateLead(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	leadID := c.Param("id")
	if !utils.IsValidObjectID(leadID) {
		utils.BadRequestResponse(c, "Invalid lead ID")
		return
	}

	var req models.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	objID, _ := utils.StringToObjectID(leadID)
	lead, err := lc.leadService.UpdateLead(objID, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.NotFoundResponse(c, "Lead not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update lead")
		return
	}

	utils.SuccessResponse(c, "Lead updated successfully", lead)
}

// DeleteLead removes a lead and all its attached records
func (lc *LeadController) DeleteLead(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	leadID := c.Param("id")
	if !utils.IsValidObjectID(leadID) {
		utils.BadRequestResponse(c, "Invalid lead ID")
		return
	}

	objID, _ := utils.StringToObjectID(leadID)
	if err := lc.leadService.DeleteLead(objID, user.ID); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.NotFoundResponse(c, "Lead not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete lead")
		return
	}

	utils.SuccessResponse(c, "Lead deleted successfully", nil)
}

// ExportCSV streams all of the user's leads as a CSV file
func (lc *LeadController) ExportCSV(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	leads, err := lc.leadService.ExportLeads(user.ID)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to export leads")
		return
	}

	data, err := services.BuildLeadsCSV(leads)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to build export")
		return
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", data)
}

// AddNote attaches a note to a lead
func (lc *LeadController) AddNote(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	leadID := c.Param("id")
	if !utils.IsValidObjectID(leadID) {
		utils.BadRequestResponse(c, "Invalid lead ID")
		return
	}

	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	objID, _ := utils.StringToObjectID(leadID)
	note, err := lc.noteService.AddNote(objID, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.NotFoundResponse(c, "Lead not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create note")
		return
	}

	utils.CreatedResponse(c, "Note added successfully", note)
}

// GetNotes returns all notes for a lead
func (lc *LeadController) GetNotes(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	leadID := c.Param("id")
	if !utils.IsValidObjectID(leadID) {
		utils.BadRequestResponse(c, "Invalid lead ID")
		return
	}

	objID, _ := utils.StringToObjectID(leadID)
	notes, err := lc.noteService.GetNotes(objID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.NotFoundResponse(c, "Lead not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get notes")
		return
	}

	utils.SuccessResponse(c, "Notes retrieved successfully", notes)
}
