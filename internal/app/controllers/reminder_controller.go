package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/models/dto"
	"github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/middleware"
)

// ReminderController handles reminder-related operations
type ReminderController struct {
	reminderService services.ReminderService
}

// NewReminderController creates a new ReminderController
func NewReminderController(reminderService services.ReminderService) *ReminderController {
	return &ReminderController{
		reminderService: reminderService,
	}
}

// GetAllReminders lists every reminder
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Success 200 {array} models.Reminder
// @Router /reminder [get]
func (c *ReminderController) GetAllReminders(ctx *gin.Context) {
	reminders, err := c.reminderService.GetAllReminders(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reminders)
}

// GetRemindersBySubject lists a subject's reminders
// @Summary List reminders under a subject
// @Tags reminders
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {array} models.Reminder
// @Router /subject/{id}/reminders [get]
func (c *ReminderController) GetRemindersBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	reminders, err := c.reminderService.GetRemindersBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reminders)
}

// CreateReminder creates a reminder under a subject
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body dto.CreateReminderRequest true "Reminder fields"
// @Success 201 {object} models.Reminder
// @Failure 400 {object} dto.ErrorResponse
// @Router /subject/{id}/reminders [post]
func (c *ReminderController) CreateReminder(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	reminder, err := c.reminderService.CreateReminder(ctx, subjectID, req.Message, req.RemindAt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, reminder)
}

// DeleteReminder removes a reminder
// @Summary Delete a reminder
// @Tags reminders
// @Param id path int true "Reminder ID"
// @Success 204 "No content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /reminder/{id} [delete]
func (c *ReminderController) DeleteReminder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "reminder")
	if !ok {
		return
	}

	if err := c.reminderService.DeleteReminder(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
