package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/models/dto"
	"github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/middleware"
)

// AnnouncementController handles announcement and comment operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
	commentService      services.CommentService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService, commentService services.CommentService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		commentService:      commentService,
	}
}

// GetAllAnnouncements lists every announcement, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Router /announcement [get]
func (c *AnnouncementController) GetAllAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetAllAnnouncements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// GetAnnouncementsBySubject lists a subject's announcements
// @Summary List announcements under a subject
// @Tags announcements
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {array} models.Announcement
// @Router /subject/{id}/announcement [get]
func (c *AnnouncementController) GetAnnouncementsBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	announcements, err := c.announcementService.GetAnnouncementsBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement posts an announcement under a subject
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body dto.CreateAnnouncementRequest true "Announcement fields"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} dto.ErrorResponse
// @Router /subject/{id}/announcement [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	announcement, err := c.announcementService.CreateAnnouncement(ctx, subjectID, req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// GetAnnouncementByID retrieves an announcement by ID
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} models.Announcement
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcement/{id} [get]
func (c *AnnouncementController) GetAnnouncementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "announcement")
	if !ok {
		return
	}

	announcement, err := c.announcementService.GetAnnouncementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcement)
}

// UpdateAnnouncement overwrites title and content of an announcement
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Announcement fields"
// @Success 200 {object} models.Announcement
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcement/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "announcement")
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	announcement, err := c.announcementService.UpdateAnnouncement(ctx, id, req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement removes an announcement; comments stay behind
// @Summary Delete an announcement
// @Tags announcements
// @Param id path int true "Announcement ID"
// @Success 204 "No content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcement/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "announcement")
	if !ok {
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetComments lists all comments under an announcement
// @Summary List comments
// @Tags comments
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {array} models.Comment
// @Router /announcement/{id}/comments [get]
func (c *AnnouncementController) GetComments(ctx *gin.Context) {
	announcementID, ok := parseIDParam(ctx, "id", "announcement")
	if !ok {
		return
	}

	comments, err := c.commentService.GetCommentsByAnnouncement(ctx, announcementID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// AddComment posts a comment under an announcement
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body dto.CreateCommentRequest true "Comment fields"
// @Success 201 {object} models.Comment
// @Failure 400 {object} dto.ErrorResponse
// @Router /announcement/{id}/comments [post]
func (c *AnnouncementController) AddComment(ctx *gin.Context) {
	announcementID, ok := parseIDParam(ctx, "id", "announcement")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	comment, err := c.commentService.CreateComment(ctx, announcementID, req.User, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
