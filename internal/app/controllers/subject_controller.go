package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/models/dto"
	"github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/middleware"
)

// subjectRequiredMsg mirrors the validation message the service emits,
// so empty and missing fields read the same to the client.
const subjectRequiredMsg = "Both 'name' and 'teacher' are required and cannot be empty"

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// GetAllSubjects lists every subject
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {array} models.Subject
// @Router /subject [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAllSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// CreateSubject creates a new subject
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject fields"
// @Success 201 {object} models.Subject
// @Failure 400 {object} dto.ErrorResponse "Missing or empty name/teacher"
// @Router /subject [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(subjectRequiredMsg))
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx, req.Name, req.Teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, subject)
}

// GetSubjectByID retrieves a subject by ID
// @Summary Get a subject
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} models.Subject
// @Failure 404 {object} dto.ErrorResponse
// @Router /subject/{id} [get]
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// UpdateSubject overwrites both fields of a subject
// @Summary Update a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Subject fields"
// @Success 200 {object} models.Subject
// @Failure 404 {object} dto.ErrorResponse
// @Router /subject/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(subjectRequiredMsg))
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx, id, req.Name, req.Teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// DeleteSubject removes a subject; its children stay behind
// @Summary Delete a subject
// @Tags subjects
// @Param id path int true "Subject ID"
// @Success 204 "No content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /subject/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
