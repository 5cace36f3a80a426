package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/models/dto"
	"github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/middleware"
)

// AssignmentController handles assignment-related operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// GetAllAssignments lists every assignment
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Success 200 {array} models.Assignment
// @Router /assignment [get]
func (c *AssignmentController) GetAllAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAllAssignments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}

// GetAssignmentsBySubject lists a subject's assignments
// @Summary List assignments under a subject
// @Tags assignments
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {array} models.Assignment
// @Router /subject/{id}/assignments [get]
func (c *AssignmentController) GetAssignmentsBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	assignments, err := c.assignmentService.GetAssignmentsBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}

// CreateAssignment creates an assignment under a subject
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body dto.CreateAssignmentRequest true "Assignment fields"
// @Success 201 {object} models.Assignment
// @Failure 400 {object} dto.ErrorResponse
// @Router /subject/{id}/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx, subjectID, req.Title, req.Instructions, req.DueDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment removes an assignment
// @Summary Delete an assignment
// @Tags assignments
// @Param id path int true "Assignment ID"
// @Success 204 "No content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignment/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "assignment")
	if !ok {
		return
	}

	if err := c.assignmentService.DeleteAssignment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
