package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/models/dto"
	"github.com/studysphere/backend/internal/app/services"
	"github.com/studysphere/backend/internal/middleware"
)

// MaterialController handles material-related operations
type MaterialController struct {
	materialService services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService) *MaterialController {
	return &MaterialController{
		materialService: materialService,
	}
}

// GetAllMaterials lists every material, newest first
// @Summary List materials
// @Tags materials
// @Produce json
// @Success 200 {array} models.Material
// @Router /material [get]
func (c *MaterialController) GetAllMaterials(ctx *gin.Context) {
	materials, err := c.materialService.GetAllMaterials(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// GetMaterialsBySubject lists a subject's materials
// @Summary List materials under a subject
// @Tags materials
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {array} models.Material
// @Router /subject/{id}/materials [get]
func (c *MaterialController) GetMaterialsBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	materials, err := c.materialService.GetMaterialsBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// CreateMaterial uploads a material record under a subject
// @Summary Create a material
// @Tags materials
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body dto.CreateMaterialRequest true "Material fields"
// @Success 201 {object} models.Material
// @Failure 400 {object} dto.ErrorResponse
// @Router /subject/{id}/materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	material, err := c.materialService.CreateMaterial(ctx, subjectID, req.Title, req.Description, req.FileURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, material)
}

// DeleteMaterial removes a material
// @Summary Delete a material
// @Tags materials
// @Param id path int true "Material ID"
// @Success 204 "No content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /material/{id} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "material")
	if !ok {
		return
	}

	if err := c.materialService.DeleteMaterial(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
