package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/backend/internal/app/models/dto"
)

// parseIDParam reads an integer path parameter. On failure it writes
// the 400 response itself and reports false.
func parseIDParam(ctx *gin.Context, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+resource+" ID"))
		return 0, false
	}
	return id, true
}
