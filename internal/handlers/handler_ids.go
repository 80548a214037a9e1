package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/display_helpers/internal/core/ports/services"
	"github.com/SscSPs/display_helpers/internal/dto"
	"github.com/SscSPs/display_helpers/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerIDRoutes registers the identifier route.
func registerIDRoutes(rg *gin.RouterGroup, idService portssvc.IDGeneratorSvc) {
	rg.GET("/ids", func(c *gin.Context) { generateIDs(c, idService) })
}

// generateIDs godoc
// @Summary Generate opaque identifiers
// @Description Returns base-36 identifiers made of a random part followed by a time part. Not suitable for security-sensitive use.
// @Tags ids
// @Produce  json
// @Param   count query int false "Number of identifiers" minimum(1) default(1)
// @Success 200 {object} dto.GenerateIDsResponse
// @Failure 400 {object} ErrorResponse "Invalid count"
// @Security BearerAuth
// @Router /ids [get]
func generateIDs(c *gin.Context, idService portssvc.IDGeneratorSvc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.GenerateIDsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query for GenerateIDs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	ids, err := idService.GenerateIDs(c.Request.Context(), params.Count)
	if err != nil {
		respondError(c, logger, err, "Failed to generate ids")
		return
	}

	c.JSON(http.StatusOK, dto.GenerateIDsResponse{IDs: ids})
}
