package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/display_helpers/internal/core/ports/services"
	"github.com/SscSPs/display_helpers/internal/dto"
	"github.com/SscSPs/display_helpers/internal/middleware"
	"github.com/gin-gonic/gin"
)

// formatHandler handles HTTP requests that format amounts and dates for display.
type formatHandler struct {
	formatterService portssvc.FormatterSvcFacade
}

// newFormatHandler creates a new formatHandler.
func newFormatHandler(fs portssvc.FormatterSvcFacade) *formatHandler {
	return &formatHandler{
		formatterService: fs,
	}
}

// registerFormatRoutes registers routes related to formatting.
func registerFormatRoutes(rg *gin.RouterGroup, formatterService portssvc.FormatterSvcFacade) {
	h := newFormatHandler(formatterService)

	format := rg.Group("/format")
	{
		format.POST("/currency", h.formatCurrency)
		format.POST("/currency/batch", h.formatCurrencyBatch)
		format.POST("/date", h.formatDate)
		format.POST("/date/batch", h.formatDateBatch)
	}
}

// formatCurrency godoc
// @Summary Format an amount as US dollars
// @Description Renders any JSON value coercible to a number as "$1,234.50". Values that are not numbers come back as "$NaN" with valid=false.
// @Tags format
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatCurrencyRequest true "Amount to format"
// @Success 200 {object} dto.FormattedResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /format/currency [post]
func (h *formatHandler) formatCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result := h.formatterService.FormatCurrency(c.Request.Context(), req.Amount)
	c.JSON(http.StatusOK, dto.ToFormattedResponse(result))
}

// formatCurrencyBatch godoc
// @Summary Format several amounts as US dollars
// @Description Formats each amount in order. The batch size is bounded by MAX_BATCH_SIZE.
// @Tags format
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatCurrencyBatchRequest true "Amounts to format"
// @Success 200 {object} dto.FormattedBatchResponse
// @Failure 400 {object} ErrorResponse "Invalid input or batch too large"
// @Security BearerAuth
// @Router /format/currency/batch [post]
func (h *formatHandler) formatCurrencyBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatCurrencyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatCurrencyBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.formatterService.FormatCurrencyBatch(c.Request.Context(), req.Amounts)
	if err != nil {
		respondError(c, logger, err, "Failed to format amounts")
		return
	}

	logger.Info("Amounts formatted", slog.Int("count", len(batch.Items)))
	c.JSON(http.StatusOK, dto.ToFormattedBatchResponse(batch))
}

// formatDate godoc
// @Summary Format a date in long Spanish form
// @Description Renders a timestamp in milliseconds or a date string as "05 de marzo de 2024". Values that are not dates come back as "Invalid Date" with valid=false.
// @Tags format
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatDateRequest true "Date to format"
// @Success 200 {object} dto.FormattedResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /format/date [post]
func (h *formatHandler) formatDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatDate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result := h.formatterService.FormatDate(c.Request.Context(), req.Date)
	c.JSON(http.StatusOK, dto.ToFormattedResponse(result))
}

// formatDateBatch godoc
// @Summary Format several dates in long Spanish form
// @Description Formats each date in order. The batch size is bounded by MAX_BATCH_SIZE.
// @Tags format
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatDateBatchRequest true "Dates to format"
// @Success 200 {object} dto.FormattedBatchResponse
// @Failure 400 {object} ErrorResponse "Invalid input or batch too large"
// @Security BearerAuth
// @Router /format/date/batch [post]
func (h *formatHandler) formatDateBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatDateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatDateBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.formatterService.FormatDateBatch(c.Request.Context(), req.Dates)
	if err != nil {
		respondError(c, logger, err, "Failed to format dates")
		return
	}

	logger.Info("Dates formatted", slog.Int("count", len(batch.Items)))
	c.JSON(http.StatusOK, dto.ToFormattedBatchResponse(batch))
}
