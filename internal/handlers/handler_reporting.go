package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arprinters/pos_backend/internal/apperrors"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/dto"
	"github.com/arprinters/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to business reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to business reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/sales-summary", h.getSalesSummary)
		reportingGroup.GET("/purchase-summary", h.getPurchaseSummary)
		reportingGroup.GET("/inventory-valuation", h.getInventoryValuation)
		reportingGroup.GET("/profit", h.getProfit)
	}
}

// parseReportRange reads the from/to query parameters, defaulting to the
// current day. The to date is extended to the end of that day so the range
// is inclusive.
func parseReportRange(c *gin.Context) (time.Time, time.Time, error) {
	today := time.Now().Format("2006-01-02")
	fromStr := c.DefaultQuery("from", today)
	toStr := c.DefaultQuery("to", today)

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}

// getSalesSummary godoc
// @Summary Generate sales summary report
// @Description Aggregates sales over a date range, with a per-payment-method breakdown
// @Tags reports
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)" default(current date)
// @Param to query string false "Range end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.SalesSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/sales-summary [get]
func (h *reportingHandler) getSalesSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseReportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	summary, err := h.reportingService.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate sales summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesSummaryResponse(summary))
}

// getPurchaseSummary godoc
// @Summary Generate purchase summary report
// @Description Aggregates purchases over a date range
// @Tags reports
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)" default(current date)
// @Param to query string false "Range end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.PurchaseSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/purchase-summary [get]
func (h *reportingHandler) getPurchaseSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseReportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	summary, err := h.reportingService.PurchaseSummary(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate purchase summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseSummaryResponse(summary))
}

// getInventoryValuation godoc
// @Summary Generate inventory valuation report
// @Description Values the current stock at cost and at retail
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InventoryValuationResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/inventory-valuation [get]
func (h *reportingHandler) getInventoryValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	valuation, err := h.reportingService.InventoryValuation(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate inventory valuation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryValuationResponse(valuation))
}

// getProfit godoc
// @Summary Generate profit report
// @Description Estimates gross profit over a date range: net sales less the cost of stocked goods sold
// @Tags reports
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)" default(current date)
// @Param to query string false "Range end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ProfitReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit [get]
func (h *reportingHandler) getProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseReportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.ProfitReport(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate profit report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitReportResponse(report))
}
