package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arprinters/pos_backend/internal/apperrors"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/dto"
	"github.com/arprinters/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the derived credit ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to the credit ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.getLedger)
		ledger.GET("/:customerID", h.getCustomerStatement)
	}
}

// getLedger godoc
// @Summary Get the credit ledger
// @Description Derives per-customer credit positions from the full sale history, highest debt first
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.LedgerResponse
// @Failure 500 {object} map[string]string "Failed to compute ledger"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.ledgerService.CustomerLedger(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(entries))
}

// getCustomerStatement godoc
// @Summary Get a customer statement
// @Description Retrieves one customer's credit position with the matched sale history, newest first
// @Tags ledger
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerStatementResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to compute statement"
// @Security BearerAuth
// @Router /ledger/{customerID} [get]
func (h *ledgerHandler) getCustomerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	statement, err := h.ledgerService.CustomerStatement(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		logger.Error("Failed to compute statement", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerStatementResponse(statement))
}
