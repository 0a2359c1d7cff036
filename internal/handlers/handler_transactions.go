package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/dto"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionReaderSvc
}

// RegisterTransactionRoutes registers the paginated transaction listing.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionReaderSvc) {
	h := &transactionHandler{transactionService: transactionService}
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the caller's transactions one page at a time
// @Tags transactions
// @Produce  json
// @Param   limit     query int    false "Page size (1-200)" default(20)
// @Param   nextToken query string false "Token returned by the previous page"
// @Param   accountID query string false "Only transactions of this account"
// @Param   type      query string false "Transaction type (INCOME or EXPENSE)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Finance API unavailable"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	middleware.SetResultCount(c, len(resp.Transactions))
	c.JSON(http.StatusOK, resp)
}
