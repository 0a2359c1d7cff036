package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/dto"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/gin-gonic/gin"
)

// installmentHandler handles HTTP requests for the installments view.
type installmentHandler struct {
	installmentService portssvc.InstallmentReaderSvc
}

// newInstallmentHandler creates a new installmentHandler.
func newInstallmentHandler(is portssvc.InstallmentReaderSvc) *installmentHandler {
	return &installmentHandler{installmentService: is}
}

// RegisterInstallmentRoutes registers routes related to installment groups.
func RegisterInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentReaderSvc) {
	h := newInstallmentHandler(installmentService)

	installments := rg.Group("/installments")
	{
		installments.GET("", h.listInstallments)
		installments.GET("/summary", h.getInstallmentSummary)
		installments.GET("/:groupID", h.getInstallmentGroup)
	}
}

// listInstallments godoc
// @Summary List installment groups
// @Description Groups the caller's installment transactions into purchase plans with totals and the next due installment
// @Tags installments
// @Produce  json
// @Param   accountID query string false "Only transactions of this account"
// @Param   type      query string false "Transaction type (INCOME or EXPENSE)"
// @Success 200 {object} dto.ListInstallmentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Finance API unavailable"
// @Failure 500 {object} map[string]string "Failed to list installments"
// @Security BearerAuth
// @Router /installments [get]
func (h *installmentHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInstallmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListInstallments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	groups, err := h.installmentService.ListInstallmentGroups(c.Request.Context(), params.Filter())
	if err != nil {
		respondError(c, logger, err, "Failed to list installments")
		return
	}

	middleware.SetResultCount(c, len(groups))
	c.JSON(http.StatusOK, dto.ListInstallmentsResponse{Groups: dto.ToInstallmentGroupResponses(groups)})
}

// getInstallmentSummary godoc
// @Summary Installment summary
// @Description Returns totals across all installment groups together with the groups themselves
// @Tags installments
// @Produce  json
// @Param   accountID query string false "Only transactions of this account"
// @Param   type      query string false "Transaction type (INCOME or EXPENSE)"
// @Success 200 {object} dto.GetInstallmentSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Finance API unavailable"
// @Failure 500 {object} map[string]string "Failed to summarize installments"
// @Security BearerAuth
// @Router /installments/summary [get]
func (h *installmentHandler) getInstallmentSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInstallmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for GetInstallmentSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, groups, err := h.installmentService.GetInstallmentSummary(c.Request.Context(), params.Filter())
	if err != nil {
		respondError(c, logger, err, "Failed to summarize installments")
		return
	}

	middleware.SetResultCount(c, len(groups))
	c.JSON(http.StatusOK, dto.GetInstallmentSummaryResponse{
		Summary: dto.ToInstallmentSummaryResponse(*summary),
		Groups:  dto.ToInstallmentGroupResponses(groups),
	})
}

// getInstallmentGroup godoc
// @Summary Get an installment group
// @Description Retrieves one installment group with all of its transactions in installment order
// @Tags installments
// @Produce  json
// @Param   groupID path string true "Installment group ID"
// @Success 200 {object} dto.InstallmentGroupResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Installment group not found"
// @Failure 502 {object} map[string]string "Finance API unavailable"
// @Failure 500 {object} map[string]string "Failed to retrieve installment group"
// @Security BearerAuth
// @Router /installments/{groupID} [get]
func (h *installmentHandler) getInstallmentGroup(c *gin.Context) {
	groupID := c.Param("groupID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("installment_group_id", groupID))

	group, err := h.installmentService.GetInstallmentGroup(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve installment group")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentGroupResponse(*group))
}
