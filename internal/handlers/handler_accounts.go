package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/dto"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/gin-gonic/gin"
)

type accountHandler struct {
	accountService portssvc.AccountReaderSvc
}

// RegisterAccountRoutes registers the account listing.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountReaderSvc) {
	h := &accountHandler{accountService: accountService}
	rg.GET("/accounts", h.listAccounts)
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the accounts visible to the caller, including shared ones
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 501 {object} map[string]string "Accounts not available from the configured source"
// @Failure 502 {object} map[string]string "Finance API unavailable"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	middleware.SetResultCount(c, len(accounts))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}
