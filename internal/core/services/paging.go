package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 50
)

// walkPages follows the source cursor from the first page until it is exhausted,
// calling visit for each page in order. Hitting maxPages with more data left is an error.
func walkPages(
	ctx context.Context,
	source portsrepo.TransactionReader,
	filter domain.TransactionFilter,
	pageSize, maxPages int,
	visit func(page []domain.Transaction) error,
) error {
	var cursor *string
	for page := 1; ; page++ {
		txns, next, err := source.ListTransactions(ctx, filter, pageSize, cursor)
		if err != nil {
			return err
		}
		if err := visit(txns); err != nil {
			return err
		}
		if next == nil || *next == "" {
			return nil
		}
		if page >= maxPages {
			middleware.GetLoggerFromCtx(ctx).Warn("Transaction history exceeds page limit",
				slog.Int("max_pages", maxPages),
				slog.Int("page_size", pageSize))
			return apperrors.NewAppError(http.StatusBadGateway,
				fmt.Sprintf("transaction history exceeds %d pages", maxPages), apperrors.ErrUpstream)
		}
		cursor = next
	}
}
