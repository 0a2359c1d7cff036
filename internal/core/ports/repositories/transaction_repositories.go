package repositories

import (
	"context"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
)

// TransactionReader defines read operations for transaction records.
type TransactionReader interface {
	// ListTransactions returns one page of transactions matching filter.
	// nextToken is the opaque cursor returned by the previous page; nil requests the first page.
	// The returned cursor is nil on the last page.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for the transaction mirror.
type TransactionWriter interface {
	// UpsertTransactions inserts or replaces the given transactions as seen by viewerID
	// and returns how many rows were written.
	UpsertTransactions(ctx context.Context, viewerID string, txns []domain.Transaction) (int, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// AccountReader defines read operations for account data.
type AccountReader interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
