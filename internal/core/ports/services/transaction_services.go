package services

import (
	"context"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/SscSPs/couples_finance_bff/internal/dto"
)

// TransactionReaderSvc defines pass-through read operations for transactions.
type TransactionReaderSvc interface {
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// AccountReaderSvc defines pass-through read operations for accounts.
type AccountReaderSvc interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// MirrorSyncSvc copies transactions from the finance API into the local mirror.
type MirrorSyncSvc interface {
	SyncTransactions(ctx context.Context) (int, error)
}
