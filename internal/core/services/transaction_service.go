package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/dto"
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewTransactionService creates a pass-through service over the configured transaction source.
func NewTransactionService(repo portsrepo.TransactionReader) portssvc.TransactionReaderSvc {
	return &transactionService{txnRepo: repo}
}

var _ portssvc.TransactionReaderSvc = (*transactionService)(nil)

// ListTransactions returns one page of transactions in source order.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, next, err := s.txnRepo.ListTransactions(ctx, params.Filter(), params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int("limit", params.Limit))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    next,
	}, nil
}
