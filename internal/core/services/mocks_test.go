package services_test

import (
	"context"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionReader ---
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

// --- Mock TransactionWriter ---
type MockTransactionWriter struct {
	mock.Mock
}

func (m *MockTransactionWriter) UpsertTransactions(ctx context.Context, viewerID string, txns []domain.Transaction) (int, error) {
	args := m.Called(ctx, viewerID, txns)
	return args.Int(0), args.Error(1)
}

// --- Mock AccountReader ---
type MockAccountReader struct {
	mock.Mock
}

func (m *MockAccountReader) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var (
	_ portsrepo.TransactionReader = (*MockTransactionReader)(nil)
	_ portsrepo.TransactionWriter = (*MockTransactionWriter)(nil)
	_ portsrepo.AccountReader     = (*MockAccountReader)(nil)
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func noCursor() interface{} { return (*string)(nil) }

func cursorIs(want string) interface{} {
	return mock.MatchedBy(func(c *string) bool { return c != nil && *c == want })
}
