package services

import (
	"context"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
)

// InstallmentReaderSvc exposes installment-group projections of the caller's transactions.
type InstallmentReaderSvc interface {
	// ListInstallmentGroups fetches every transaction matching filter and groups them.
	ListInstallmentGroups(ctx context.Context, filter domain.TransactionFilter) ([]domain.InstallmentGroup, error)

	// GetInstallmentGroup returns one group by ID, or apperrors.ErrNotFound.
	GetInstallmentGroup(ctx context.Context, groupID string) (*domain.InstallmentGroup, error)

	// GetInstallmentSummary returns the groups together with totals across them.
	GetInstallmentSummary(ctx context.Context, filter domain.TransactionFilter) (*domain.InstallmentSummary, []domain.InstallmentGroup, error)
}
