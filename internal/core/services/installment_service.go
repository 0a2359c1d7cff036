package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/utils/installments"
)

// installmentService implements the InstallmentReaderSvc interface
type installmentService struct {
	BaseService
	txnRepo  portsrepo.TransactionReader
	pageSize int
	maxPages int
	now      func() time.Time
}

// InstallmentServiceOption is a functional option for configuring the installment service
type InstallmentServiceOption func(*installmentService)

// WithClock sets the time source used to decide which installments are still upcoming.
func WithClock(now func() time.Time) InstallmentServiceOption {
	return func(s *installmentService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPaging sets how many records are requested per page and how many pages may be walked.
// Non-positive values keep the defaults.
func WithPaging(pageSize, maxPages int) InstallmentServiceOption {
	return func(s *installmentService) {
		if pageSize > 0 {
			s.pageSize = pageSize
		}
		if maxPages > 0 {
			s.maxPages = maxPages
		}
	}
}

// NewInstallmentService creates a new installment service with the provided options
func NewInstallmentService(repo portsrepo.TransactionReader, options ...InstallmentServiceOption) portssvc.InstallmentReaderSvc {
	svc := &installmentService{
		txnRepo:  repo,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure installmentService implements the InstallmentReaderSvc interface
var _ portssvc.InstallmentReaderSvc = (*installmentService)(nil)

// ListInstallmentGroups fetches the full transaction history matching filter and groups the installments.
func (s *installmentService) ListInstallmentGroups(ctx context.Context, filter domain.TransactionFilter) ([]domain.InstallmentGroup, error) {
	txns, err := s.fetchAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := installments.GroupInstallments(txns, s.now())

	s.LogInfo(ctx, "Installment groups computed",
		slog.Int("transaction_count", len(txns)),
		slog.Int("group_count", len(groups)))
	return groups, nil
}

// GetInstallmentGroup returns a single group computed over the unfiltered history.
func (s *installmentService) GetInstallmentGroup(ctx context.Context, groupID string) (*domain.InstallmentGroup, error) {
	if groupID == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "installment group id is required", apperrors.ErrValidation)
	}

	groups, err := s.ListInstallmentGroups(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	group, ok := installments.FindGroup(groups, groupID)
	if !ok {
		s.LogDebug(ctx, "Installment group not found", slog.String("installment_group_id", groupID))
		return nil, apperrors.NewAppError(http.StatusNotFound, "installment group "+groupID+" not found", apperrors.ErrNotFound)
	}
	return &group, nil
}

// GetInstallmentSummary groups the matching history and totals the result.
func (s *installmentService) GetInstallmentSummary(ctx context.Context, filter domain.TransactionFilter) (*domain.InstallmentSummary, []domain.InstallmentGroup, error) {
	groups, err := s.ListInstallmentGroups(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	summary := installments.Summarize(groups)
	return &summary, groups, nil
}

// fetchAll walks every page of the source. Filters are re-applied locally.
func (s *installmentService) fetchAll(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := walkPages(ctx, s.txnRepo, filter, s.pageSize, s.maxPages, func(page []domain.Transaction) error {
		for _, t := range page {
			if filter.Matches(t) {
				txns = append(txns, t)
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for installment grouping",
			slog.String("filter", filter.CacheKey()))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}
