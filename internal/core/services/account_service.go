package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates the account pass-through. repo may be nil when the
// configured source does not serve accounts.
func NewAccountService(repo portsrepo.AccountReader) portssvc.AccountReaderSvc {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountReaderSvc = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if s.accountRepo == nil {
		return nil, apperrors.NewAppError(http.StatusNotImplemented, "accounts are not available from the configured transaction source", nil)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
