package services

import (
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Installment: NewInstallmentService(
			repos.TransactionRepo,
			WithPaging(cfg.UpstreamPageSize, cfg.UpstreamMaxPages),
		),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Account:     NewAccountService(repos.AccountRepo),
	}
}
