package upstream

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/shopspring/decimal"
)

// transactionPayload mirrors a transaction record as served by the finance API.
type transactionPayload struct {
	ID                 string           `json:"id" validate:"required"`
	AccountID          string           `json:"account_id"`
	PayerID            string           `json:"payer_id"`
	Type               string           `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount             decimal.Decimal  `json:"amount"`
	Category           *domain.Category `json:"category"`
	Description        *string          `json:"description"`
	TransactionDate    string           `json:"transaction_date"`
	InstallmentGroupID *string          `json:"installment_group_id"`
	InstallmentNumber  *int             `json:"installment_number"`
	TotalInstallments  *int             `json:"total_installments"`
	CreatedAt          string           `json:"created_at"`
}

// transactionsEnvelope is the body of GET /transactions.
// Records stay raw so that one badly shaped record can be skipped on its own.
type transactionsEnvelope struct {
	Transactions []json.RawMessage `json:"transactions"`
	NextCursor   *string           `json:"next_cursor"`
}

// accountPayload mirrors an account as served by the finance API.
type accountPayload struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	OwnerID  string          `json:"owner_id"`
	IsShared bool            `json:"is_shared"`
	Balance  decimal.Decimal `json:"balance"`
}

// accountsEnvelope is the body of GET /accounts.
type accountsEnvelope struct {
	Accounts []json.RawMessage `json:"accounts"`
}

// errorEnvelope is the error body of the finance API.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// dateLayouts are tried in order when parsing API timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseAPITime parses an API timestamp. Malformed or empty values yield the zero time.
func parseAPITime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p transactionPayload) toDomain() (domain.Transaction, bool) {
	date, dateOK := parseAPITime(p.TransactionDate)
	createdAt, _ := parseAPITime(p.CreatedAt)

	category := p.Category
	if category.IsEmpty() {
		category = nil
	}

	return domain.Transaction{
		TransactionID:      p.ID,
		AccountID:          p.AccountID,
		PayerID:            p.PayerID,
		TransactionType:    domain.TransactionType(p.Type),
		Amount:             p.Amount,
		Category:           category,
		Description:        p.Description,
		TransactionDate:    date,
		InstallmentGroupID: p.InstallmentGroupID,
		InstallmentNumber:  p.InstallmentNumber,
		TotalInstallments:  p.TotalInstallments,
		CreatedAt:          createdAt,
	}, dateOK
}

func (p accountPayload) toDomain() domain.Account {
	return domain.Account{
		AccountID:   p.ID,
		Name:        p.Name,
		AccountType: p.Type,
		OwnerID:     p.OwnerID,
		IsShared:    p.IsShared,
		Balance:     p.Balance,
	}
}
