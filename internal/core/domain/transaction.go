package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single transaction record as served by the finance API.
// Installment fields are nil for transactions that are not part of an installment plan.
type Transaction struct {
	TransactionID      string          `json:"id"`
	AccountID          string          `json:"accountID"`
	PayerID            string          `json:"payerID"`
	TransactionType    TransactionType `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Category           *Category       `json:"category,omitempty"`
	Description        *string         `json:"description,omitempty"`
	TransactionDate    time.Time       `json:"transactionDate"` // Zero when the source date could not be parsed
	InstallmentGroupID *string         `json:"installmentGroupID,omitempty"`
	InstallmentNumber  *int            `json:"installmentNumber,omitempty"`  // 1-based
	TotalInstallments  *int            `json:"totalInstallments,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// GroupID returns the installment group identifier and whether the transaction belongs to one.
// An empty identifier counts as absent.
func (t Transaction) GroupID() (string, bool) {
	if t.InstallmentGroupID == nil || *t.InstallmentGroupID == "" {
		return "", false
	}
	return *t.InstallmentGroupID, true
}

// Sequence returns the installment number, treating an absent number as 0.
func (t Transaction) Sequence() int {
	if t.InstallmentNumber == nil {
		return 0
	}
	return *t.InstallmentNumber
}

// HasKnownDate reports whether the transaction date was parsed successfully.
func (t Transaction) HasKnownDate() bool {
	return !t.TransactionDate.IsZero()
}

// Validate checks the fields a well-formed record must carry.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if !t.TransactionType.IsValid() {
		return fmt.Errorf("invalid transaction type '%s' for transaction %s", t.TransactionType, t.TransactionID)
	}
	if t.TotalInstallments != nil && *t.TotalInstallments < 0 {
		return fmt.Errorf("total installments must not be negative for transaction %s", t.TransactionID)
	}
	return nil
}
