package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentGroup is the derived summary of all transactions sharing an installment group ID.
// It is a projection of the transaction list and is recomputed on every fetch.
type InstallmentGroup struct {
	GroupID               string          `json:"groupID"`
	Description           *string         `json:"description,omitempty"`
	Category              *Category       `json:"category,omitempty"`
	TransactionType       TransactionType `json:"type"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	InstallmentAmount     decimal.Decimal `json:"installmentAmount"`
	TotalInstallments     int             `json:"totalInstallments"`
	PaidInstallments      int             `json:"paidInstallments"`
	NextInstallmentNumber int             `json:"nextInstallmentNumber"`
	NextInstallmentDate   *time.Time      `json:"nextInstallmentDate,omitempty"`
	Transactions          []Transaction   `json:"transactions"`
}

// IsActive reports whether the group still has an installment dated in the future.
func (g InstallmentGroup) IsActive() bool {
	return g.NextInstallmentDate != nil
}

// InstallmentSummary aggregates figures across installment groups.
type InstallmentSummary struct {
	GroupCount       int             `json:"groupCount"`
	ActiveGroupCount int             `json:"activeGroupCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	UpcomingAmount   decimal.Decimal `json:"upcomingAmount"` // Sum of per-installment amounts of active groups
	NextDueDate      *time.Time      `json:"nextDueDate,omitempty"`
	NextDueGroupID   *string         `json:"nextDueGroupID,omitempty"`
}
