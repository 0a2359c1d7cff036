package dto

import (
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListInstallmentsParams defines query parameters for installment listings.
type ListInstallmentsParams struct {
	AccountID string `form:"accountID"`
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// Filter converts the query filters into a domain filter.
func (p ListInstallmentsParams) Filter() domain.TransactionFilter {
	return domain.TransactionFilter{AccountID: p.AccountID, TransactionType: domain.TransactionType(p.Type)}
}

// InstallmentGroupResponse is one row of the installments view.
type InstallmentGroupResponse struct {
	GroupID               string                `json:"groupID"`
	Description           *string               `json:"description,omitempty"`
	Category              *CategoryResponse     `json:"category,omitempty"`
	Type                  string                `json:"type"`
	TotalAmount           decimal.Decimal       `json:"totalAmount"`
	InstallmentAmount     decimal.Decimal       `json:"installmentAmount"`
	TotalInstallments     int                   `json:"totalInstallments"`
	PaidInstallments      int                   `json:"paidInstallments"`
	NextInstallmentNumber int                   `json:"nextInstallmentNumber"`
	NextInstallmentDate   *time.Time            `json:"nextInstallmentDate"`
	Transactions          []TransactionResponse `json:"transactions"`
}

// ListInstallmentsResponse wraps the installment groups.
type ListInstallmentsResponse struct {
	Groups []InstallmentGroupResponse `json:"groups"`
}

// InstallmentSummaryResponse carries totals across groups.
type InstallmentSummaryResponse struct {
	GroupCount       int             `json:"groupCount"`
	ActiveGroupCount int             `json:"activeGroupCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	UpcomingAmount   decimal.Decimal `json:"upcomingAmount"`
	NextDueDate      *time.Time      `json:"nextDueDate"`
	NextDueGroupID   *string         `json:"nextDueGroupID"`
}

// GetInstallmentSummaryResponse combines the summary with the groups it was computed from.
type GetInstallmentSummaryResponse struct {
	Summary InstallmentSummaryResponse `json:"summary"`
	Groups  []InstallmentGroupResponse `json:"groups"`
}

// ToInstallmentGroupResponse converts a domain.InstallmentGroup.
func ToInstallmentGroupResponse(g domain.InstallmentGroup) InstallmentGroupResponse {
	return InstallmentGroupResponse{
		GroupID:               g.GroupID,
		Description:           g.Description,
		Category:              ToCategoryResponse(g.Category),
		Type:                  string(g.TransactionType),
		TotalAmount:           g.TotalAmount,
		InstallmentAmount:     g.InstallmentAmount,
		TotalInstallments:     g.TotalInstallments,
		PaidInstallments:      g.PaidInstallments,
		NextInstallmentNumber: g.NextInstallmentNumber,
		NextInstallmentDate:   g.NextInstallmentDate,
		Transactions:          ToTransactionResponses(g.Transactions),
	}
}

// ToInstallmentGroupResponses converts groups preserving their order.
func ToInstallmentGroupResponses(groups []domain.InstallmentGroup) []InstallmentGroupResponse {
	res := make([]InstallmentGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = ToInstallmentGroupResponse(g)
	}
	return res
}

// ToInstallmentSummaryResponse converts a domain.InstallmentSummary.
func ToInstallmentSummaryResponse(s domain.InstallmentSummary) InstallmentSummaryResponse {
	return InstallmentSummaryResponse{
		GroupCount:       s.GroupCount,
		ActiveGroupCount: s.ActiveGroupCount,
		TotalAmount:      s.TotalAmount,
		UpcomingAmount:   s.UpcomingAmount,
		NextDueDate:      s.NextDueDate,
		NextDueGroupID:   s.NextDueGroupID,
	}
}
