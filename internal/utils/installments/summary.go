package installments

import (
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FindGroup returns the group with the given ID.
func FindGroup(groups []domain.InstallmentGroup, groupID string) (domain.InstallmentGroup, bool) {
	for _, g := range groups {
		if g.GroupID == groupID {
			return g, true
		}
	}
	return domain.InstallmentGroup{}, false
}

// Summarize aggregates totals across groups. The upcoming amount is the sum of
// per-installment amounts of groups that still have a future installment, and the
// next due date is the earliest next installment date among them.
func Summarize(groups []domain.InstallmentGroup) domain.InstallmentSummary {
	summary := domain.InstallmentSummary{
		GroupCount:     len(groups),
		TotalAmount:    decimal.Zero,
		UpcomingAmount: decimal.Zero,
	}

	for _, g := range groups {
		summary.TotalAmount = summary.TotalAmount.Add(g.TotalAmount)
		if !g.IsActive() {
			continue
		}
		summary.ActiveGroupCount++
		summary.UpcomingAmount = summary.UpcomingAmount.Add(g.InstallmentAmount)

		if summary.NextDueDate == nil || g.NextInstallmentDate.Before(*summary.NextDueDate) {
			due := *g.NextInstallmentDate
			groupID := g.GroupID
			summary.NextDueDate = &due
			summary.NextDueGroupID = &groupID
		}
	}
	return summary
}
