// Package installments derives installment-group summaries from flat transaction lists.
package installments

import (
	"sort"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/shopspring/decimal"
)

// bucket holds the members of one installment group in input order.
type bucket struct {
	groupID string
	members []domain.Transaction
}

// GroupInstallments partitions transactions by installment group ID and summarizes each group.
// Transactions without a group ID are dropped. Groups are emitted in the order their ID is
// first encountered in txns. The next installment is the first member (in sequence order)
// dated strictly after now.
func GroupInstallments(txns []domain.Transaction, now time.Time) []domain.InstallmentGroup {
	buckets := partition(txns)

	groups := make([]domain.InstallmentGroup, 0, len(buckets))
	for _, b := range buckets {
		if len(b.members) == 0 {
			continue
		}
		groups = append(groups, summarize(b, now))
	}
	return groups
}

// partition builds buckets in first-encounter order of their group ID.
func partition(txns []domain.Transaction) []*bucket {
	index := make(map[string]*bucket)
	ordered := make([]*bucket, 0)

	for _, txn := range txns {
		groupID, ok := txn.GroupID()
		if !ok {
			continue
		}
		b, exists := index[groupID]
		if !exists {
			b = &bucket{groupID: groupID}
			index[groupID] = b
			ordered = append(ordered, b)
		}
		b.members = append(b.members, txn)
	}
	return ordered
}

func summarize(b *bucket, now time.Time) domain.InstallmentGroup {
	members := make([]domain.Transaction, len(b.members))
	copy(members, b.members)
	SortBySequence(members)

	first := members[0]

	totalInstallments := 0
	if first.TotalInstallments != nil {
		totalInstallments = *first.TotalInstallments
	}

	totalAmount := decimal.Zero
	for _, m := range members {
		totalAmount = totalAmount.Add(m.Amount)
	}

	group := domain.InstallmentGroup{
		GroupID:               b.groupID,
		Description:           first.Description,
		Category:              first.Category,
		TransactionType:       first.TransactionType,
		TotalAmount:           totalAmount,
		InstallmentAmount:     first.Amount,
		TotalInstallments:     totalInstallments,
		PaidInstallments:      len(members),
		NextInstallmentNumber: totalInstallments,
		Transactions:          members,
	}

	if next, ok := nextInstallment(members, now); ok {
		nextDate := next.TransactionDate
		group.NextInstallmentNumber = next.Sequence()
		group.NextInstallmentDate = &nextDate
	}

	return group
}

// nextInstallment returns the first member, in the given order, dated strictly after now.
// Members with an unknown date never qualify.
func nextInstallment(members []domain.Transaction, now time.Time) (domain.Transaction, bool) {
	for _, m := range members {
		if m.HasKnownDate() && m.TransactionDate.After(now) {
			return m, true
		}
	}
	return domain.Transaction{}, false
}

// SortBySequence sorts transactions ascending by installment number in place.
// Absent numbers sort as 0; equal numbers keep their relative order.
func SortBySequence(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Sequence() < txns[j].Sequence()
	})
}
