package mapping

import (
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/SscSPs/couples_finance_bff/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID:      m.TransactionID,
		AccountID:          m.AccountID,
		PayerID:            m.PayerID,
		TransactionType:    domain.TransactionType(m.TransactionType),
		Amount:             m.Amount,
		Description:        m.Description,
		TransactionDate:    m.TransactionDate,
		InstallmentGroupID: m.InstallmentGroupID,
		InstallmentNumber:  int32PtrToInt(m.InstallmentNumber),
		TotalInstallments:  int32PtrToInt(m.TotalInstallments),
		CreatedAt:          m.CreatedAt,
	}
	if m.CategoryCode != nil || m.CategoryLabel != nil {
		category := domain.Category{Label: m.CategoryLabel}
		if m.CategoryCode != nil {
			category.Code = *m.CategoryCode
		}
		t.Category = &category
	}
	return t
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:      d.TransactionID,
		AccountID:          d.AccountID,
		PayerID:            d.PayerID,
		TransactionType:    string(d.TransactionType),
		Amount:             d.Amount,
		Description:        d.Description,
		TransactionDate:    d.TransactionDate,
		InstallmentGroupID: d.InstallmentGroupID,
		InstallmentNumber:  intPtrToInt32(d.InstallmentNumber),
		TotalInstallments:  intPtrToInt32(d.TotalInstallments),
		CreatedAt:          d.CreatedAt,
	}
	if !d.Category.IsEmpty() {
		code := d.Category.Code
		m.CategoryCode = &code
		m.CategoryLabel = d.Category.Label
	}
	return m
}

func int32PtrToInt(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func intPtrToInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}
