package dto

import (
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
	AccountID string  `form:"accountID"`
	Type      string  `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// Filter converts the query filters into a domain filter.
func (p ListTransactionsParams) Filter() domain.TransactionFilter {
	return domain.TransactionFilter{AccountID: p.AccountID, TransactionType: domain.TransactionType(p.Type)}
}

// CategoryResponse is the normalized category sent to the app.
type CategoryResponse struct {
	Code  string  `json:"code"`
	Label *string `json:"label,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string            `json:"id"`
	AccountID          string            `json:"accountID"`
	PayerID            string            `json:"payerID"`
	Type               string            `json:"type"`
	Amount             decimal.Decimal   `json:"amount"`
	Category           *CategoryResponse `json:"category,omitempty"`
	Description        *string           `json:"description,omitempty"`
	TransactionDate    *time.Time        `json:"transactionDate"` // Null when the source date was malformed
	InstallmentGroupID *string           `json:"installmentGroupID,omitempty"`
	InstallmentNumber  *int              `json:"installmentNumber,omitempty"`
	TotalInstallments  *int              `json:"totalInstallments,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToCategoryResponse converts a domain.Category; nil and empty categories map to nil.
func ToCategoryResponse(c *domain.Category) *CategoryResponse {
	if c.IsEmpty() {
		return nil
	}
	return &CategoryResponse{Code: c.Code, Label: c.Label}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:      txn.TransactionID,
		AccountID:          txn.AccountID,
		PayerID:            txn.PayerID,
		Type:               string(txn.TransactionType),
		Amount:             txn.Amount,
		Category:           ToCategoryResponse(txn.Category),
		Description:        txn.Description,
		InstallmentGroupID: txn.InstallmentGroupID,
		InstallmentNumber:  txn.InstallmentNumber,
		TotalInstallments:  txn.TotalInstallments,
		CreatedAt:          txn.CreatedAt,
	}
	if txn.HasKnownDate() {
		date := txn.TransactionDate
		resp.TransactionDate = &date
	}
	return resp
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}
