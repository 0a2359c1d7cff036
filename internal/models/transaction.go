package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions mirror table.
// Nullable columns are pointers.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	AccountID          string          `db:"account_id"`
	PayerID            string          `db:"payer_id"`
	TransactionType    string          `db:"transaction_type"`
	Amount             decimal.Decimal `db:"amount"`
	CategoryCode       *string         `db:"category_code"`
	CategoryLabel      *string         `db:"category_label"`
	Description        *string         `db:"description"`
	TransactionDate    time.Time       `db:"transaction_date"`
	InstallmentGroupID *string         `db:"installment_group_id"`
	InstallmentNumber  *int32          `db:"installment_number"`
	TotalInstallments  *int32          `db:"total_installments"`
	CreatedAt          time.Time       `db:"created_at"`
}
