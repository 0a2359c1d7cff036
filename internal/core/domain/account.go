package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a financial account as exposed by the finance API.
type Account struct {
	AccountID   string          `json:"id"`
	Name        string          `json:"name"`
	AccountType string          `json:"type"` // e.g. CHECKING, SAVINGS, CREDIT_CARD; owned by the API
	OwnerID     string          `json:"ownerID"`
	IsShared    bool            `json:"isShared"`
	Balance     decimal.Decimal `json:"balance"`
}
