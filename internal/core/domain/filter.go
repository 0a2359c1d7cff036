package domain

// TransactionFilter narrows a transaction listing. Empty fields match everything.
type TransactionFilter struct {
	AccountID       string
	TransactionType TransactionType
}

// Matches reports whether t satisfies the filter.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.TransactionType != "" && t.TransactionType != f.TransactionType {
		return false
	}
	return true
}

// CacheKey renders the filter as a stable string for keyed lookups.
func (f TransactionFilter) CacheKey() string {
	return "account=" + f.AccountID + "|type=" + string(f.TransactionType)
}
