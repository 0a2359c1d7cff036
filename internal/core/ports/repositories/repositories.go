package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// AccountRepo is nil when accounts cannot be served by the configured source.
type RepositoryProvider struct {
	TransactionRepo TransactionReader
	AccountRepo     AccountReader
}
