package services

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Installment InstallmentReaderSvc
	Transaction TransactionReaderSvc
	Account     AccountReaderSvc
}
