package repositories

// RepositoryProvider bundles every repository the service layer needs,
// so wiring stays in one place.
type RepositoryProvider struct {
	InvoiceRepo         InvoiceRepository
	PaymentRepo         PaymentRepository
	AllocationRepo      AllocationRepository
	BankTransactionRepo BankTransactionRepository
	CurrencyRepo        CurrencyRepository
	UserRepo            UserRepository
}
