package services

import (
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
)

// ServiceContainer bundles every application service for handler wiring.
type ServiceContainer struct {
	InvoiceSvc         portssvc.InvoiceService
	PaymentSvc         portssvc.PaymentService
	AllocationSvc      portssvc.AllocationService
	BankTransactionSvc portssvc.BankTransactionService
	ReconciliationSvc  portssvc.ReconciliationService
	CurrencySvc        portssvc.CurrencyService
	UserSvc            portssvc.UserService
	AuthSvc            portssvc.AuthService
}

// NewServiceContainer wires every service against the repository provider
// and shared infrastructure.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, events portssvc.EventSink, authCfg AuthConfig) *ServiceContainer {
	return &ServiceContainer{
		InvoiceSvc:         NewInvoiceService(repos.InvoiceRepo, repos.CurrencyRepo),
		PaymentSvc:         NewPaymentService(repos.PaymentRepo, repos.CurrencyRepo, events),
		AllocationSvc:      NewAllocationService(repos.InvoiceRepo, repos.PaymentRepo, repos.AllocationRepo, repos.CurrencyRepo, events),
		BankTransactionSvc: NewBankTransactionService(repos.BankTransactionRepo),
		ReconciliationSvc:  NewReconciliationService(repos.BankTransactionRepo, events),
		CurrencySvc:        NewCurrencyService(repos.CurrencyRepo),
		UserSvc:            NewUserService(repos.UserRepo),
		AuthSvc:            NewAuthService(repos.UserRepo, authCfg),
	}
}
