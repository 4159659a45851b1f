package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, string, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Invoice), args.String(1), args.Error(2)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (int64, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.PaymentListFilter) ([]domain.Payment, string, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Payment), args.String(1), args.Error(2)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) SaveAllocation(ctx context.Context, app domain.PaymentApplication, invoice domain.Invoice, payment domain.Payment) error {
	args := m.Called(ctx, app, invoice, payment)
	return args.Error(0)
}

func (m *MockAllocationRepository) ReverseAllocation(ctx context.Context, app domain.PaymentApplication, invoice domain.Invoice, payment domain.Payment) error {
	args := m.Called(ctx, app, invoice, payment)
	return args.Error(0)
}

func (m *MockAllocationRepository) FindApplicationByID(ctx context.Context, applicationID string) (domain.PaymentApplication, error) {
	args := m.Called(ctx, applicationID)
	return args.Get(0).(domain.PaymentApplication), args.Error(1)
}

func (m *MockAllocationRepository) ListApplicationsByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).([]domain.PaymentApplication), args.Error(1)
}

func (m *MockAllocationRepository) ListApplicationsByInvoice(ctx context.Context, invoiceID string, kind domain.InvoiceKind) ([]domain.PaymentApplication, error) {
	args := m.Called(ctx, invoiceID, kind)
	return args.Get(0).([]domain.PaymentApplication), args.Error(1)
}

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) CreateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (domain.Currency, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency), args.Error(1)
}

type MockBankTransactionRepository struct {
	mock.Mock
}

func (m *MockBankTransactionRepository) CreateBankTransaction(ctx context.Context, txn domain.BankTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockBankTransactionRepository) CreateBankTransactions(ctx context.Context, txns []domain.BankTransaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockBankTransactionRepository) FindBankTransactionByID(ctx context.Context, transactionID string) (domain.BankTransaction, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) ListBankTransactions(ctx context.Context, filter portsrepo.BankTransactionListFilter) ([]domain.BankTransaction, string, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.BankTransaction), args.String(1), args.Error(2)
}

func (m *MockBankTransactionRepository) UpdateBankTransaction(ctx context.Context, txn domain.BankTransaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Emit(ctx context.Context, eventType string, distinctID string, properties map[string]any) {
	m.Called(ctx, eventType, distinctID, properties)
}

func (m *MockEventSink) Close() {
	m.Called()
}

// relaxedEventSink accepts any emission; used by tests that do not assert
// on events.
func relaxedEventSink() *MockEventSink {
	sink := new(MockEventSink)
	sink.On("Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return sink
}
