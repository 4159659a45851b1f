package repositories

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// AllocationReader defines read operations for payment applications.
type AllocationReader interface {
	// FindApplicationByID retrieves an application by its ID.
	// Returns apperrors.ErrNotFound if no application matches.
	FindApplicationByID(ctx context.Context, applicationID string) (domain.PaymentApplication, error)
	// ListApplicationsByPayment returns all applications for a payment,
	// reversed ones included, oldest first.
	ListApplicationsByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error)
	// ListApplicationsByInvoice returns all applications against an invoice,
	// reversed ones included, oldest first.
	ListApplicationsByInvoice(ctx context.Context, invoiceID string, kind domain.InvoiceKind) ([]domain.PaymentApplication, error)
}

// AllocationWriter persists allocation effects atomically. Each call is a
// single database transaction that inserts or updates the application row
// and compares-and-swaps the versions of both touched aggregates; any
// version mismatch aborts the whole write with apperrors.ErrConflict.
type AllocationWriter interface {
	// SaveAllocation inserts the application and persists the updated
	// invoice and payment balances in one transaction. The Version fields
	// on invoice and payment must hold the values read before mutation.
	SaveAllocation(ctx context.Context, app domain.PaymentApplication, invoice domain.Invoice, payment domain.Payment) error
	// ReverseAllocation flags the application as reversed and persists the
	// compensated invoice and payment balances in one transaction.
	ReverseAllocation(ctx context.Context, app domain.PaymentApplication, invoice domain.Invoice, payment domain.Payment) error
}

// AllocationRepository combines reader and writer capabilities.
type AllocationRepository interface {
	AllocationReader
	AllocationWriter
}
