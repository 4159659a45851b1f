package repositories

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// InvoiceListFilter narrows ListInvoices results. Nil fields match everything.
type InvoiceListFilter struct {
	Kind      *domain.InvoiceKind
	Status    *domain.InvoiceStatus
	ContactID *string
	Limit     int
	Token     string
}

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its ID.
	// Returns apperrors.ErrNotFound if no invoice matches.
	FindInvoiceByID(ctx context.Context, invoiceID string) (domain.Invoice, error)
	// ListInvoices returns a page of invoices plus the token for the next page.
	// An empty next token means the listing is exhausted.
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]domain.Invoice, string, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// CreateInvoice persists a new invoice.
	// Returns apperrors.ErrDuplicate on invoice number collision for the contact.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) error
	// UpdateInvoice persists header changes guarded by the invoice's version
	// and returns the version now stored.
	// Returns apperrors.ErrConflict when the stored version differs.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (int64, error)
}

// InvoiceRepository combines reader and writer capabilities.
type InvoiceRepository interface {
	InvoiceReader
	InvoiceWriter
}
