package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// InvoiceService manages invoice lifecycle outside of allocation.
type InvoiceService interface {
	// CreateInvoice creates a draft invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (domain.Invoice, error)
	// GetInvoiceByID retrieves a single invoice.
	GetInvoiceByID(ctx context.Context, invoiceID string) (domain.Invoice, error)
	// ListInvoices returns a page of invoices and the next-page token.
	ListInvoices(ctx context.Context, filter repositories.InvoiceListFilter) ([]domain.Invoice, string, error)
	// UpdateInvoice amends the editable header fields of an invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (domain.Invoice, error)
	// SendInvoice moves a draft invoice to SENT, opening it for payment.
	SendInvoice(ctx context.Context, invoiceID string, userID string) (domain.Invoice, error)
	// VoidInvoice voids an invoice. Fails when money has been applied to it.
	VoidInvoice(ctx context.Context, invoiceID string, userID string) (domain.Invoice, error)
}
