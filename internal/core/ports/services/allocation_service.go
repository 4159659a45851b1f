package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// AllocationService moves money between payments and invoices. All
// operations retry internally on version conflicts before giving up.
type AllocationService interface {
	// Apply allocates part of a payment to a single invoice.
	Apply(ctx context.Context, req dto.ApplyPaymentRequest, userID string) (domain.PaymentApplication, error)
	// ApplyBatch allocates a payment across several invoices in request
	// order, reporting a per-line outcome. Lines after the payment runs
	// dry fail individually; earlier successes stand.
	ApplyBatch(ctx context.Context, req dto.BatchApplyRequest, userID string) (dto.BatchApplyResponse, error)
	// Reverse undoes an active application, restoring invoice and payment balances.
	Reverse(ctx context.Context, applicationID string, reason string, userID string) (domain.PaymentApplication, error)
	// GetApplication retrieves a single application.
	GetApplication(ctx context.Context, applicationID string) (domain.PaymentApplication, error)
	// ListByPayment returns every application of a payment, reversed ones included.
	ListByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error)
	// ListByInvoice returns every application against an invoice, reversed ones included.
	ListByInvoice(ctx context.Context, invoiceID string, kind domain.InvoiceKind) ([]domain.PaymentApplication, error)
}
