package repositories

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// PaymentListFilter narrows ListPayments results. Nil fields match everything.
type PaymentListFilter struct {
	Status    *domain.PaymentStatus
	ContactID *string
	Limit     int
	Token     string
}

// PaymentReader defines read operations for payments.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its ID.
	// Returns apperrors.ErrNotFound if no payment matches.
	FindPaymentByID(ctx context.Context, paymentID string) (domain.Payment, error)
	// ListPayments returns a page of payments plus the token for the next page.
	ListPayments(ctx context.Context, filter PaymentListFilter) ([]domain.Payment, string, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	// CreatePayment persists a new payment.
	CreatePayment(ctx context.Context, payment domain.Payment) error
	// UpdatePayment persists header or status changes guarded by the
	// payment's version and returns the version now stored.
	// Returns apperrors.ErrConflict when the stored version differs.
	UpdatePayment(ctx context.Context, payment domain.Payment) (int64, error)
}

// PaymentRepository combines reader and writer capabilities.
type PaymentRepository interface {
	PaymentReader
	PaymentWriter
}
