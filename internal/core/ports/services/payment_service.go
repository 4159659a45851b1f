package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// PaymentService manages payment lifecycle outside of allocation.
type PaymentService interface {
	// CreatePayment creates a draft payment.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (domain.Payment, error)
	// GetPaymentByID retrieves a single payment.
	GetPaymentByID(ctx context.Context, paymentID string) (domain.Payment, error)
	// ListPayments returns a page of payments and the next-page token.
	ListPayments(ctx context.Context, filter repositories.PaymentListFilter) ([]domain.Payment, string, error)
	// PostPayment moves a draft payment to POSTED, making it allocatable.
	PostPayment(ctx context.Context, paymentID string, userID string) (domain.Payment, error)
}
