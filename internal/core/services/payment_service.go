package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
)

// ErrPaymentAlreadyPosted is returned when posting a payment twice.
var ErrPaymentAlreadyPosted = errors.New("payment is already posted")

type paymentService struct {
	paymentRepo  portsrepo.PaymentRepository
	currencyRepo portsrepo.CurrencyRepository
	events       portssvc.EventSink
}

// NewPaymentService creates the payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, currencyRepo portsrepo.CurrencyRepository, events portssvc.EventSink) portssvc.PaymentService {
	return &paymentService{paymentRepo: paymentRepo, currencyRepo: currencyRepo, events: events}
}

// CreatePayment records a new draft payment.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Payment{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Payment{}, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrValidation, req.CurrencyCode)
		}
		return domain.Payment{}, fmt.Errorf("failed to load currency %s: %w", req.CurrencyCode, err)
	}
	if -req.Amount.Exponent() > currency.Precision {
		return domain.Payment{}, fmt.Errorf("%w: amount %s exceeds %s precision of %d decimal places",
			apperrors.ErrValidation, req.Amount.String(), currency.CurrencyCode, currency.Precision)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		ContactID:     req.ContactID,
		CurrencyCode:  req.CurrencyCode,
		Amount:        req.Amount,
		AppliedAmount: decimal.Zero,
		Status:        domain.PaymentDraft,
		PaymentDate:   req.PaymentDate,
		Reference:     req.Reference,
		Notes:         req.Notes,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return domain.Payment{}, err
	}
	logger.Info("payment created", "payment_id", payment.PaymentID, "amount", req.Amount.String())
	return payment, nil
}

// GetPaymentByID retrieves a single payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// ListPayments returns a page of payments.
func (s *paymentService) ListPayments(ctx context.Context, filter portsrepo.PaymentListFilter) ([]domain.Payment, string, error) {
	return s.paymentRepo.ListPayments(ctx, filter)
}

// PostPayment moves a draft payment to POSTED, making it available to the
// allocation engine.
func (s *paymentService) PostPayment(ctx context.Context, paymentID string, userID string) (domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return domain.Payment{}, err
	}
	if payment.Status == domain.PaymentPosted {
		return domain.Payment{}, ErrPaymentAlreadyPosted
	}
	payment.Status = domain.PaymentPosted
	payment.Touch(userID, time.Now().UTC())
	newVersion, err := s.paymentRepo.UpdatePayment(ctx, payment)
	if err != nil {
		return domain.Payment{}, err
	}
	payment.Version = newVersion

	logger.Info("payment posted", "payment_id", paymentID)
	s.events.Emit(ctx, domain.EventPaymentPosted, userID, map[string]any{
		"payment_id": payment.PaymentID,
		"amount":     payment.Amount.String(),
		"currency":   payment.CurrencyCode,
	})
	return payment, nil
}
