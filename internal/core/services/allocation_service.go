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
	"github.com/ledgerpad/ledgerpad_app/internal/utils/finance"
)

// Errors returned by the allocation service.
var (
	ErrInsufficientInvoiceBalance = errors.New("amount exceeds invoice remaining balance")
	ErrInsufficientPaymentBalance = errors.New("amount exceeds payment unapplied balance")
	ErrCurrencyMismatch           = errors.New("payment and invoice currencies differ")
	ErrInvoiceVoided              = errors.New("invoice is void and cannot accept payments")
	ErrInvoiceNotOpen             = errors.New("invoice is not open for payment")
	ErrPaymentNotPosted           = errors.New("payment must be posted before allocation")
	ErrApplicationAlreadyReversed = errors.New("application is already reversed")
	ErrConcurrentModification     = errors.New("operation aborted after repeated concurrent modifications")
)

// conflictRetries bounds how often an operation is replayed after losing
// an optimistic-concurrency race before giving up.
const conflictRetries = 3

type allocationService struct {
	invoiceRepo    portsrepo.InvoiceRepository
	paymentRepo    portsrepo.PaymentRepository
	allocationRepo portsrepo.AllocationRepository
	currencyRepo   portsrepo.CurrencyRepository
	events         portssvc.EventSink
}

// NewAllocationService creates the allocation engine.
func NewAllocationService(
	invoiceRepo portsrepo.InvoiceRepository,
	paymentRepo portsrepo.PaymentRepository,
	allocationRepo portsrepo.AllocationRepository,
	currencyRepo portsrepo.CurrencyRepository,
	events portssvc.EventSink,
) portssvc.AllocationService {
	return &allocationService{
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		allocationRepo: allocationRepo,
		currencyRepo:   currencyRepo,
		events:         events,
	}
}

// Apply allocates part of a payment to a single invoice. The whole
// read-validate-write cycle is replayed when the persisted versions moved
// underneath us, so validation always runs against fresh balances.
func (s *allocationService) Apply(ctx context.Context, req dto.ApplyPaymentRequest, userID string) (domain.PaymentApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.InvoiceKind(req.InvoiceKind)
	if !kind.IsValid() {
		return domain.PaymentApplication{}, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, req.InvoiceKind)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.PaymentApplication{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	for attempt := 0; attempt < conflictRetries; attempt++ {
		app, err := s.applyOnce(ctx, req, kind, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Warn("allocation lost version race, retrying",
					"payment_id", req.PaymentID, "invoice_id", req.InvoiceID, "attempt", attempt+1)
				continue
			}
			return domain.PaymentApplication{}, err
		}
		logger.Info("payment applied",
			"application_id", app.ApplicationID,
			"payment_id", req.PaymentID,
			"invoice_id", req.InvoiceID,
			"amount", req.Amount.String(),
		)
		return app, nil
	}
	return domain.PaymentApplication{}, ErrConcurrentModification
}

// applyOnce runs one read-validate-write attempt.
func (s *allocationService) applyOnce(ctx context.Context, req dto.ApplyPaymentRequest, kind domain.InvoiceKind, userID string) (domain.PaymentApplication, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, req.PaymentID)
	if err != nil {
		return domain.PaymentApplication{}, fmt.Errorf("failed to load payment %s: %w", req.PaymentID, err)
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		return domain.PaymentApplication{}, fmt.Errorf("failed to load invoice %s: %w", req.InvoiceID, err)
	}

	if invoice.Kind != kind {
		return domain.PaymentApplication{}, fmt.Errorf("%w: invoice %s is %s, not %s", apperrors.ErrValidation, invoice.InvoiceID, invoice.Kind, kind)
	}
	if err := validateApplication(invoice, payment, req.Amount); err != nil {
		return domain.PaymentApplication{}, err
	}
	if err := s.checkPrecision(ctx, req.Amount, invoice.CurrencyCode); err != nil {
		return domain.PaymentApplication{}, err
	}

	now := time.Now().UTC()
	app := domain.PaymentApplication{
		ApplicationID:   uuid.NewString(),
		PaymentID:       payment.PaymentID,
		Amount:          req.Amount,
		ApplicationDate: req.ApplicationDate,
		Status:          domain.ApplicationActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if kind == domain.KindAR {
		app.ARInvoiceID = &invoice.InvoiceID
	} else {
		app.APInvoiceID = &invoice.InvoiceID
	}
	if err := app.Validate(); err != nil {
		return domain.PaymentApplication{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	invoice.PaidAmount = invoice.PaidAmount.Add(req.Amount)
	invoice.Status = finance.DerivedStatus(invoice.Status, invoice.TotalAmount, invoice.PaidAmount)
	invoice.Touch(userID, now)

	payment.AppliedAmount = payment.AppliedAmount.Add(req.Amount)
	payment.Touch(userID, now)

	if err := s.allocationRepo.SaveAllocation(ctx, app, invoice, payment); err != nil {
		return domain.PaymentApplication{}, err
	}

	s.emitBalanceEvents(ctx, invoice, userID)
	return app, nil
}

// ApplyBatch allocates one payment across several invoices in request
// order. Each line is attempted independently; a failed line never rolls
// back earlier successes.
func (s *allocationService) ApplyBatch(ctx context.Context, req dto.BatchApplyRequest, userID string) (dto.BatchApplyResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// The payment must at least exist before we start burning through lines.
	if _, err := s.paymentRepo.FindPaymentByID(ctx, req.PaymentID); err != nil {
		return dto.BatchApplyResponse{}, fmt.Errorf("failed to load payment %s: %w", req.PaymentID, err)
	}

	resp := dto.BatchApplyResponse{
		PaymentID: req.PaymentID,
		Results:   make([]dto.BatchApplyLineResult, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		lineReq := dto.ApplyPaymentRequest{
			PaymentID:       req.PaymentID,
			InvoiceID:       line.InvoiceID,
			InvoiceKind:     line.InvoiceKind,
			Amount:          line.Amount,
			ApplicationDate: req.ApplicationDate,
		}
		app, err := s.Apply(ctx, lineReq, userID)
		if err != nil {
			logger.Warn("batch line failed",
				"payment_id", req.PaymentID, "invoice_id", line.InvoiceID, "error", err)
			resp.Results = append(resp.Results, dto.BatchApplyLineResult{
				InvoiceID: line.InvoiceID,
				Applied:   false,
				Error:     err.Error(),
			})
			continue
		}
		appResp := dto.ToApplicationResponse(app)
		resp.Results = append(resp.Results, dto.BatchApplyLineResult{
			InvoiceID:   line.InvoiceID,
			Applied:     true,
			Application: &appResp,
		})
	}
	return resp, nil
}

// Reverse undoes an active application. The application row keeps its
// amount and gains a reversal flag; the invoice and payment balances are
// compensated in the same transaction.
func (s *allocationService) Reverse(ctx context.Context, applicationID string, reason string, userID string) (domain.PaymentApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return domain.PaymentApplication{}, fmt.Errorf("%w: reversal reason is required", apperrors.ErrValidation)
	}

	for attempt := 0; attempt < conflictRetries; attempt++ {
		app, err := s.reverseOnce(ctx, applicationID, reason, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Warn("reversal lost version race, retrying",
					"application_id", applicationID, "attempt", attempt+1)
				continue
			}
			return domain.PaymentApplication{}, err
		}
		logger.Info("application reversed", "application_id", applicationID, "reason", reason)
		return app, nil
	}
	return domain.PaymentApplication{}, ErrConcurrentModification
}

func (s *allocationService) reverseOnce(ctx context.Context, applicationID string, reason string, userID string) (domain.PaymentApplication, error) {
	app, err := s.allocationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return domain.PaymentApplication{}, fmt.Errorf("failed to load application %s: %w", applicationID, err)
	}
	if app.IsReversed() {
		return domain.PaymentApplication{}, ErrApplicationAlreadyReversed
	}

	invoiceID, _ := app.InvoiceID()
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return domain.PaymentApplication{}, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, app.PaymentID)
	if err != nil {
		return domain.PaymentApplication{}, fmt.Errorf("failed to load payment %s: %w", app.PaymentID, err)
	}

	// Unreachable under the invariants, but checked so a corrupt row can
	// never push a balance negative.
	if invoice.PaidAmount.LessThan(app.Amount) || payment.AppliedAmount.LessThan(app.Amount) {
		return domain.PaymentApplication{}, fmt.Errorf("%w: reversal would drive a balance negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	app.MarkReversed(reason, now)
	app.Touch(userID, now)

	invoice.PaidAmount = invoice.PaidAmount.Sub(app.Amount)
	invoice.Status = finance.DerivedStatus(invoice.Status, invoice.TotalAmount, invoice.PaidAmount)
	invoice.Touch(userID, now)

	payment.AppliedAmount = payment.AppliedAmount.Sub(app.Amount)
	payment.Touch(userID, now)

	if err := s.allocationRepo.ReverseAllocation(ctx, app, invoice, payment); err != nil {
		return domain.PaymentApplication{}, err
	}

	s.events.Emit(ctx, domain.EventApplicationReversed, userID, map[string]any{
		"application_id": app.ApplicationID,
		"payment_id":     app.PaymentID,
		"invoice_id":     invoice.InvoiceID,
		"amount":         app.Amount.String(),
		"reason":         reason,
	})
	s.emitBalanceEvents(ctx, invoice, userID)
	return app, nil
}

// GetApplication retrieves a single application by ID.
func (s *allocationService) GetApplication(ctx context.Context, applicationID string) (domain.PaymentApplication, error) {
	return s.allocationRepo.FindApplicationByID(ctx, applicationID)
}

// ListByPayment returns every application of a payment.
func (s *allocationService) ListByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error) {
	return s.allocationRepo.ListApplicationsByPayment(ctx, paymentID)
}

// ListByInvoice returns every application against an invoice.
func (s *allocationService) ListByInvoice(ctx context.Context, invoiceID string, kind domain.InvoiceKind) ([]domain.PaymentApplication, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, kind)
	}
	return s.allocationRepo.ListApplicationsByInvoice(ctx, invoiceID, kind)
}

func (s *allocationService) checkPrecision(ctx context.Context, amount decimal.Decimal, currencyCode string) error {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Unregistered currency on an existing invoice: skip the
			// precision check rather than block the allocation.
			return nil
		}
		return fmt.Errorf("failed to load currency %s: %w", currencyCode, err)
	}
	if -amount.Exponent() > currency.Precision {
		return fmt.Errorf("%w: amount %s exceeds %s precision of %d decimal places",
			apperrors.ErrValidation, amount.String(), currency.CurrencyCode, currency.Precision)
	}
	return nil
}

func (s *allocationService) emitBalanceEvents(ctx context.Context, invoice domain.Invoice, userID string) {
	props := map[string]any{
		"invoice_id":   invoice.InvoiceID,
		"kind":         string(invoice.Kind),
		"paid_amount":  invoice.PaidAmount.String(),
		"total_amount": invoice.TotalAmount.String(),
		"status":       string(invoice.Status),
	}
	s.events.Emit(ctx, domain.EventInvoiceBalanceChanged, userID, props)
	if invoice.Status == domain.InvoicePaid {
		s.events.Emit(ctx, domain.EventInvoiceFullyPaid, userID, props)
	}
}

// validateApplication checks the business preconditions shared by every
// allocation attempt against freshly loaded aggregates.
func validateApplication(invoice domain.Invoice, payment domain.Payment, amount decimal.Decimal) error {
	if !payment.IsPosted() {
		return ErrPaymentNotPosted
	}
	switch invoice.Status {
	case domain.InvoiceVoid:
		return ErrInvoiceVoided
	case domain.InvoiceDraft:
		return ErrInvoiceNotOpen
	}
	if payment.CurrencyCode != invoice.CurrencyCode {
		return fmt.Errorf("%w: payment is %s, invoice is %s", ErrCurrencyMismatch, payment.CurrencyCode, invoice.CurrencyCode)
	}
	if remaining := invoice.RemainingBalance(); amount.GreaterThan(remaining) {
		return fmt.Errorf("%w: requested %s, remaining %s", ErrInsufficientInvoiceBalance, amount, remaining)
	}
	if unapplied := payment.UnappliedAmount(); amount.GreaterThan(unapplied) {
		return fmt.Errorf("%w: requested %s, unapplied %s", ErrInsufficientPaymentBalance, amount, unapplied)
	}
	return nil
}
