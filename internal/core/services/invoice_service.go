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

// Errors returned by the invoice service.
var (
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")
	ErrInvoiceHasPayments      = errors.New("invoice has applied payments and cannot be voided")
)

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepository
	currencyRepo portsrepo.CurrencyRepository
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, currencyRepo portsrepo.CurrencyRepository) portssvc.InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, currencyRepo: currencyRepo}
}

// CreateInvoice creates a new draft invoice after validating the currency
// and amount against it.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return domain.Invoice{}, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Invoice{}, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrValidation, req.CurrencyCode)
		}
		return domain.Invoice{}, fmt.Errorf("failed to load currency %s: %w", req.CurrencyCode, err)
	}
	if -req.TotalAmount.Exponent() > currency.Precision {
		return domain.Invoice{}, fmt.Errorf("%w: amount %s exceeds %s precision of %d decimal places",
			apperrors.ErrValidation, req.TotalAmount.String(), currency.CurrencyCode, currency.Precision)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		Kind:          domain.InvoiceKind(req.Kind),
		ContactID:     req.ContactID,
		InvoiceNumber: req.InvoiceNumber,
		CurrencyCode:  req.CurrencyCode,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    decimal.Zero,
		Status:        domain.InvoiceDraft,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.invoiceRepo.CreateInvoice(ctx, invoice); err != nil {
		return domain.Invoice{}, err
	}
	logger.Info("invoice created", "invoice_id", invoice.InvoiceID, "kind", req.Kind, "number", req.InvoiceNumber)
	return invoice, nil
}

// GetInvoiceByID retrieves a single invoice.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// ListInvoices returns a page of invoices.
func (s *invoiceService) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, string, error) {
	return s.invoiceRepo.ListInvoices(ctx, filter)
}

// UpdateInvoice amends the editable header fields. Monetary fields are
// immutable here; only allocation changes PaidAmount.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice.Status.IsTerminal() {
		return domain.Invoice{}, fmt.Errorf("%w: invoice %s is %s", ErrInvalidStatusTransition, invoiceID, invoice.Status)
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.Touch(userID, time.Now().UTC())
	newVersion, err := s.invoiceRepo.UpdateInvoice(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Version = newVersion
	return invoice, nil
}

// SendInvoice opens a draft invoice for payment.
func (s *invoiceService) SendInvoice(ctx context.Context, invoiceID string, userID string) (domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice.Status != domain.InvoiceDraft {
		return domain.Invoice{}, fmt.Errorf("%w: cannot send invoice in status %s", ErrInvalidStatusTransition, invoice.Status)
	}
	invoice.Status = domain.InvoiceSent
	invoice.Touch(userID, time.Now().UTC())
	newVersion, err := s.invoiceRepo.UpdateInvoice(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Version = newVersion
	logger.Info("invoice sent", "invoice_id", invoiceID)
	return invoice, nil
}

// VoidInvoice voids an invoice that has no money applied to it. Invoices
// with active applications must have them reversed first.
func (s *invoiceService) VoidInvoice(ctx context.Context, invoiceID string, userID string) (domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice.Status == domain.InvoiceVoid {
		return domain.Invoice{}, fmt.Errorf("%w: invoice %s is already void", ErrInvalidStatusTransition, invoiceID)
	}
	if invoice.PaidAmount.GreaterThan(decimal.Zero) {
		return domain.Invoice{}, ErrInvoiceHasPayments
	}
	invoice.Status = domain.InvoiceVoid
	invoice.Touch(userID, time.Now().UTC())
	newVersion, err := s.invoiceRepo.UpdateInvoice(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Version = newVersion
	logger.Info("invoice voided", "invoice_id", invoiceID)
	return invoice, nil
}
