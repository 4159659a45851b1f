package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// ApplyPaymentRequest defines the payload for applying a payment to one invoice.
type ApplyPaymentRequest struct {
	PaymentID       string          `json:"paymentID" binding:"required"`
	InvoiceID       string          `json:"invoiceID" binding:"required"`
	InvoiceKind     string          `json:"invoiceKind" binding:"required,oneof=AR AP"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ApplicationDate time.Time       `json:"applicationDate" binding:"required"`
}

// BatchApplyLine is one invoice target within a batch allocation.
type BatchApplyLine struct {
	InvoiceID   string          `json:"invoiceID" binding:"required"`
	InvoiceKind string          `json:"invoiceKind" binding:"required,oneof=AR AP"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// BatchApplyRequest spreads one payment across several invoices.
type BatchApplyRequest struct {
	PaymentID       string           `json:"paymentID" binding:"required"`
	ApplicationDate time.Time        `json:"applicationDate" binding:"required"`
	Lines           []BatchApplyLine `json:"lines" binding:"required,min=1,dive"`
}

// ReverseApplicationRequest defines the payload for reversing an application.
type ReverseApplicationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ApplicationResponse defines the API representation of a payment application.
type ApplicationResponse struct {
	ApplicationID   string          `json:"applicationID"`
	PaymentID       string          `json:"paymentID"`
	InvoiceID       string          `json:"invoiceID"`
	InvoiceKind     string          `json:"invoiceKind"`
	Amount          decimal.Decimal `json:"amount"`
	ApplicationDate time.Time       `json:"applicationDate"`
	Status          string          `json:"status"`
	ReversedAt      *time.Time      `json:"reversedAt,omitempty"`
	ReversalReason  string          `json:"reversalReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToApplicationResponse converts a domain application to its API representation.
func ToApplicationResponse(a domain.PaymentApplication) ApplicationResponse {
	invoiceID, kind := a.InvoiceID()
	return ApplicationResponse{
		ApplicationID:   a.ApplicationID,
		PaymentID:       a.PaymentID,
		InvoiceID:       invoiceID,
		InvoiceKind:     string(kind),
		Amount:          a.Amount,
		ApplicationDate: a.ApplicationDate,
		Status:          string(a.Status),
		ReversedAt:      a.ReversedAt,
		ReversalReason:  a.ReversalReason,
		CreatedAt:       a.CreatedAt,
	}
}

// BatchApplyLineResult reports the outcome of one batch line.
type BatchApplyLineResult struct {
	InvoiceID   string               `json:"invoiceID"`
	Applied     bool                 `json:"applied"`
	Error       string               `json:"error,omitempty"`
	Application *ApplicationResponse `json:"application,omitempty"`
}

// BatchApplyResponse reports per-line outcomes of a batch allocation.
type BatchApplyResponse struct {
	PaymentID string                 `json:"paymentID"`
	Results   []BatchApplyLineResult `json:"results"`
}

// ListApplicationsResponse wraps a set of applications.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}
