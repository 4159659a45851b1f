package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// CreatePaymentRequest defines the payload for recording a payment.
type CreatePaymentRequest struct {
	ContactID    string          `json:"contactID" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currency_code"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate  time.Time       `json:"paymentDate" binding:"required"`
	Reference    string          `json:"reference,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// PaymentResponse defines the API representation of a payment.
type PaymentResponse struct {
	PaymentID       string          `json:"paymentID"`
	ContactID       string          `json:"contactID"`
	CurrencyCode    string          `json:"currencyCode"`
	Amount          decimal.Decimal `json:"amount"`
	AppliedAmount   decimal.Decimal `json:"appliedAmount"`
	UnappliedAmount decimal.Decimal `json:"unappliedAmount"`
	Status          string          `json:"status"`
	PaymentDate     time.Time       `json:"paymentDate"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts a domain payment to its API representation.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		ContactID:       p.ContactID,
		CurrencyCode:    p.CurrencyCode,
		Amount:          p.Amount,
		AppliedAmount:   p.AppliedAmount,
		UnappliedAmount: p.UnappliedAmount(),
		Status:          string(p.Status),
		PaymentDate:     p.PaymentDate,
		Reference:       p.Reference,
		Notes:           p.Notes,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// ListPaymentsResponse is a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken string            `json:"nextToken,omitempty"`
}
