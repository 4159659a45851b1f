package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentDraft  PaymentStatus = "DRAFT"
	PaymentPosted PaymentStatus = "POSTED"
)

// IsValid checks if the status is a known PaymentStatus.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentDraft || s == PaymentPosted
}

// Payment represents a cash inflow (against AR invoices) or outflow
// (against AP invoices). AppliedAmount is mutated only by the allocation
// engine and always equals the sum of its active applications.
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	ContactID     string          `json:"contactID"`
	CurrencyCode  string          `json:"currencyCode"`
	Amount        decimal.Decimal `json:"amount"`        // Total received/paid
	AppliedAmount decimal.Decimal `json:"appliedAmount"` // Allocated so far
	Status        PaymentStatus   `json:"status"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Reference     string          `json:"reference"` // External reference, e.g. bank memo
	Notes         string          `json:"notes"`
	Version       int64           `json:"version"` // Optimistic concurrency token
	AuditFields
}

// UnappliedAmount returns the portion of the payment not yet allocated
// to any invoice. Never negative while invariants hold.
func (p *Payment) UnappliedAmount() decimal.Decimal {
	return p.Amount.Sub(p.AppliedAmount)
}

// IsPosted returns true if the payment has been posted and can be allocated.
func (p *Payment) IsPosted() bool {
	return p.Status == PaymentPosted
}
