package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus tracks whether an application still counts toward balances.
type ApplicationStatus string

const (
	ApplicationActive   ApplicationStatus = "ACTIVE"
	ApplicationReversed ApplicationStatus = "REVERSED"
)

// PaymentApplication is the join entity through which money moves: it
// allocates part of a payment to exactly one invoice (AR or AP, never both).
// Applications are never edited after creation; corrections flag the original
// as reversed so the audit trail stays intact.
type PaymentApplication struct {
	ApplicationID   string            `json:"applicationID"` // Primary Key (UUID)
	PaymentID       string            `json:"paymentID"`
	ARInvoiceID     *string           `json:"arInvoiceID,omitempty"`
	APInvoiceID     *string           `json:"apInvoiceID,omitempty"`
	Amount          decimal.Decimal   `json:"amount"`
	ApplicationDate time.Time         `json:"applicationDate"`
	Status          ApplicationStatus `json:"status"`
	ReversedAt      *time.Time        `json:"reversedAt,omitempty"`
	ReversalReason  string            `json:"reversalReason,omitempty"`
	AuditFields
}

// InvoiceID returns the referenced invoice id and its kind.
func (a *PaymentApplication) InvoiceID() (string, InvoiceKind) {
	if a.ARInvoiceID != nil {
		return *a.ARInvoiceID, KindAR
	}
	if a.APInvoiceID != nil {
		return *a.APInvoiceID, KindAP
	}
	return "", ""
}

// IsReversed returns true if the application has been reversed.
func (a *PaymentApplication) IsReversed() bool {
	return a.Status == ApplicationReversed
}

// MarkReversed flags the application as reversed. Amounts are untouched;
// the allocation engine compensates on the invoice and payment instead.
func (a *PaymentApplication) MarkReversed(reason string, at time.Time) {
	a.Status = ApplicationReversed
	a.ReversedAt = &at
	a.ReversalReason = reason
}

// Validate checks the structural invariants of an application.
func (a *PaymentApplication) Validate() error {
	if a.PaymentID == "" {
		return fmt.Errorf("payment ID is required")
	}
	if a.ARInvoiceID != nil && a.APInvoiceID != nil {
		return fmt.Errorf("application must reference exactly one invoice, got both AR and AP")
	}
	if a.ARInvoiceID == nil && a.APInvoiceID == nil {
		return fmt.Errorf("application must reference an AR or AP invoice")
	}
	if a.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("application amount must be positive, got %s", a.Amount.String())
	}
	return nil
}
