package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes receivables (money owed to us) from payables (money we owe).
type InvoiceKind string

const (
	KindAR InvoiceKind = "AR"
	KindAP InvoiceKind = "AP"
)

// IsValid checks if the kind is a known InvoiceKind.
func (k InvoiceKind) IsValid() bool {
	return k == KindAR || k == KindAP
}

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoicePartial InvoiceStatus = "PARTIAL"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceVoid    InvoiceStatus = "VOID"
)

// IsValid checks if the status is a known InvoiceStatus.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePartial, InvoicePaid, InvoiceVoid:
		return true
	}
	return false
}

// IsTerminal returns true for states that accept no further applications.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoicePaid || s == InvoiceVoid
}

// Invoice represents an AR or AP invoice within the core domain.
// PaidAmount is mutated only by the allocation engine; everything else
// about money on an invoice is derived from TotalAmount and PaidAmount.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (UUID)
	Kind          InvoiceKind     `json:"kind"`
	ContactID     string          `json:"contactID"` // Customer (AR) or supplier (AP)
	InvoiceNumber string          `json:"invoiceNumber"`
	CurrencyCode  string          `json:"currencyCode"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Notes         string          `json:"notes"`
	Version       int64           `json:"version"` // Optimistic concurrency token
	AuditFields
}

// RemainingBalance returns the unpaid portion of the invoice.
func (i *Invoice) RemainingBalance() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// CanApplyPayment returns true if the invoice can accept an application.
// Void invoices never accept money; a fully paid invoice has nothing left.
func (i *Invoice) CanApplyPayment() bool {
	return i.Status != InvoiceVoid && i.Status != InvoicePaid
}

// IsVoid returns true if the invoice has been voided.
func (i *Invoice) IsVoid() bool {
	return i.Status == InvoiceVoid
}
