package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentApplication is the persistence model for the payment_applications table.
type PaymentApplication struct {
	ApplicationID   string          `db:"application_id"`
	PaymentID       string          `db:"payment_id"`
	ARInvoiceID     *string         `db:"ar_invoice_id"`
	APInvoiceID     *string         `db:"ap_invoice_id"`
	Amount          decimal.Decimal `db:"amount"`
	ApplicationDate time.Time       `db:"application_date"`
	Status          string          `db:"status"`
	ReversedAt      *time.Time      `db:"reversed_at"`
	ReversalReason  string          `db:"reversal_reason"`
	AuditModel
}
