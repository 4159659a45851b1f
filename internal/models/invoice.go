package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the persistence model for the invoices table.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	Kind          string          `db:"kind"`
	ContactID     string          `db:"contact_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CurrencyCode  string          `db:"currency_code"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Status        string          `db:"status"`
	DueDate       *time.Time      `db:"due_date"`
	Notes         string          `db:"notes"`
	Version       int64           `db:"version"`
	AuditModel
}
