package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persistence model for the payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	ContactID     string          `db:"contact_id"`
	CurrencyCode  string          `db:"currency_code"`
	Amount        decimal.Decimal `db:"amount"`
	AppliedAmount decimal.Decimal `db:"applied_amount"`
	Status        string          `db:"status"`
	PaymentDate   time.Time       `db:"payment_date"`
	Reference     string          `db:"reference"`
	Notes         string          `db:"notes"`
	Version       int64           `db:"version"`
	AuditModel
}
