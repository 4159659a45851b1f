package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is the persistence model for the bank_transactions table.
type BankTransaction struct {
	TransactionID        string           `db:"transaction_id"`
	BankAccountID        string           `db:"bank_account_id"`
	TransactionDate      time.Time        `db:"transaction_date"`
	Amount               decimal.Decimal  `db:"amount"`
	TransactionType      string           `db:"transaction_type"`
	Description          string           `db:"description"`
	ReconciliationStatus string           `db:"reconciliation_status"`
	ReconciledByID       *string          `db:"reconciled_by_id"`
	ReconciledAt         *time.Time       `db:"reconciled_at"`
	ReconciliationNotes  string           `db:"reconciliation_notes"`
	RunningBalance       *decimal.Decimal `db:"running_balance"`
	Version              int64            `db:"version"`
	AuditModel
}
