package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransactionType indicates the direction of a bank statement line.
type BankTransactionType string

const (
	BankCredit BankTransactionType = "CREDIT"
	BankDebit  BankTransactionType = "DEBIT"
)

// IsValid checks if the type is a known BankTransactionType.
func (t BankTransactionType) IsValid() bool {
	return t == BankCredit || t == BankDebit
}

// ReconciliationStatus indicates whether a bank transaction has been
// matched against the ledger. The transition is reversible.
type ReconciliationStatus string

const (
	Unreconciled ReconciliationStatus = "UNRECONCILED"
	Reconciled   ReconciliationStatus = "RECONCILED"
)

// BankTransaction represents a single imported or manually entered bank
// statement line. ReconciledByID/ReconciledAt/ReconciliationNotes are set
// iff the status is RECONCILED; unreconciling clears all three.
type BankTransaction struct {
	TransactionID       string               `json:"transactionID"` // Primary Key (UUID)
	BankAccountID       string               `json:"bankAccountID"`
	TransactionDate     time.Time            `json:"transactionDate"`
	Amount              decimal.Decimal      `json:"amount"`
	TransactionType     BankTransactionType  `json:"transactionType"`
	Description         string               `json:"description"`
	ReconciliationStatus ReconciliationStatus `json:"reconciliationStatus"`
	ReconciledByID      *string              `json:"reconciledByID,omitempty"`
	ReconciledAt        *time.Time           `json:"reconciledAt,omitempty"`
	ReconciliationNotes string               `json:"reconciliationNotes,omitempty"`
	RunningBalance      *decimal.Decimal     `json:"runningBalance,omitempty"` // Account-level running total, when known
	Version             int64                `json:"version"`
	AuditFields
}

// IsReconciled returns true if the transaction has been reconciled.
func (t *BankTransaction) IsReconciled() bool {
	return t.ReconciliationStatus == Reconciled
}

// MarkReconciled sets the reconciliation fields as one unit.
func (t *BankTransaction) MarkReconciled(actorID string, notes string, at time.Time) {
	t.ReconciliationStatus = Reconciled
	t.ReconciledByID = &actorID
	t.ReconciledAt = &at
	t.ReconciliationNotes = notes
}

// ClearReconciliation returns the transaction to its unreconciled state,
// clearing the actor, timestamp, and notes together.
func (t *BankTransaction) ClearReconciliation() {
	t.ReconciliationStatus = Unreconciled
	t.ReconciledByID = nil
	t.ReconciledAt = nil
	t.ReconciliationNotes = ""
}
