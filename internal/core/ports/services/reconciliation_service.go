package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// ReconciliationService matches bank statement lines against the ledger.
type ReconciliationService interface {
	// Reconcile marks a bank transaction as reconciled by the acting user.
	// Reconciling an already reconciled transaction fails and leaves the
	// original reconciliation untouched.
	Reconcile(ctx context.Context, transactionID string, notes string, userID string) (domain.BankTransaction, error)
	// Unreconcile reverts a reconciled transaction to unreconciled,
	// clearing who, when, and notes. Fails if not currently reconciled.
	Unreconcile(ctx context.Context, transactionID string, userID string) (domain.BankTransaction, error)
}
