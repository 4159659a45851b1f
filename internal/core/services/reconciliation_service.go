package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
)

// Errors returned by the reconciliation service.
var (
	ErrAlreadyReconciled = errors.New("bank transaction is already reconciled")
	ErrNotReconciled     = errors.New("bank transaction is not reconciled")
)

type reconciliationService struct {
	bankTxnRepo portsrepo.BankTransactionRepository
	events      portssvc.EventSink
}

// NewReconciliationService creates the reconciliation service.
func NewReconciliationService(bankTxnRepo portsrepo.BankTransactionRepository, events portssvc.EventSink) portssvc.ReconciliationService {
	return &reconciliationService{bankTxnRepo: bankTxnRepo, events: events}
}

// Reconcile marks a bank transaction as reconciled. A transaction that is
// already reconciled is rejected outright; the original actor, timestamp,
// and notes are never overwritten.
func (s *reconciliationService) Reconcile(ctx context.Context, transactionID string, notes string, userID string) (domain.BankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < conflictRetries; attempt++ {
		txn, err := s.bankTxnRepo.FindBankTransactionByID(ctx, transactionID)
		if err != nil {
			return domain.BankTransaction{}, fmt.Errorf("failed to load bank transaction %s: %w", transactionID, err)
		}
		if txn.IsReconciled() {
			return domain.BankTransaction{}, ErrAlreadyReconciled
		}

		now := time.Now().UTC()
		txn.MarkReconciled(userID, notes, now)
		txn.Touch(userID, now)

		newVersion, err := s.bankTxnRepo.UpdateBankTransaction(ctx, txn)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Warn("reconcile lost version race, retrying", "transaction_id", transactionID, "attempt", attempt+1)
				continue
			}
			return domain.BankTransaction{}, err
		}
		txn.Version = newVersion

		logger.Info("bank transaction reconciled", "transaction_id", transactionID)
		s.events.Emit(ctx, domain.EventBankTransactionReconciled, userID, map[string]any{
			"transaction_id":  txn.TransactionID,
			"bank_account_id": txn.BankAccountID,
			"amount":          txn.Amount.String(),
		})
		return txn, nil
	}
	return domain.BankTransaction{}, ErrConcurrentModification
}

// Unreconcile reverts a reconciled transaction, clearing the actor,
// timestamp, and notes in one step.
func (s *reconciliationService) Unreconcile(ctx context.Context, transactionID string, userID string) (domain.BankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < conflictRetries; attempt++ {
		txn, err := s.bankTxnRepo.FindBankTransactionByID(ctx, transactionID)
		if err != nil {
			return domain.BankTransaction{}, fmt.Errorf("failed to load bank transaction %s: %w", transactionID, err)
		}
		if !txn.IsReconciled() {
			return domain.BankTransaction{}, ErrNotReconciled
		}

		txn.ClearReconciliation()
		txn.Touch(userID, time.Now().UTC())

		newVersion, err := s.bankTxnRepo.UpdateBankTransaction(ctx, txn)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Warn("unreconcile lost version race, retrying", "transaction_id", transactionID, "attempt", attempt+1)
				continue
			}
			return domain.BankTransaction{}, err
		}
		txn.Version = newVersion

		logger.Info("bank transaction unreconciled", "transaction_id", transactionID)
		s.events.Emit(ctx, domain.EventBankTransactionUnreconciled, userID, map[string]any{
			"transaction_id":  txn.TransactionID,
			"bank_account_id": txn.BankAccountID,
		})
		return txn, nil
	}
	return domain.BankTransaction{}, ErrConcurrentModification
}
