package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
)

type bankTransactionService struct {
	bankTxnRepo portsrepo.BankTransactionRepository
}

// NewBankTransactionService creates the bank transaction service.
func NewBankTransactionService(bankTxnRepo portsrepo.BankTransactionRepository) portssvc.BankTransactionService {
	return &bankTransactionService{bankTxnRepo: bankTxnRepo}
}

func buildBankTransaction(req dto.CreateBankTransactionRequest, userID string, now time.Time) (domain.BankTransaction, error) {
	txnType := domain.BankTransactionType(req.TransactionType)
	if !txnType.IsValid() {
		return domain.BankTransaction{}, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.BankTransaction{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return domain.BankTransaction{
		TransactionID:        uuid.NewString(),
		BankAccountID:        req.BankAccountID,
		TransactionDate:      req.TransactionDate,
		Amount:               req.Amount,
		TransactionType:      txnType,
		Description:          req.Description,
		ReconciliationStatus: domain.Unreconciled,
		RunningBalance:       req.RunningBalance,
		Version:              1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// CreateBankTransaction records a single statement line as unreconciled.
func (s *bankTransactionService) CreateBankTransaction(ctx context.Context, req dto.CreateBankTransactionRequest, userID string) (domain.BankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := buildBankTransaction(req, userID, time.Now().UTC())
	if err != nil {
		return domain.BankTransaction{}, err
	}
	if err := s.bankTxnRepo.CreateBankTransaction(ctx, txn); err != nil {
		return domain.BankTransaction{}, err
	}
	logger.Info("bank transaction recorded", "transaction_id", txn.TransactionID, "bank_account_id", txn.BankAccountID)
	return txn, nil
}

// ImportBankTransactions records a batch of statement lines atomically.
// One bad line rejects the whole import so a statement never half-loads.
func (s *bankTransactionService) ImportBankTransactions(ctx context.Context, req dto.ImportBankTransactionsRequest, userID string) ([]domain.BankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	txns := make([]domain.BankTransaction, 0, len(req.Transactions))
	for i, lineReq := range req.Transactions {
		txn, err := buildBankTransaction(lineReq, userID, now)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	if err := s.bankTxnRepo.CreateBankTransactions(ctx, txns); err != nil {
		return nil, err
	}
	logger.Info("bank statement imported", "lines", len(txns))
	return txns, nil
}

// GetBankTransactionByID retrieves a single bank transaction.
func (s *bankTransactionService) GetBankTransactionByID(ctx context.Context, transactionID string) (domain.BankTransaction, error) {
	return s.bankTxnRepo.FindBankTransactionByID(ctx, transactionID)
}

// ListBankTransactions returns a page of bank transactions.
func (s *bankTransactionService) ListBankTransactions(ctx context.Context, filter portsrepo.BankTransactionListFilter) ([]domain.BankTransaction, string, error) {
	return s.bankTxnRepo.ListBankTransactions(ctx, filter)
}
