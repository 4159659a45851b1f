package repositories

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// BankTransactionListFilter narrows ListBankTransactions results.
type BankTransactionListFilter struct {
	BankAccountID        *string
	ReconciliationStatus *domain.ReconciliationStatus
	Limit                int
	Token                string
}

// BankTransactionReader defines read operations for bank transactions.
type BankTransactionReader interface {
	// FindBankTransactionByID retrieves a bank transaction by its ID.
	// Returns apperrors.ErrNotFound if no transaction matches.
	FindBankTransactionByID(ctx context.Context, transactionID string) (domain.BankTransaction, error)
	// ListBankTransactions returns a page of transactions plus the next-page token.
	ListBankTransactions(ctx context.Context, filter BankTransactionListFilter) ([]domain.BankTransaction, string, error)
}

// BankTransactionWriter defines write operations for bank transactions.
type BankTransactionWriter interface {
	// CreateBankTransaction persists a new bank transaction.
	CreateBankTransaction(ctx context.Context, txn domain.BankTransaction) error
	// CreateBankTransactions persists a batch of imported statement lines
	// in one transaction. All or nothing.
	CreateBankTransactions(ctx context.Context, txns []domain.BankTransaction) error
	// UpdateBankTransaction persists changes guarded by the transaction's
	// version and returns the version now stored.
	// Returns apperrors.ErrConflict when the stored version differs.
	UpdateBankTransaction(ctx context.Context, txn domain.BankTransaction) (int64, error)
}

// BankTransactionRepository combines reader and writer capabilities.
type BankTransactionRepository interface {
	BankTransactionReader
	BankTransactionWriter
}
