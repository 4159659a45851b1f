package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// BankTransactionService manages bank statement lines.
type BankTransactionService interface {
	// CreateBankTransaction records a single statement line.
	CreateBankTransaction(ctx context.Context, req dto.CreateBankTransactionRequest, userID string) (domain.BankTransaction, error)
	// ImportBankTransactions records a batch of statement lines atomically.
	ImportBankTransactions(ctx context.Context, req dto.ImportBankTransactionsRequest, userID string) ([]domain.BankTransaction, error)
	// GetBankTransactionByID retrieves a single bank transaction.
	GetBankTransactionByID(ctx context.Context, transactionID string) (domain.BankTransaction, error)
	// ListBankTransactions returns a page of transactions and the next-page token.
	ListBankTransactions(ctx context.Context, filter repositories.BankTransactionListFilter) ([]domain.BankTransaction, string, error)
}
