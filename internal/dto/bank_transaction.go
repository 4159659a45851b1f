package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// CreateBankTransactionRequest defines the payload for recording one statement line.
type CreateBankTransactionRequest struct {
	BankAccountID   string           `json:"bankAccountID" binding:"required"`
	TransactionDate time.Time        `json:"transactionDate" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	TransactionType string           `json:"transactionType" binding:"required,oneof=CREDIT DEBIT"`
	Description     string           `json:"description" binding:"required"`
	RunningBalance  *decimal.Decimal `json:"runningBalance,omitempty"`
}

// ImportBankTransactionsRequest defines the payload for a statement import.
type ImportBankTransactionsRequest struct {
	Transactions []CreateBankTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// ReconcileRequest defines the payload for reconciling a bank transaction.
type ReconcileRequest struct {
	Notes string `json:"notes,omitempty"`
}

// BankTransactionResponse defines the API representation of a bank transaction.
type BankTransactionResponse struct {
	TransactionID        string           `json:"transactionID"`
	BankAccountID        string           `json:"bankAccountID"`
	TransactionDate      time.Time        `json:"transactionDate"`
	Amount               decimal.Decimal  `json:"amount"`
	TransactionType      string           `json:"transactionType"`
	Description          string           `json:"description"`
	ReconciliationStatus string           `json:"reconciliationStatus"`
	ReconciledByID       *string          `json:"reconciledByID,omitempty"`
	ReconciledAt         *time.Time       `json:"reconciledAt,omitempty"`
	ReconciliationNotes  string           `json:"reconciliationNotes,omitempty"`
	RunningBalance       *decimal.Decimal `json:"runningBalance,omitempty"`
	Version              int64            `json:"version"`
	CreatedAt            time.Time        `json:"createdAt"`
	LastUpdatedAt        time.Time        `json:"lastUpdatedAt"`
}

// ToBankTransactionResponse converts a domain bank transaction to its API representation.
func ToBankTransactionResponse(t domain.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		TransactionID:        t.TransactionID,
		BankAccountID:        t.BankAccountID,
		TransactionDate:      t.TransactionDate,
		Amount:               t.Amount,
		TransactionType:      string(t.TransactionType),
		Description:          t.Description,
		ReconciliationStatus: string(t.ReconciliationStatus),
		ReconciledByID:       t.ReconciledByID,
		ReconciledAt:         t.ReconciledAt,
		ReconciliationNotes:  t.ReconciliationNotes,
		RunningBalance:       t.RunningBalance,
		Version:              t.Version,
		CreatedAt:            t.CreatedAt,
		LastUpdatedAt:        t.LastUpdatedAt,
	}
}

// ListBankTransactionsResponse is a page of bank transactions.
type ListBankTransactionsResponse struct {
	Transactions []BankTransactionResponse `json:"transactions"`
	NextToken    string                    `json:"nextToken,omitempty"`
}
