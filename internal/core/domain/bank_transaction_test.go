package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkReconciledAndClear(t *testing.T) {
	txn := BankTransaction{
		TransactionID:        "txn-1",
		ReconciliationStatus: Unreconciled,
	}
	at := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)

	txn.MarkReconciled("user-7", "matched line 12", at)
	assert.True(t, txn.IsReconciled())
	require.NotNil(t, txn.ReconciledByID)
	assert.Equal(t, "user-7", *txn.ReconciledByID)
	require.NotNil(t, txn.ReconciledAt)
	assert.Equal(t, at, *txn.ReconciledAt)
	assert.Equal(t, "matched line 12", txn.ReconciliationNotes)

	txn.ClearReconciliation()
	assert.False(t, txn.IsReconciled())
	assert.Nil(t, txn.ReconciledByID)
	assert.Nil(t, txn.ReconciledAt)
	assert.Empty(t, txn.ReconciliationNotes)
}

func TestBankTransactionTypeIsValid(t *testing.T) {
	assert.True(t, BankCredit.IsValid())
	assert.True(t, BankDebit.IsValid())
	assert.False(t, BankTransactionType("TRANSFER").IsValid())
}
