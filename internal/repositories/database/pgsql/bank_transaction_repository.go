package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	"github.com/ledgerpad/ledgerpad_app/internal/models"
	"github.com/ledgerpad/ledgerpad_app/internal/utils/mapping"
	"github.com/ledgerpad/ledgerpad_app/internal/utils/pagination"
)

// BankTransactionRepository implements the bank transaction port on PostgreSQL.
type BankTransactionRepository struct {
	BaseRepository
}

var _ portsrepo.BankTransactionRepository = (*BankTransactionRepository)(nil)

const bankTxnColumns = `transaction_id, bank_account_id, transaction_date, amount,
	transaction_type, description, reconciliation_status, reconciled_by_id,
	reconciled_at, reconciliation_notes, running_balance, version,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBankTransaction(row pgx.Row) (models.BankTransaction, error) {
	var m models.BankTransaction
	err := row.Scan(
		&m.TransactionID, &m.BankAccountID, &m.TransactionDate, &m.Amount,
		&m.TransactionType, &m.Description, &m.ReconciliationStatus, &m.ReconciledByID,
		&m.ReconciledAt, &m.ReconciliationNotes, &m.RunningBalance, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

const insertBankTxnQuery = `INSERT INTO bank_transactions (` + bankTxnColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func bankTxnInsertArgs(m models.BankTransaction) []any {
	return []any{
		m.TransactionID, m.BankAccountID, m.TransactionDate, m.Amount,
		m.TransactionType, m.Description, m.ReconciliationStatus, m.ReconciledByID,
		m.ReconciledAt, m.ReconciliationNotes, m.RunningBalance, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// CreateBankTransaction persists a single statement line.
func (r *BankTransactionRepository) CreateBankTransaction(ctx context.Context, txn domain.BankTransaction) error {
	m := mapping.BankTransactionToModel(txn)
	if _, err := r.Pool.Exec(ctx, insertBankTxnQuery, bankTxnInsertArgs(m)...); err != nil {
		return fmt.Errorf("failed to insert bank transaction: %w", mapWriteError(err))
	}
	return nil
}

// CreateBankTransactions persists an imported batch in one transaction.
func (r *BankTransactionRepository) CreateBankTransactions(ctx context.Context, txns []domain.BankTransaction) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapReadError(err))
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(insertBankTxnQuery, bankTxnInsertArgs(mapping.BankTransactionToModel(txn))...)
	}
	results := tx.SendBatch(ctx, batch)
	for range txns {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert bank transaction batch: %w", mapWriteError(err))
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", mapReadError(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bank transaction batch: %w", mapReadError(err))
	}
	return nil
}

// FindBankTransactionByID retrieves a bank transaction by its ID.
func (r *BankTransactionRepository) FindBankTransactionByID(ctx context.Context, transactionID string) (domain.BankTransaction, error) {
	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE transaction_id = $1`
	m, err := scanBankTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BankTransaction{}, apperrors.ErrNotFound
		}
		return domain.BankTransaction{}, fmt.Errorf("failed to query bank transaction: %w", mapReadError(err))
	}
	return mapping.BankTransactionToDomain(m), nil
}

// ListBankTransactions returns a token-paginated page, newest first.
func (r *BankTransactionRepository) ListBankTransactions(ctx context.Context, filter portsrepo.BankTransactionListFilter) ([]domain.BankTransaction, string, error) {
	token, err := pagination.Decode(filter.Token)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit := pagination.ClampLimit(filter.Limit, 50, 200)

	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.BankAccountID != nil {
		query += fmt.Sprintf(" AND bank_account_id = $%d", idx)
		args = append(args, *filter.BankAccountID)
		idx++
	}
	if filter.ReconciliationStatus != nil {
		query += fmt.Sprintf(" AND reconciliation_status = $%d", idx)
		args = append(args, string(*filter.ReconciliationStatus))
		idx++
	}
	if token.LastID != "" {
		query += fmt.Sprintf(" AND (created_at, transaction_id) < ($%d, $%d)", idx, idx+1)
		args = append(args, token.LastCreatedAt, token.LastID)
		idx += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, transaction_id DESC LIMIT $%d", idx)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query bank transactions: %w", mapReadError(err))
	}
	defer rows.Close()

	txns := make([]domain.BankTransaction, 0, limit)
	for rows.Next() {
		m, err := scanBankTransaction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan bank transaction row: %w", mapReadError(err))
		}
		txns = append(txns, mapping.BankTransactionToDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read bank transaction rows: %w", mapReadError(err))
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		nextToken = pagination.Token{LastID: last.TransactionID, LastCreatedAt: last.CreatedAt}.Encode()
	}
	return txns, nextToken, nil
}

// UpdateBankTransaction persists changes guarded by the transaction's
// version and returns the version now stored.
func (r *BankTransactionRepository) UpdateBankTransaction(ctx context.Context, txn domain.BankTransaction) (int64, error) {
	m := mapping.BankTransactionToModel(txn)
	query := `UPDATE bank_transactions SET
			reconciliation_status = $1, reconciled_by_id = $2, reconciled_at = $3,
			reconciliation_notes = $4, description = $5,
			version = version + 1, last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $8 AND version = $9
		RETURNING version`
	var newVersion int64
	err := r.Pool.QueryRow(ctx, query,
		m.ReconciliationStatus, m.ReconciledByID, m.ReconciledAt,
		m.ReconciliationNotes, m.Description,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TransactionID, m.Version,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("failed to update bank transaction: %w", mapReadError(err))
	}
	return newVersion, nil
}
