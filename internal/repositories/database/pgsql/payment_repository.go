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

// PaymentRepository implements the payment port on PostgreSQL.
type PaymentRepository struct {
	BaseRepository
}

var _ portsrepo.PaymentRepository = (*PaymentRepository)(nil)

const paymentColumns = `payment_id, contact_id, currency_code, amount, applied_amount,
	status, payment_date, reference, notes, version,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID, &m.ContactID, &m.CurrencyCode, &m.Amount, &m.AppliedAmount,
		&m.Status, &m.PaymentDate, &m.Reference, &m.Notes, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// CreatePayment persists a new payment.
func (r *PaymentRepository) CreatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.PaymentToModel(payment)
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.ContactID, m.CurrencyCode, m.Amount, m.AppliedAmount,
		m.Status, m.PaymentDate, m.Reference, m.Notes, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", mapWriteError(err))
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, apperrors.ErrNotFound
		}
		return domain.Payment{}, fmt.Errorf("failed to query payment: %w", mapReadError(err))
	}
	return mapping.PaymentToDomain(m), nil
}

// ListPayments returns a token-paginated page of payments, newest first.
func (r *PaymentRepository) ListPayments(ctx context.Context, filter portsrepo.PaymentListFilter) ([]domain.Payment, string, error) {
	token, err := pagination.Decode(filter.Token)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit := pagination.ClampLimit(filter.Limit, 50, 200)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, string(*filter.Status))
		idx++
	}
	if filter.ContactID != nil {
		query += fmt.Sprintf(" AND contact_id = $%d", idx)
		args = append(args, *filter.ContactID)
		idx++
	}
	if token.LastID != "" {
		query += fmt.Sprintf(" AND (created_at, payment_id) < ($%d, $%d)", idx, idx+1)
		args = append(args, token.LastCreatedAt, token.LastID)
		idx += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, payment_id DESC LIMIT $%d", idx)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query payments: %w", mapReadError(err))
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0, limit)
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan payment row: %w", mapReadError(err))
		}
		payments = append(payments, mapping.PaymentToDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read payment rows: %w", mapReadError(err))
	}

	nextToken := ""
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[limit-1]
		nextToken = pagination.Token{LastID: last.PaymentID, LastCreatedAt: last.CreatedAt}.Encode()
	}
	return payments, nextToken, nil
}

// UpdatePayment persists changes guarded by the payment's version and
// returns the version now stored.
func (r *PaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	m := mapping.PaymentToModel(payment)
	query := `UPDATE payments SET
			applied_amount = $1, status = $2, reference = $3, notes = $4,
			version = version + 1, last_updated_at = $5, last_updated_by = $6
		WHERE payment_id = $7 AND version = $8
		RETURNING version`
	var newVersion int64
	err := r.Pool.QueryRow(ctx, query,
		m.AppliedAmount, m.Status, m.Reference, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentID, m.Version,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("failed to update payment: %w", mapReadError(err))
	}
	return newVersion, nil
}
