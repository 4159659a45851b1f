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
)

// AllocationRepository implements the allocation port on PostgreSQL.
// Every write is a single transaction over the application row and the
// two touched aggregates, so balances can never drift apart.
type AllocationRepository struct {
	BaseRepository
}

var _ portsrepo.AllocationRepository = (*AllocationRepository)(nil)

const applicationColumns = `application_id, payment_id, ar_invoice_id, ap_invoice_id,
	amount, application_date, status, reversed_at, reversal_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanApplication(row pgx.Row) (models.PaymentApplication, error) {
	var m models.PaymentApplication
	err := row.Scan(
		&m.ApplicationID, &m.PaymentID, &m.ARInvoiceID, &m.APInvoiceID,
		&m.Amount, &m.ApplicationDate, &m.Status, &m.ReversedAt, &m.ReversalReason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveAllocation inserts the application and writes the new invoice and
// payment balances in one transaction. The aggregate rows are locked and
// updated with a version check; losing either check aborts the whole
// write with ErrConflict.
func (r *AllocationRepository) SaveAllocation(ctx context.Context, app domain.PaymentApplication, invoice domain.Invoice, payment domain.Payment) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapReadError(err))
	}
	defer tx.Rollback(ctx)

	if err := lockAggregates(ctx, tx, invoice.InvoiceID, payment.PaymentID); err != nil {
		return err
	}

	m := mapping.ApplicationToModel(app)
	insert := `INSERT INTO payment_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err := tx.Exec(ctx, insert,
		m.ApplicationID, m.PaymentID, m.ARInvoiceID, m.APInvoiceID,
		m.Amount, m.ApplicationDate, m.Status, m.ReversedAt, m.ReversalReason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert application: %w", mapWriteError(err))
	}

	if err := updateAggregates(ctx, tx, invoice, payment); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit allocation: %w", mapReadError(err))
	}
	return nil
}

// ReverseAllocation flags the application row as reversed and writes the
// compensated aggregate balances in one transaction.
func (r *AllocationRepository) ReverseAllocation(ctx context.Context, app domain.PaymentApplication, invoice domain.Invoice, payment domain.Payment) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapReadError(err))
	}
	defer tx.Rollback(ctx)

	if err := lockAggregates(ctx, tx, invoice.InvoiceID, payment.PaymentID); err != nil {
		return err
	}

	m := mapping.ApplicationToModel(app)
	update := `UPDATE payment_applications SET
			status = $1, reversed_at = $2, reversal_reason = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE application_id = $6 AND status = $7`
	tag, err := tx.Exec(ctx, update,
		m.Status, m.ReversedAt, m.ReversalReason,
		m.LastUpdatedAt, m.LastUpdatedBy, m.ApplicationID, string(domain.ApplicationActive),
	)
	if err != nil {
		return fmt.Errorf("failed to flag application reversed: %w", mapReadError(err))
	}
	if tag.RowsAffected() == 0 {
		// Someone reversed it between our read and this write.
		return apperrors.ErrConflict
	}

	if err := updateAggregates(ctx, tx, invoice, payment); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reversal: %w", mapReadError(err))
	}
	return nil
}

// lockAggregates takes row locks in a fixed order to avoid deadlocks
// between concurrent allocations touching the same pair.
func lockAggregates(ctx context.Context, tx pgx.Tx, invoiceID, paymentID string) error {
	if _, err := tx.Exec(ctx, `SELECT 1 FROM invoices WHERE invoice_id = $1 FOR UPDATE`, invoiceID); err != nil {
		return fmt.Errorf("failed to lock invoice: %w", mapReadError(err))
	}
	if _, err := tx.Exec(ctx, `SELECT 1 FROM payments WHERE payment_id = $1 FOR UPDATE`, paymentID); err != nil {
		return fmt.Errorf("failed to lock payment: %w", mapReadError(err))
	}
	return nil
}

// updateAggregates writes the new balances with version checks on both rows.
func updateAggregates(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, payment domain.Payment) error {
	im := mapping.InvoiceToModel(invoice)
	tag, err := tx.Exec(ctx, `UPDATE invoices SET
			paid_amount = $1, status = $2, version = version + 1,
			last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $5 AND version = $6`,
		im.PaidAmount, im.Status, im.LastUpdatedAt, im.LastUpdatedBy, im.InvoiceID, im.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice balance: %w", mapReadError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	pm := mapping.PaymentToModel(payment)
	tag, err = tx.Exec(ctx, `UPDATE payments SET
			applied_amount = $1, version = version + 1,
			last_updated_at = $2, last_updated_by = $3
		WHERE payment_id = $4 AND version = $5`,
		pm.AppliedAmount, pm.LastUpdatedAt, pm.LastUpdatedBy, pm.PaymentID, pm.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment balance: %w", mapReadError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// FindApplicationByID retrieves an application by its ID.
func (r *AllocationRepository) FindApplicationByID(ctx context.Context, applicationID string) (domain.PaymentApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM payment_applications WHERE application_id = $1`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PaymentApplication{}, apperrors.ErrNotFound
		}
		return domain.PaymentApplication{}, fmt.Errorf("failed to query application: %w", mapReadError(err))
	}
	return mapping.ApplicationToDomain(m), nil
}

// ListApplicationsByPayment returns all applications for a payment, oldest first.
func (r *AllocationRepository) ListApplicationsByPayment(ctx context.Context, paymentID string) ([]domain.PaymentApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM payment_applications
		WHERE payment_id = $1 ORDER BY created_at ASC, application_id ASC`
	return r.queryApplications(ctx, query, paymentID)
}

// ListApplicationsByInvoice returns all applications against an invoice, oldest first.
func (r *AllocationRepository) ListApplicationsByInvoice(ctx context.Context, invoiceID string, kind domain.InvoiceKind) ([]domain.PaymentApplication, error) {
	column := "ar_invoice_id"
	if kind == domain.KindAP {
		column = "ap_invoice_id"
	}
	query := `SELECT ` + applicationColumns + ` FROM payment_applications
		WHERE ` + column + ` = $1 ORDER BY created_at ASC, application_id ASC`
	return r.queryApplications(ctx, query, invoiceID)
}

func (r *AllocationRepository) queryApplications(ctx context.Context, query string, arg any) ([]domain.PaymentApplication, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", mapReadError(err))
	}
	defer rows.Close()

	var apps []domain.PaymentApplication
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", mapReadError(err))
		}
		apps = append(apps, mapping.ApplicationToDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read application rows: %w", mapReadError(err))
	}
	return apps, nil
}
