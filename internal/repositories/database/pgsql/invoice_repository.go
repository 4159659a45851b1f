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

// InvoiceRepository implements the invoice port on PostgreSQL.
type InvoiceRepository struct {
	BaseRepository
}

var _ portsrepo.InvoiceRepository = (*InvoiceRepository)(nil)

const invoiceColumns = `invoice_id, kind, contact_id, invoice_number, currency_code,
	total_amount, paid_amount, status, due_date, notes, version,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.Kind, &m.ContactID, &m.InvoiceNumber, &m.CurrencyCode,
		&m.TotalAmount, &m.PaidAmount, &m.Status, &m.DueDate, &m.Notes, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// CreateInvoice persists a new invoice.
func (r *InvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.InvoiceToModel(invoice)
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.Kind, m.ContactID, m.InvoiceNumber, m.CurrencyCode,
		m.TotalAmount, m.PaidAmount, m.Status, m.DueDate, m.Notes, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", mapWriteError(err))
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, apperrors.ErrNotFound
		}
		return domain.Invoice{}, fmt.Errorf("failed to query invoice: %w", mapReadError(err))
	}
	return mapping.InvoiceToDomain(m), nil
}

// ListInvoices returns a token-paginated page of invoices, newest first.
func (r *InvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, string, error) {
	token, err := pagination.Decode(filter.Token)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit := pagination.ClampLimit(filter.Limit, 50, 200)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", idx)
		args = append(args, string(*filter.Kind))
		idx++
	}
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
		query += fmt.Sprintf(" AND (created_at, invoice_id) < ($%d, $%d)", idx, idx+1)
		args = append(args, token.LastCreatedAt, token.LastID)
		idx += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, invoice_id DESC LIMIT $%d", idx)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query invoices: %w", mapReadError(err))
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0, limit)
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan invoice row: %w", mapReadError(err))
		}
		invoices = append(invoices, mapping.InvoiceToDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read invoice rows: %w", mapReadError(err))
	}

	nextToken := ""
	if len(invoices) > limit {
		invoices = invoices[:limit]
		last := invoices[limit-1]
		nextToken = pagination.Token{LastID: last.InvoiceID, LastCreatedAt: last.CreatedAt}.Encode()
	}
	return invoices, nextToken, nil
}

// UpdateInvoice persists header changes guarded by the invoice's version
// and returns the version now stored.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (int64, error) {
	m := mapping.InvoiceToModel(invoice)
	query := `UPDATE invoices SET
			paid_amount = $1, status = $2, due_date = $3, notes = $4,
			version = version + 1, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $7 AND version = $8
		RETURNING version`
	var newVersion int64
	err := r.Pool.QueryRow(ctx, query,
		m.PaidAmount, m.Status, m.DueDate, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.InvoiceID, m.Version,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("failed to update invoice: %w", mapReadError(err))
	}
	return newVersion, nil
}
