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

// CurrencyRepository implements the currency port on PostgreSQL.
type CurrencyRepository struct {
	BaseRepository
}

var _ portsrepo.CurrencyRepository = (*CurrencyRepository)(nil)

const currencyColumns = `currency_code, symbol, name, precision,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyCode, &m.Symbol, &m.Name, &m.Precision,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// CreateCurrency persists a new currency.
func (r *CurrencyRepository) CreateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.CurrencyToModel(currency)
	query := `INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode, m.Symbol, m.Name, m.Precision,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert currency: %w", mapWriteError(err))
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Currency{}, apperrors.ErrNotFound
		}
		return domain.Currency{}, fmt.Errorf("failed to query currency: %w", mapReadError(err))
	}
	return mapping.CurrencyToDomain(m), nil
}

// ListCurrencies returns all currencies ordered by code.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY currency_code ASC`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", mapReadError(err))
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		m, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", mapReadError(err))
		}
		currencies = append(currencies, mapping.CurrencyToDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read currency rows: %w", mapReadError(err))
	}
	return currencies, nil
}
