package repositories

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// CurrencyRepository defines operations for currencies.
type CurrencyRepository interface {
	// CreateCurrency persists a new currency.
	// Returns apperrors.ErrDuplicate if the code already exists.
	CreateCurrency(ctx context.Context, currency domain.Currency) error
	// FindCurrencyByCode retrieves a currency by its code.
	// Returns apperrors.ErrNotFound if no currency matches.
	FindCurrencyByCode(ctx context.Context, code string) (domain.Currency, error)
	// ListCurrencies returns all currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
