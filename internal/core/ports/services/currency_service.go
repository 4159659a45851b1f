package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// CurrencyService manages the supported currency set.
type CurrencyService interface {
	// CreateCurrency registers a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (domain.Currency, error)
	// GetCurrencyByCode retrieves a currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (domain.Currency, error)
	// ListCurrencies returns all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
