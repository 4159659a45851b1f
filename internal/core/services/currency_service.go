package services

import (
	"context"
	"strings"
	"time"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates the currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencyService {
	return &currencyService{currencyRepo: currencyRepo}
}

// CreateCurrency registers a new currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Symbol:       req.Symbol,
		Name:         req.Name,
		Precision:    req.Precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.currencyRepo.CreateCurrency(ctx, currency); err != nil {
		return domain.Currency{}, err
	}
	logger.Info("currency created", "currency_code", currency.CurrencyCode)
	return currency, nil
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
}

// ListCurrencies returns all registered currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}
