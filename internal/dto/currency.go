package dto

import "github.com/ledgerpad/ledgerpad_app/internal/core/domain"

// CreateCurrencyRequest defines the payload for registering a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currency_code"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Precision    int32  `json:"precision" binding:"min=0,max=8"`
}

// CurrencyResponse defines the API representation of a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int32  `json:"precision"`
}

// ToCurrencyResponse converts a domain currency to its API representation.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
	}
}

// ListCurrenciesResponse wraps the full currency set.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}
