package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// CurrencyHandler exposes currency endpoints.
type CurrencyHandler struct {
	currencySvc portssvc.CurrencyService
}

// NewCurrencyHandler creates a CurrencyHandler.
func NewCurrencyHandler(currencySvc portssvc.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencySvc: currencySvc}
}

// CreateCurrency godoc
// @Summary Register a currency
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency to register"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [post]
func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	currency, err := h.currencySvc.CreateCurrency(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// GetCurrency godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *CurrencyHandler) GetCurrency(c *gin.Context) {
	currency, err := h.currencySvc.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// ListCurrencies godoc
// @Summary List all registered currencies
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.currencySvc.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListCurrenciesResponse{Currencies: make([]dto.CurrencyResponse, 0, len(currencies))}
	for _, currency := range currencies {
		resp.Currencies = append(resp.Currencies, dto.ToCurrencyResponse(currency))
	}
	c.JSON(http.StatusOK, resp)
}
