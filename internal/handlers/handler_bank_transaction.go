package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// BankTransactionHandler exposes bank transaction and reconciliation endpoints.
type BankTransactionHandler struct {
	bankTxnSvc        portssvc.BankTransactionService
	reconciliationSvc portssvc.ReconciliationService
}

// NewBankTransactionHandler creates a BankTransactionHandler.
func NewBankTransactionHandler(bankTxnSvc portssvc.BankTransactionService, reconciliationSvc portssvc.ReconciliationService) *BankTransactionHandler {
	return &BankTransactionHandler{bankTxnSvc: bankTxnSvc, reconciliationSvc: reconciliationSvc}
}

// CreateBankTransaction godoc
// @Summary Record a bank statement line
// @Tags bank-transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateBankTransactionRequest true "Statement line"
// @Success 201 {object} dto.BankTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-transactions [post]
func (h *BankTransactionHandler) CreateBankTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	txn, err := h.bankTxnSvc.CreateBankTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankTransactionResponse(txn))
}

// ImportBankTransactions godoc
// @Summary Import a batch of statement lines atomically
// @Tags bank-transactions
// @Accept json
// @Produce json
// @Param import body dto.ImportBankTransactionsRequest true "Statement lines"
// @Success 201 {object} dto.ListBankTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-transactions/import [post]
func (h *BankTransactionHandler) ImportBankTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ImportBankTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	txns, err := h.bankTxnSvc.ImportBankTransactions(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListBankTransactionsResponse{Transactions: make([]dto.BankTransactionResponse, 0, len(txns))}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, dto.ToBankTransactionResponse(txn))
	}
	c.JSON(http.StatusCreated, resp)
}

// GetBankTransaction godoc
// @Summary Get a bank transaction
// @Tags bank-transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.BankTransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-transactions/{id} [get]
func (h *BankTransactionHandler) GetBankTransaction(c *gin.Context) {
	txn, err := h.bankTxnSvc.GetBankTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBankTransactionResponse(txn))
}

// ListBankTransactions godoc
// @Summary List bank transactions
// @Tags bank-transactions
// @Produce json
// @Param bankAccountID query string false "Filter by bank account"
// @Param reconciliationStatus query string false "Filter by reconciliation status"
// @Param limit query int false "Page size"
// @Param token query string false "Pagination token"
// @Success 200 {object} dto.ListBankTransactionsResponse
// @Security BearerAuth
// @Router /bank-transactions [get]
func (h *BankTransactionHandler) ListBankTransactions(c *gin.Context) {
	filter := portsrepo.BankTransactionListFilter{Token: c.Query("token")}
	if v := c.Query("bankAccountID"); v != "" {
		filter.BankAccountID = &v
	}
	if v := c.Query("reconciliationStatus"); v != "" {
		status := domain.ReconciliationStatus(v)
		filter.ReconciliationStatus = &status
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		filter.Limit = limit
	}

	txns, nextToken, err := h.bankTxnSvc.ListBankTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListBankTransactionsResponse{
		Transactions: make([]dto.BankTransactionResponse, 0, len(txns)),
		NextToken:    nextToken,
	}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, dto.ToBankTransactionResponse(txn))
	}
	c.JSON(http.StatusOK, resp)
}

// ReconcileBankTransaction godoc
// @Summary Mark a bank transaction as reconciled
// @Tags bank-transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param reconciliation body dto.ReconcileRequest false "Reconciliation notes"
// @Success 200 {object} dto.BankTransactionResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-transactions/{id}/reconcile [post]
func (h *BankTransactionHandler) ReconcileBankTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	txn, err := h.reconciliationSvc.Reconcile(c.Request.Context(), c.Param("id"), req.Notes, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBankTransactionResponse(txn))
}

// UnreconcileBankTransaction godoc
// @Summary Revert a reconciled bank transaction
// @Tags bank-transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.BankTransactionResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-transactions/{id}/unreconcile [post]
func (h *BankTransactionHandler) UnreconcileBankTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	txn, err := h.reconciliationSvc.Unreconcile(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBankTransactionResponse(txn))
}
