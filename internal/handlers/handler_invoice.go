package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// InvoiceHandler exposes invoice endpoints.
type InvoiceHandler struct {
	invoiceSvc    portssvc.InvoiceService
	allocationSvc portssvc.AllocationService
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoiceSvc portssvc.InvoiceService, allocationSvc portssvc.AllocationService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc, allocationSvc: allocationSvc}
}

// CreateInvoice godoc
// @Summary Create a draft invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice to create"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	invoice, err := h.invoiceSvc.CreateInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

// GetInvoice godoc
// @Summary Get an invoice with derived balances
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceSvc.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param kind query string false "Filter by kind (AR or AP)"
// @Param status query string false "Filter by status"
// @Param contactID query string false "Filter by contact"
// @Param limit query int false "Page size"
// @Param token query string false "Pagination token"
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := portsrepo.InvoiceListFilter{Token: c.Query("token")}
	if v := c.Query("kind"); v != "" {
		kind := domain.InvoiceKind(v)
		filter.Kind = &kind
	}
	if v := c.Query("status"); v != "" {
		status := domain.InvoiceStatus(v)
		filter.Status = &status
	}
	if v := c.Query("contactID"); v != "" {
		filter.ContactID = &v
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		filter.Limit = limit
	}

	invoices, nextToken, err := h.invoiceSvc.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	now := time.Now().UTC()
	resp := dto.ListInvoicesResponse{
		Invoices:  make([]dto.InvoiceResponse, 0, len(invoices)),
		NextToken: nextToken,
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, dto.ToInvoiceResponse(inv, now))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateInvoice godoc
// @Summary Amend invoice header fields
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	invoice, err := h.invoiceSvc.UpdateInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

// SendInvoice godoc
// @Summary Open a draft invoice for payment
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceSvc.SendInvoice(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

// VoidInvoice godoc
// @Summary Void an invoice with no applied payments
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/void [post]
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceSvc.VoidInvoice(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

// ListInvoiceApplications godoc
// @Summary List payment applications against an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Param kind query string true "Invoice kind (AR or AP)"
// @Success 200 {object} dto.ListApplicationsResponse
// @Security BearerAuth
// @Router /invoices/{id}/applications [get]
func (h *InvoiceHandler) ListInvoiceApplications(c *gin.Context) {
	apps, err := h.allocationSvc.ListByInvoice(c.Request.Context(), c.Param("id"), domain.InvoiceKind(c.Query("kind")))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListApplicationsResponse{Applications: make([]dto.ApplicationResponse, 0, len(apps))}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, dto.ToApplicationResponse(app))
	}
	c.JSON(http.StatusOK, resp)
}
